package sdk

import (
	"github.com/magiclabs/magic-go/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	logger, err := buildLogger(config.LogFormatConsole, zapcore.InfoLevel)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// newLogger picks the logging strategy once, from cfg.LogFormat: a plain
// text console encoder or a structured JSON encoder.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	logger, err := buildLogger(cfg.LogFormat, level)
	if err != nil {
		return nil, err
	}
	return logger.Named("magic"), nil
}

func buildLogger(format string, level zapcore.Level) (*zap.Logger, error) {
	var c zap.Config
	switch format {
	case config.LogFormatJSON:
		c = zap.NewProductionConfig()
	default:
		c = zap.NewDevelopmentConfig()
		c.Development = false
	}
	c.Level = zap.NewAtomicLevelAt(level)
	c.OutputPaths = []string{"stderr"}
	c.ErrorOutputPaths = []string{"stderr"}
	return c.Build()
}
