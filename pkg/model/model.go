// Package model defines the data contracts exchanged with the Magic backend:
// the per-method configuration objects sent as RPC params and the UserInfo
// result. JSON member names mirror the backend's wire format exactly.
package model

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNoPublicAddress is returned by UserInfo.Address when the user has no
// wallet address or the backend sent something that is not a hex address.
var ErrNoPublicAddress = errors.New("user info has no valid public address")

// UserInfo describes the currently authenticated user.
type UserInfo struct {
	Issuer        string `json:"issuer,omitempty"`
	PublicAddress string `json:"publicAddress,omitempty"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	IsMfaEnabled  bool   `json:"isMfaEnabled,omitempty"`
}

// Address parses PublicAddress as an Ethereum address.
func (u *UserInfo) Address() (common.Address, error) {
	if !common.IsHexAddress(u.PublicAddress) {
		return common.Address{}, ErrNoPublicAddress
	}
	return common.HexToAddress(u.PublicAddress), nil
}

// GetIDTokenConfiguration tunes magic_auth_get_id_token.
type GetIDTokenConfiguration struct {
	// Lifespan of the token in seconds; the backend default applies when nil.
	Lifespan *int `json:"lifespan,omitempty"`
}

// GenerateIDTokenConfiguration tunes magic_auth_generate_id_token.
type GenerateIDTokenConfiguration struct {
	Lifespan *int `json:"lifespan,omitempty"`
	// Attachment is an arbitrary string signed into the token.
	Attachment string `json:"attachment,omitempty"`
}

// UpdateEmailConfiguration is the single param of magic_auth_update_email.
type UpdateEmailConfiguration struct {
	Email  string `json:"email"`
	ShowUI *bool  `json:"showUI,omitempty"`
}

// RecoverAccountConfiguration is the single param of magic_auth_recover_account.
type RecoverAccountConfiguration struct {
	Email string `json:"email"`
}
