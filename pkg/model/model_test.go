package model

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestUserInfo_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    common.Address
		wantErr bool
	}{
		{
			name:    "Valid address",
			address: "0x1234567890123456789012345678901234567890",
			want:    common.HexToAddress("0x1234567890123456789012345678901234567890"),
		},
		{
			name:    "Checksummed address",
			address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			want:    common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"),
		},
		{
			name:    "Empty address",
			address: "",
			wantErr: true,
		},
		{
			name:    "Not hex",
			address: "did:ethr:0xzz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UserInfo{PublicAddress: tt.address}
			got, err := u.Address()
			if tt.wantErr {
				if err != ErrNoPublicAddress {
					t.Fatalf("Address() error = %v, want ErrNoPublicAddress", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Address() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Address() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserInfo_WireNames(t *testing.T) {
	raw := `{"issuer":"did:ethr:0x1","publicAddress":"0x1234567890123456789012345678901234567890","email":"a@b.c","phoneNumber":"+100","isMfaEnabled":true}`
	var u UserInfo
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := UserInfo{
		Issuer:        "did:ethr:0x1",
		PublicAddress: "0x1234567890123456789012345678901234567890",
		Email:         "a@b.c",
		PhoneNumber:   "+100",
		IsMfaEnabled:  true,
	}
	if u != want {
		t.Fatalf("got %+v want %+v", u, want)
	}
}

func TestConfigurations_OmitUnsetOptionals(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"get id token empty", GetIDTokenConfiguration{}, `{}`},
		{"generate id token", GenerateIDTokenConfiguration{Attachment: "nonce"}, `{"attachment":"nonce"}`},
		{"update email", UpdateEmailConfiguration{Email: "a@b.c"}, `{"email":"a@b.c"}`},
		{"recover account", RecoverAccountConfiguration{Email: "a@b.c"}, `{"email":"a@b.c"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Fatalf("got %s want %s", b, tt.want)
			}
		})
	}

	lifespan, showUI := 900, false
	b, _ := json.Marshal(GetIDTokenConfiguration{Lifespan: &lifespan})
	if string(b) != `{"lifespan":900}` {
		t.Fatalf("lifespan not encoded: %s", b)
	}
	b, _ = json.Marshal(UpdateEmailConfiguration{Email: "a@b.c", ShowUI: &showUI})
	if string(b) != `{"email":"a@b.c","showUI":false}` {
		t.Fatalf("showUI not encoded: %s", b)
	}
}
