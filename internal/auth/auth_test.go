package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", digest)

	assert.True(t, h.Verify("123456", digest))
	assert.False(t, h.Verify("1234567", digest))
	assert.False(t, h.Verify("123456", "not-a-digest"))

	other, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "digests are salted")
}

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("secret")

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		wantName string
		wantErr  error
	}{
		{
			name: "Valid",
			token: func(t *testing.T) string {
				token, err := m.Issue("Owner", time.Minute)
				require.NoError(t, err)
				return token
			},
			wantName: "Owner",
		},
		{
			name: "Expired",
			token: func(t *testing.T) string {
				token, err := m.Issue("Owner", -time.Minute)
				require.NoError(t, err)
				return token
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "OtherSecret",
			token: func(t *testing.T) string {
				token, err := NewTokenManager("other").Issue("Owner", time.Minute)
				require.NoError(t, err)
				return token
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "Garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: ErrTokenInvalid,
		},
		{
			name: "Tampered",
			token: func(t *testing.T) string {
				token, err := m.Issue("Owner", time.Minute)
				require.NoError(t, err)
				parts := strings.Split(token, ".")
				parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"Admin","exp":4102444800}`))
				return strings.Join(parts, ".")
			},
			wantErr: ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := m.Resolve(tt.token(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, name)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
