package core

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedCredential(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeIdentity(t *testing.T) {
	t.Run("Sales Credential", func(t *testing.T) {
		credential := signedCredential(t, jwt.MapClaims{"sub": "rita@clinic.example", "role": "sales"})

		id, err := DecodeIdentity(credential)

		require.NoError(t, err)
		assert.Equal(t, "rita@clinic.example", id.Email)
		assert.Equal(t, RoleSales, id.Role)
	})

	t.Run("Doctor Credential", func(t *testing.T) {
		credential := signedCredential(t, jwt.MapClaims{"sub": "dr.rao@clinic.example", "role": "doctor"})

		id, err := DecodeIdentity(credential)

		require.NoError(t, err)
		assert.Equal(t, "dr.rao@clinic.example", id.Email)
		assert.Equal(t, RoleDoctor, id.Role)
	})

	t.Run("Signature Is Not Checked", func(t *testing.T) {
		credential := signedCredential(t, jwt.MapClaims{"sub": "rita@clinic.example", "role": "sales"})
		tampered := credential[:len(credential)-4] + "AAAA"

		id, err := DecodeIdentity(tampered)

		require.NoError(t, err)
		assert.Equal(t, RoleSales, id.Role)
	})

	t.Run("Two Part Token", func(t *testing.T) {
		_, err := DecodeIdentity("abc.def")
		assert.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("Garbage Payload", func(t *testing.T) {
		_, err := DecodeIdentity("eyJhbGciOiJIUzI1NiJ9.%%%not-base64%%%.sig")
		assert.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("Missing Subject", func(t *testing.T) {
		credential := signedCredential(t, jwt.MapClaims{"role": "doctor"})

		_, err := DecodeIdentity(credential)

		assert.ErrorIs(t, err, ErrMalformedCredential)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		credential := signedCredential(t, jwt.MapClaims{"sub": "eve@clinic.example", "role": "admin"})

		_, err := DecodeIdentity(credential)

		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("Missing Role", func(t *testing.T) {
		credential := signedCredential(t, jwt.MapClaims{"sub": "eve@clinic.example"})

		_, err := DecodeIdentity(credential)

		assert.ErrorIs(t, err, ErrUnknownRole)
	})
}
