package utils

import (
	"testing"

	"predictacare-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash Then Check", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		assert.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)

		assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
		assert.False(t, CheckPasswordHash("correct horse battery", hash))
	})
}

func TestAuthJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateAuthJWT("user-1", constvars.RolePatient, secret, 1)
		assert.NoError(t, err)

		subjectID, role, err := ParseAuthJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", subjectID)
		assert.Equal(t, constvars.RolePatient, role)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		token, err := GenerateAuthJWT("user-1", constvars.RolePatient, secret, 1)
		assert.NoError(t, err)

		_, _, err = ParseAuthJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		token, err := GenerateAuthJWT("user-1", constvars.RolePatient, secret, -1)
		assert.NoError(t, err)

		_, _, err = ParseAuthJWT(token, secret)
		assert.Error(t, err)
	})
}

func TestVerifyHMACSHA256(t *testing.T) {
	secret := "webhook-secret"
	message := []byte(`{"event":"payment.captured"}`)

	t.Run("Matching Signature", func(t *testing.T) {
		signature := ComputeHMACSHA256(message, secret)
		assert.True(t, VerifyHMACSHA256(message, secret, signature))
	})

	t.Run("Changed Message", func(t *testing.T) {
		signature := ComputeHMACSHA256(message, secret)
		assert.False(t, VerifyHMACSHA256([]byte(`{"event":"payment.failed"}`), secret, signature))
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		signature := ComputeHMACSHA256(message, "other-secret")
		assert.False(t, VerifyHMACSHA256(message, secret, signature))
	})

	t.Run("Empty Signature", func(t *testing.T) {
		assert.False(t, VerifyHMACSHA256(message, secret, ""))
	})
}
