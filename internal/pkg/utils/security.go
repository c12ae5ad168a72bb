package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAuthJWT(subjectID, role, secret string, expTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   subjectID,
		"role": role,
		"exp":  time.Now().Add(time.Duration(expTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParseAuthJWT validates the token signature and expiry and returns the
// subject id and role claims.
func ParseAuthJWT(tokenString, secret string) (subjectID string, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", exceptions.ErrTokenInvalidOrExpired(errors.New("claims missing or token invalid"))
	}

	subjectID, _ = claims["id"].(string)
	role, _ = claims["role"].(string)
	if subjectID == "" || role == "" {
		return "", "", exceptions.ErrTokenInvalidOrExpired(errors.New("id or role claim missing"))
	}
	return subjectID, role, nil
}

// ComputeHMACSHA256 returns the lowercase hex digest of the message under the
// given secret. This is the construction Razorpay uses for both the checkout
// signature (orderId|paymentId) and webhook payload signing.
func ComputeHMACSHA256(message []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMACSHA256 constant-time-compares the provided hex signature against
// the recomputed digest.
func VerifyHMACSHA256(message []byte, secret, signature string) bool {
	expected := ComputeHMACSHA256(message, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
