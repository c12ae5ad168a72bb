package admin

import (
	"context"
	"testing"

	"predictacare-service/internal/app/config"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestAdminUsecase_Login(t *testing.T) {
	ctx := context.Background()
	uc := &adminUsecase{
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{
				Secret:        "test-secret",
				ExpTimeInHour: 1,
			},
			Admin: config.Admin{
				Email:    "admin@predictacare.com",
				Password: "super-secret",
			},
		},
	}

	t.Run("Correct Credentials Yield Admin Token", func(t *testing.T) {
		token, err := uc.Login(ctx, &requests.AdminLogin{
			Email:    "admin@predictacare.com",
			Password: "super-secret",
		})

		assert.NoError(t, err)
		subjectID, role, err := utils.ParseAuthJWT(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "admin@predictacare.com", subjectID)
		assert.Equal(t, constvars.RoleAdmin, role)
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.AdminLogin{
			Email:    "admin@predictacare.com",
			Password: "guess",
		})

		assert.Error(t, err)
	})

	t.Run("Wrong Email Rejected", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.AdminLogin{
			Email:    "intruder@predictacare.com",
			Password: "super-secret",
		})

		assert.Error(t, err)
	})
}
