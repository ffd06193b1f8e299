package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/repositories"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
	"github.com/educonnect/educonnect/internal/pkg/auth"
)

// Default admin credentials. The password must be changed after first login;
// admins are auto-trusted and are never created through public registration.
const (
	defaultAdminName     = "EduConnect Admin"
	defaultAdminEmail    = "admin@educonnect.local"
	defaultAdminPassword = "ChangeMe123"
	defaultInstitution   = "EduConnect Institute"
)

// CreateDefaultData seeds the default admin account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := repositories.NewAccountRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	institution := defaultInstitution
	admin := &models.Account{
		Name:        defaultAdminName,
		Email:       defaultAdminEmail,
		Password:    hashedPassword,
		Role:        models.RoleAdmin,
		Status:      models.StatusApproved,
		IsVerified:  true,
		Institution: &institution,
	}

	if err := accountRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", defaultAdminEmail).Msg("Default admin already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
