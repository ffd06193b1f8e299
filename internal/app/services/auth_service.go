package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/repositories"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
	"github.com/educonnect/educonnect/internal/pkg/auth"
	"github.com/educonnect/educonnect/internal/pkg/validation"
)

// AuthService handles registration, login and profile operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, accountID int64) (*models.Account, error)
	UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

type authService struct {
	accountRepo repositories.IAccountRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo repositories.IAccountRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateEmail validates an email address
func (s *authService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewMissingFieldError("email")
	}

	ok := validation.NewStringValidation(email).
		WithPattern(validation.CompiledPatterns.Email).
		Validate()
	if !ok {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if a password meets requirements
func (s *authService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewMissingFieldError("password")
	}

	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// validateRoleFields enforces the per-role required fields
func (s *authService) validateRoleFields(req *dto.RegisterRequest) error {
	switch req.Role {
	case models.RoleStudent:
		if req.RollNo == "" {
			return apperrors.NewMissingFieldError("rollNo")
		}
		if req.Year == "" {
			return apperrors.NewMissingFieldError("year")
		}
		if req.Division == "" {
			return apperrors.NewMissingFieldError("division")
		}
	case models.RoleAlumni:
		// Alumni register with the student field set; roll number is enough
		// to match them against historical records.
		if req.RollNo == "" {
			return apperrors.NewMissingFieldError("rollNo")
		}
	case models.RoleStaff:
		if req.Department == "" {
			return apperrors.NewMissingFieldError("department")
		}
		if req.Designation == "" {
			return apperrors.NewMissingFieldError("designation")
		}
	default:
		return apperrors.ErrInvalidRole
	}

	return nil
}

// Register validates a registration request, creates the account and issues a
// session token. Duplicate emails surface as ErrEmailAlreadyExists whether
// they are caught by the pre-check or by the unique index on insert.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewMissingFieldError("name")
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.validateRoleFields(req); err != nil {
		return nil, err
	}

	// Advisory pre-check; the unique index remains the source of truth
	exists, err := s.accountRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.Role == models.RoleStaff && req.StaffID != "" {
		exists, err := s.accountRepo.StaffIDExists(ctx, req.StaffID)
		if err != nil {
			return nil, fmt.Errorf("error checking if staff ID exists: %w", err)
		}
		if exists {
			return nil, apperrors.ErrStaffIDExists
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Role:       req.Role,
		Status:     models.StatusPending,
		IsVerified: false,

		RollNo:   strPtr(req.RollNo),
		Year:     strPtr(req.Year),
		Division: strPtr(req.Division),
		PRN:      strPtr(req.PRN),
		Branch:   strPtr(req.Branch),
		Phone:    strPtr(req.Phone),
		Location: strPtr(req.Location),
		GradYear: strPtr(req.GradYear),
		Company:  strPtr(req.Company),
		Position: strPtr(req.Position),
		Skills:   strPtr(req.Skills),
		Linkedin: strPtr(req.Linkedin),

		Department:  strPtr(req.Department),
		Designation: strPtr(req.Designation),
		StaffID:     strPtr(req.StaffID),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	s.logger.Info().
		Int64("accountID", account.ID).
		Str("role", string(account.Role)).
		Msg("Account registered")

	return &dto.AuthResponse{
		Account:   account,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// Login authenticates an account by email and password. Unknown email, wrong
// password and a mismatched declared role all return the same
// ErrInvalidCredentials, so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewMissingFieldError("email and password")
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if req.Role != "" && req.Role != account.Role {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	s.logger.Info().
		Int64("accountID", account.ID).
		Str("role", string(account.Role)).
		Msg("Account logged in")

	return &dto.AuthResponse{
		Account:   account,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// GetProfile returns the caller's account
func (s *authService) GetProfile(ctx context.Context, accountID int64) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// UpdateProfile applies a partial, role-scoped update to the caller's
// account. The identity comes from the verified session token; the request
// cannot touch the password, role or verification state.
func (s *authService) UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewMissingFieldError("name")
		}
		account.Name = *req.Name
	}

	switch account.Role {
	case models.RoleStudent, models.RoleAlumni:
		applyIfSet(&account.RollNo, req.RollNo)
		applyIfSet(&account.Year, req.Year)
		applyIfSet(&account.Division, req.Division)
		applyIfSet(&account.PRN, req.PRN)
		applyIfSet(&account.Branch, req.Branch)
		applyIfSet(&account.Phone, req.Phone)
		applyIfSet(&account.Location, req.Location)
		applyIfSet(&account.GradYear, req.GradYear)
		applyIfSet(&account.Company, req.Company)
		applyIfSet(&account.Position, req.Position)
		applyIfSet(&account.Skills, req.Skills)
		applyIfSet(&account.Linkedin, req.Linkedin)
		applyIfSet(&account.Department, req.Department)
	case models.RoleStaff:
		applyIfSet(&account.Department, req.Department)
		applyIfSet(&account.Designation, req.Designation)
		applyIfSet(&account.Phone, req.Phone)
	case models.RoleAdmin:
		applyIfSet(&account.Institution, req.Institution)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("accountID", account.ID).Msg("Profile updated")

	return account, nil
}

// DeleteAccount removes the caller's account, freeing the email for
// re-registration.
func (s *authService) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return err
	}

	s.logger.Info().Int64("accountID", accountID).Msg("Account deleted")
	return nil
}

// strPtr returns a pointer for non-empty strings, nil otherwise
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// applyIfSet overwrites dst when the request field was present
func applyIfSet(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}
