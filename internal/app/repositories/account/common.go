package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
	"github.com/educonnect/educonnect/internal/pkg/dberrors"
)

// accountColumns is the canonical column list for reading accounts
const accountColumns = `id, name, email, password, role, status, is_verified, created_at, updated_at,
	roll_no, year, division, prn, branch, phone, location, grad_year,
	company, position, skills, linkedin,
	department, designation, staff_id, assigned_year, assigned_class, institution`

// rowScanner abstracts pgx.Row / pgx.Rows for the shared scan helper
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount scans a full account row in accountColumns order
func scanAccount(row rowScanner) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Password, &a.Role, &a.Status, &a.IsVerified, &a.CreatedAt, &a.UpdatedAt,
		&a.RollNo, &a.Year, &a.Division, &a.PRN, &a.Branch, &a.Phone, &a.Location, &a.GradYear,
		&a.Company, &a.Position, &a.Skills, &a.Linkedin,
		&a.Department, &a.Designation, &a.StaffID, &a.AssignedYear, &a.AssignedClass, &a.Institution,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Repository handles common account database operations
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateAccount inserts a new account and fills in the generated fields.
// The unique indexes are the arbiter for duplicates: a unique violation on
// email or staff_id comes back as the matching application error, never as a
// generic database failure.
func (r *Repository) CreateAccount(ctx context.Context, a *models.Account) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (
			name, email, password, role, status, is_verified,
			roll_no, year, division, prn, branch, phone, location, grad_year,
			company, position, skills, linkedin,
			department, designation, staff_id, institution
		)
		VALUES ($1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18,
			$19, $20, $21, $22)
		RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.Password, a.Role, a.Status, a.IsVerified,
		a.RollNo, a.Year, a.Division, a.PRN, a.Branch, a.Phone, a.Location, a.GradYear,
		a.Company, a.Position, a.Skills, a.Linkedin,
		a.Department, a.Designation, a.StaffID, a.Institution,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "accounts_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolationOn(err, "accounts_staff_id_key") {
			return apperrors.ErrStaffIDExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1`,
		id)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error reading account: %w", err)
	}

	return a, nil
}

// GetByEmail retrieves an account by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = $1`,
		email)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error reading account: %w", err)
	}

	return a, nil
}

// EmailExists checks if an email is already registered
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateAccount writes the mutable profile columns of an account. Role,
// password, status and verification flags are not touched here; the approval
// repositories own those transitions.
func (r *Repository) UpdateAccount(ctx context.Context, a *models.Account) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET name = $1,
			roll_no = $2, year = $3, division = $4, prn = $5, branch = $6,
			phone = $7, location = $8, grad_year = $9,
			company = $10, position = $11, skills = $12, linkedin = $13,
			department = $14, designation = $15, institution = $16,
			updated_at = NOW()
		WHERE id = $17`,
		a.Name,
		a.RollNo, a.Year, a.Division, a.PRN, a.Branch,
		a.Phone, a.Location, a.GradYear,
		a.Company, a.Position, a.Skills, a.Linkedin,
		a.Department, a.Designation, a.Institution,
		a.ID)

	if err != nil {
		return fmt.Errorf("error updating account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account by ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
