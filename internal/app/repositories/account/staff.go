package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
)

// StaffRepository handles staff approval queries
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// ListPending returns staff accounts awaiting admin approval
func (r *StaffRepository) ListPending(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE role = 'staff' AND status = 'pending'
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing pending staff: %w", err)
	}
	defer rows.Close()

	var staff []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning pending staff: %w", err)
		}
		staff = append(staff, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending staff: %w", err)
	}

	return staff, nil
}

// Approve moves a staff account to approved and records its assigned scope
func (r *StaffRepository) Approve(ctx context.Context, id int64, assignedYear string, assignedClass *string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE accounts
		SET status = 'approved', is_verified = TRUE,
			assigned_year = $2, assigned_class = $3, updated_at = NOW()
		WHERE id = $1 AND role = 'staff'
		RETURNING `+accountColumns,
		id, assignedYear, assignedClass)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error approving staff: %w", err)
	}

	return a, nil
}

// Reject moves a staff account to rejected. Terminal; is_verified stays false.
func (r *StaffRepository) Reject(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET status = 'rejected', updated_at = NOW()
		WHERE id = $1 AND role = 'staff'`,
		id)

	if err != nil {
		return fmt.Errorf("error rejecting staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// StaffIDExists checks if a staff identifier is already in use
func (r *StaffRepository) StaffIDExists(ctx context.Context, staffID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE staff_id = $1)`,
		staffID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking staff ID: %w", err)
	}

	return exists, nil
}
