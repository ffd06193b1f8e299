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

// StudentRepository handles student verification queries
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// ListPending returns unverified, non-rejected student and alumni accounts.
// Empty year/division mean no filter on that column.
func (r *StudentRepository) ListPending(ctx context.Context, year, division string) ([]*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE role IN ('student', 'alumni')
		  AND is_verified = FALSE
		  AND status <> 'rejected'`
	args := []any{}

	if year != "" {
		args = append(args, year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if division != "" {
		args = append(args, division)
		query += fmt.Sprintf(" AND division = $%d", len(args))
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing pending students: %w", err)
	}
	defer rows.Close()

	var students []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning pending student: %w", err)
		}
		students = append(students, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending students: %w", err)
	}

	return students, nil
}

// Approve marks a student account as verified and approved
func (r *StudentRepository) Approve(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE accounts
		SET is_verified = TRUE, status = 'approved', updated_at = NOW()
		WHERE id = $1 AND role IN ('student', 'alumni')
		RETURNING `+accountColumns,
		id)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error approving student: %w", err)
	}

	return a, nil
}

// Reject tags a student account as rejected. The record is kept; rejected
// accounts simply stop appearing in the pending listing.
func (r *StudentRepository) Reject(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET status = 'rejected', updated_at = NOW()
		WHERE id = $1 AND role IN ('student', 'alumni')`,
		id)

	if err != nil {
		return fmt.Errorf("error rejecting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}
