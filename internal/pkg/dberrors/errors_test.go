package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation errors arrive from pgx wrapped by the repository layer.
func wrappedUniqueViolation(constraint string) error {
	return fmt.Errorf("error creating account: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
	})
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(wrappedUniqueViolation("accounts_email_key")) {
		t.Error("wrapped 23505 error must be detected as a unique violation")
	}

	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "accounts_email_key"}
	if IsUniqueViolation(fkViolation) {
		t.Error("a non-23505 PgError is not a unique violation")
	}

	if IsUniqueViolation(errors.New("connection refused")) {
		t.Error("a non-pg error is not a unique violation")
	}
}

func TestIsUniqueViolationOn(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "email constraint matches",
			err:        wrappedUniqueViolation("accounts_email_key"),
			constraint: "accounts_email_key",
			want:       true,
		},
		{
			name:       "staff id constraint matches",
			err:        wrappedUniqueViolation("accounts_staff_id_key"),
			constraint: "accounts_staff_id_key",
			want:       true,
		},
		{
			name:       "email violation does not match the staff id constraint",
			err:        wrappedUniqueViolation("accounts_email_key"),
			constraint: "accounts_staff_id_key",
			want:       false,
		},
		{
			name:       "staff id violation does not match the email constraint",
			err:        wrappedUniqueViolation("accounts_staff_id_key"),
			constraint: "accounts_email_key",
			want:       false,
		},
		{
			name:       "wrong code",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "accounts_email_key"},
			constraint: "accounts_email_key",
			want:       false,
		},
		{
			name:       "non-pg error",
			err:        errors.New("dial tcp: connection refused"),
			constraint: "accounts_email_key",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolationOn(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsUniqueViolationOn(%v, %q) = %v, want %v", tt.err, tt.constraint, got, tt.want)
			}
		})
	}
}
