package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/repositories/account"
)

// IAccountRepository defines the interface for account-related database operations
type IAccountRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error

	// Registration checks
	EmailExists(ctx context.Context, email string) (bool, error)
	StaffIDExists(ctx context.Context, staffID string) (bool, error)

	// Approval workflow
	ListPendingStaff(ctx context.Context) ([]*models.Account, error)
	ApproveStaff(ctx context.Context, id int64, assignedYear string, assignedClass *string) (*models.Account, error)
	RejectStaff(ctx context.Context, id int64) error
	ListPendingStudents(ctx context.Context, year, division string) ([]*models.Account, error)
	ApproveStudent(ctx context.Context, id int64) (*models.Account, error)
	RejectStudent(ctx context.Context, id int64) error
}

// AccountRepository combines the account sub-repositories
type AccountRepository struct {
	common  *account.Repository
	student *account.StudentRepository
	staff   *account.StaffRepository
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		common:  account.NewRepository(db),
		student: account.NewStudentRepository(db),
		staff:   account.NewStaffRepository(db),
	}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	return r.common.CreateAccount(ctx, a)
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return r.common.GetByID(ctx, id)
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.common.GetByEmail(ctx, email)
}

// Update updates an account's mutable profile fields
func (r *AccountRepository) Update(ctx context.Context, a *models.Account) error {
	return r.common.UpdateAccount(ctx, a)
}

// Delete removes an account
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	return r.common.Delete(ctx, id)
}

// EmailExists checks if an email already exists
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// StaffIDExists checks if a staff identifier already exists
func (r *AccountRepository) StaffIDExists(ctx context.Context, staffID string) (bool, error) {
	return r.staff.StaffIDExists(ctx, staffID)
}

// ListPendingStaff returns staff accounts with pending status
func (r *AccountRepository) ListPendingStaff(ctx context.Context) ([]*models.Account, error) {
	return r.staff.ListPending(ctx)
}

// ApproveStaff approves a staff account and assigns its scope
func (r *AccountRepository) ApproveStaff(ctx context.Context, id int64, assignedYear string, assignedClass *string) (*models.Account, error) {
	return r.staff.Approve(ctx, id, assignedYear, assignedClass)
}

// RejectStaff rejects a staff account
func (r *AccountRepository) RejectStaff(ctx context.Context, id int64) error {
	return r.staff.Reject(ctx, id)
}

// ListPendingStudents returns unverified student accounts
func (r *AccountRepository) ListPendingStudents(ctx context.Context, year, division string) ([]*models.Account, error) {
	return r.student.ListPending(ctx, year, division)
}

// ApproveStudent verifies a student account
func (r *AccountRepository) ApproveStudent(ctx context.Context, id int64) (*models.Account, error) {
	return r.student.Approve(ctx, id)
}

// RejectStudent rejects a student account
func (r *AccountRepository) RejectStudent(ctx context.Context, id int64) error {
	return r.student.Reject(ctx, id)
}
