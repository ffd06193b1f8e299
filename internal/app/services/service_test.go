package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
	"github.com/educonnect/educonnect/internal/pkg/auth"
)

// fakeAccountRepo is an in-memory IAccountRepository for service tests.
type fakeAccountRepo struct {
	nextID   int64
	accounts map[int64]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int64]*models.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, a *models.Account) error {
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if a.StaffID != nil && existing.StaffID != nil && *existing.StaffID == *a.StaffID {
			return apperrors.ErrStaffIDExists
		}
	}

	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt

	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int64) (*models.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountRepo) Update(_ context.Context, a *models.Account) error {
	if _, ok := f.accounts[a.ID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	a.UpdatedAt = time.Now()
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.accounts[id]; !ok {
		return apperrors.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) StaffIDExists(_ context.Context, staffID string) (bool, error) {
	for _, a := range f.accounts {
		if a.StaffID != nil && *a.StaffID == staffID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) ListPendingStaff(_ context.Context) ([]*models.Account, error) {
	var out []*models.Account
	for _, a := range f.accounts {
		if a.Role == models.RoleStaff && a.Status == models.StatusPending {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) ApproveStaff(_ context.Context, id int64, assignedYear string, assignedClass *string) (*models.Account, error) {
	a, ok := f.accounts[id]
	if !ok || a.Role != models.RoleStaff {
		return nil, apperrors.ErrAccountNotFound
	}
	a.Status = models.StatusApproved
	a.IsVerified = true
	a.AssignedYear = &assignedYear
	a.AssignedClass = assignedClass
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) RejectStaff(_ context.Context, id int64) error {
	a, ok := f.accounts[id]
	if !ok || a.Role != models.RoleStaff {
		return apperrors.ErrAccountNotFound
	}
	a.Status = models.StatusRejected
	a.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAccountRepo) ListPendingStudents(_ context.Context, year, division string) ([]*models.Account, error) {
	var out []*models.Account
	for _, a := range f.accounts {
		if a.Role != models.RoleStudent && a.Role != models.RoleAlumni {
			continue
		}
		if a.IsVerified || a.Status == models.StatusRejected {
			continue
		}
		if year != "" && (a.Year == nil || *a.Year != year) {
			continue
		}
		if division != "" && (a.Division == nil || *a.Division != division) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAccountRepo) ApproveStudent(_ context.Context, id int64) (*models.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	a.IsVerified = true
	a.Status = models.StatusApproved
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) RejectStudent(_ context.Context, id int64) error {
	a, ok := f.accounts[id]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	a.Status = models.StatusRejected
	a.UpdatedAt = time.Now()
	return nil
}

// newTestJWTService returns a JWT service with a fixed test secret.
func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "service-test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "educonnect.test",
	})
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func str(s string) *string {
	return &s
}

// hashFast hashes fixture passwords at the cheapest bcrypt cost so the suite
// stays fast. Production-cost hashing is covered by the auth package tests.
func hashFast(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}
	return string(hash)
}

// seedAccount inserts an account directly into the fake repository.
func seedAccount(t *testing.T, repo *fakeAccountRepo, a *models.Account) *models.Account {
	t.Helper()
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("failed to seed account %q: %v", a.Email, err)
	}
	return a
}
