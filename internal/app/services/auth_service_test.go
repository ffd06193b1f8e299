package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
)

func newTestAuthService(repo *fakeAccountRepo) AuthService {
	return NewAuthService(repo, newTestJWTService(), testLogger())
}

func studentRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@college.edu",
		Password: "Passw0rd123",
		Role:     models.RoleStudent,
		RollNo:   "S-1042",
		Year:     "Second Year",
		Division: "A",
	}
}

func TestRegisterStudent(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), studentRegisterRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.Account.ID == 0 {
		t.Error("expected the account to be assigned an id")
	}
	if resp.Account.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", resp.Account.Status, models.StatusPending)
	}
	if resp.Account.IsVerified {
		t.Error("a new student must start unverified")
	}
	if resp.Account.Password == "Passw0rd123" {
		t.Error("password must be stored hashed")
	}
	if !strings.HasPrefix(resp.Account.Password, "$2") {
		t.Errorf("stored password %q is not a bcrypt hash", resp.Account.Password)
	}
	if resp.Account.RollNo == nil || *resp.Account.RollNo != "S-1042" {
		t.Errorf("RollNo not carried over: %v", resp.Account.RollNo)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.RegisterRequest)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(r *dto.RegisterRequest) { r.Name = "  " },
			wantErr: apperrors.ErrMissingField,
		},
		{
			name:    "invalid email",
			mutate:  func(r *dto.RegisterRequest) { r.Email = "not-an-email" },
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name:    "short password",
			mutate:  func(r *dto.RegisterRequest) { r.Password = "Ab1" },
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name:    "password without digit",
			mutate:  func(r *dto.RegisterRequest) { r.Password = "NoDigitsHere" },
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name:    "password without letter",
			mutate:  func(r *dto.RegisterRequest) { r.Password = "1234567890" },
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name:    "student missing roll number",
			mutate:  func(r *dto.RegisterRequest) { r.RollNo = "" },
			wantErr: apperrors.ErrMissingField,
		},
		{
			name:    "student missing year",
			mutate:  func(r *dto.RegisterRequest) { r.Year = "" },
			wantErr: apperrors.ErrMissingField,
		},
		{
			name:    "student missing division",
			mutate:  func(r *dto.RegisterRequest) { r.Division = "" },
			wantErr: apperrors.ErrMissingField,
		},
		{
			name: "alumni missing roll number",
			mutate: func(r *dto.RegisterRequest) {
				r.Role = models.RoleAlumni
				r.RollNo = ""
			},
			wantErr: apperrors.ErrMissingField,
		},
		{
			name: "staff missing department",
			mutate: func(r *dto.RegisterRequest) {
				r.Role = models.RoleStaff
				r.Designation = "Professor"
			},
			wantErr: apperrors.ErrMissingField,
		},
		{
			name: "unknown role",
			mutate: func(r *dto.RegisterRequest) {
				r.Role = models.RoleType("visitor")
			},
			wantErr: apperrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(newFakeAccountRepo())

			req := studentRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	seedAccount(t, repo, &models.Account{
		Name:     "Jane Doe",
		Email:    "jane@college.edu",
		Password: hashFast(t, "Passw0rd123"),
		Role:     models.RoleStudent,
		Status:   models.StatusPending,
		RollNo:   str("S-1042"),
		Year:     str("Second Year"),
		Division: str("A"),
	})

	// Same email, different role: still rejected, email is globally unique.
	second := &dto.RegisterRequest{
		Name:        "John Doe",
		Email:       "jane@college.edu",
		Password:    "Passw0rd123",
		Role:        models.RoleStaff,
		Department:  "Computer Science",
		Designation: "Professor",
	}
	_, err := svc.Register(context.Background(), second)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("Register error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterDuplicateStaffID(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	seedAccount(t, repo, &models.Account{
		Name:        "Sam Staff",
		Email:       "first@college.edu",
		Password:    hashFast(t, "Passw0rd123"),
		Role:        models.RoleStaff,
		Status:      models.StatusPending,
		Department:  str("Computer Science"),
		Designation: str("Professor"),
		StaffID:     str("EMP-007"),
	})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:        "Sam Staff",
		Email:       "second@college.edu",
		Password:    "Passw0rd123",
		Role:        models.RoleStaff,
		Department:  "Computer Science",
		Designation: "Professor",
		StaffID:     "EMP-007",
	})
	if !errors.Is(err, apperrors.ErrStaffIDExists) {
		t.Errorf("Register error = %v, want ErrStaffIDExists", err)
	}
}

// seedLoginStudent stores a student whose password is "Passw0rd123".
func seedLoginStudent(t *testing.T, repo *fakeAccountRepo) *models.Account {
	t.Helper()
	return seedAccount(t, repo, &models.Account{
		Name:     "Jane Doe",
		Email:    "jane@college.edu",
		Password: hashFast(t, "Passw0rd123"),
		Role:     models.RoleStudent,
		Status:   models.StatusPending,
		RollNo:   str("S-1042"),
		Year:     str("Second Year"),
		Division: str("A"),
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	seedLoginStudent(t, repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@college.edu",
		Password: "Passw0rd123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.Account.Email != "jane@college.edu" {
		t.Errorf("Account.Email = %q", resp.Account.Email)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	seedLoginStudent(t, repo)

	tests := []struct {
		name string
		req  *dto.LoginRequest
	}{
		{
			name: "unknown email",
			req:  &dto.LoginRequest{Email: "nobody@college.edu", Password: "Passw0rd123"},
		},
		{
			name: "wrong password",
			req:  &dto.LoginRequest{Email: "jane@college.edu", Password: "WrongPass1"},
		},
		{
			name: "role mismatch",
			req:  &dto.LoginRequest{Email: "jane@college.edu", Password: "Passw0rd123", Role: models.RoleStaff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginWithMatchingDeclaredRole(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	seedLoginStudent(t, repo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@college.edu",
		Password: "Passw0rd123",
		Role:     models.RoleStudent,
	})
	if err != nil {
		t.Errorf("Login with matching role returned error: %v", err)
	}
}

func TestUpdateProfileRoleAllowList(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	staff := seedAccount(t, repo, &models.Account{
		Name:        "Sam Staff",
		Email:       "sam@college.edu",
		Password:    "irrelevant",
		Role:        models.RoleStaff,
		Status:      models.StatusApproved,
		Department:  str("Computer Science"),
		Designation: str("Lecturer"),
	})

	updated, err := svc.UpdateProfile(context.Background(), staff.ID, &dto.UpdateProfileRequest{
		Designation: str("Professor"),
		RollNo:      str("S-9999"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	if updated.Designation == nil || *updated.Designation != "Professor" {
		t.Errorf("Designation = %v, want Professor", updated.Designation)
	}
	// RollNo is a student field; a staff update must not touch it.
	if updated.RollNo != nil {
		t.Errorf("RollNo = %q, want nil for a staff account", *updated.RollNo)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	student := seedAccount(t, repo, &models.Account{
		Name:     "Jane Doe",
		Email:    "jane@college.edu",
		Password: "irrelevant",
		Role:     models.RoleStudent,
		Status:   models.StatusPending,
		RollNo:   str("S-1042"),
		Year:     str("Second Year"),
		Division: str("A"),
	})

	updated, err := svc.UpdateProfile(context.Background(), student.ID, &dto.UpdateProfileRequest{
		Phone: str("555-0101"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	if updated.Phone == nil || *updated.Phone != "555-0101" {
		t.Errorf("Phone = %v, want 555-0101", updated.Phone)
	}
	// Untouched fields survive a partial update.
	if updated.RollNo == nil || *updated.RollNo != "S-1042" {
		t.Errorf("RollNo = %v, want S-1042", updated.RollNo)
	}
	if updated.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", updated.Name)
	}
}

func TestUpdateProfileEmptyName(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	student := seedAccount(t, repo, &models.Account{
		Name:     "Jane Doe",
		Email:    "jane@college.edu",
		Password: "irrelevant",
		Role:     models.RoleStudent,
	})

	_, err := svc.UpdateProfile(context.Background(), student.ID, &dto.UpdateProfileRequest{
		Name: str("   "),
	})
	if !errors.Is(err, apperrors.ErrMissingField) {
		t.Errorf("UpdateProfile error = %v, want ErrMissingField", err)
	}
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepo())

	_, err := svc.UpdateProfile(context.Background(), 999, &dto.UpdateProfileRequest{})
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Errorf("UpdateProfile error = %v, want ErrAccountNotFound", err)
	}
}

func TestDeleteAccountFreesEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	account := seedLoginStudent(t, repo)

	if err := svc.DeleteAccount(context.Background(), account.ID); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}

	if _, err := svc.GetProfile(context.Background(), account.ID); !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Errorf("GetProfile after delete: error = %v, want ErrAccountNotFound", err)
	}

	if _, err := svc.Register(context.Background(), studentRegisterRequest()); err != nil {
		t.Errorf("re-registering a deleted email should succeed, got %v", err)
	}
}
