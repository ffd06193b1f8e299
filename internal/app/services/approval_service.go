package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/repositories"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
)

// ApprovalService drives the staff and student verification state machine.
// Staff accounts move pending -> approved/rejected by an admin; student
// accounts move unverified -> verified (or rejected) by approved staff.
type ApprovalService interface {
	PendingStaff(ctx context.Context) ([]*models.Account, error)
	ApproveStaff(ctx context.Context, id int64, req *dto.ApproveStaffRequest) (*models.Account, error)
	RejectStaff(ctx context.Context, id int64) error

	PendingStudents(ctx context.Context, actor *models.Account, year, division string) ([]*models.Account, error)
	ApproveStudent(ctx context.Context, actor *models.Account, id int64) (*models.Account, error)
	RejectStudent(ctx context.Context, actor *models.Account, id int64) error
}

type approvalService struct {
	accountRepo repositories.IAccountRepository
	logger      zerolog.Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(accountRepo repositories.IAccountRepository, logger zerolog.Logger) ApprovalService {
	return &approvalService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// PendingStaff lists staff accounts awaiting admin approval
func (s *approvalService) PendingStaff(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.ListPendingStaff(ctx)
}

// ApproveStaff transitions a staff account from pending to approved and
// assigns the year (and optionally class) the staff member may verify.
func (s *approvalService) ApproveStaff(ctx context.Context, id int64, req *dto.ApproveStaffRequest) (*models.Account, error) {
	if req.AssignedYear == "" {
		return nil, apperrors.NewMissingFieldError("assignedYear")
	}

	staff, err := s.accountRepo.ApproveStaff(ctx, id, req.AssignedYear, req.AssignedClass)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("staffID", staff.ID).
		Str("assignedYear", req.AssignedYear).
		Msg("Staff account approved")

	return staff, nil
}

// RejectStaff transitions a staff account from pending to rejected. Terminal.
func (s *approvalService) RejectStaff(ctx context.Context, id int64) error {
	if err := s.accountRepo.RejectStaff(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("staffID", id).Msg("Staff account rejected")
	return nil
}

// PendingStudents lists unverified students visible to the acting staff
// member. Without an explicit year filter the staff member's assigned year
// applies, so staff only see the cohort they were scoped to on approval.
func (s *approvalService) PendingStudents(ctx context.Context, actor *models.Account, year, division string) ([]*models.Account, error) {
	if !actor.IsApprovedStaff() {
		return nil, apperrors.ErrStaffNotApproved
	}

	if year == "" && actor.AssignedYear != nil {
		year = *actor.AssignedYear
	}

	return s.accountRepo.ListPendingStudents(ctx, year, division)
}

// ApproveStudent marks a student account as verified
func (s *approvalService) ApproveStudent(ctx context.Context, actor *models.Account, id int64) (*models.Account, error) {
	if !actor.IsApprovedStaff() {
		return nil, apperrors.ErrStaffNotApproved
	}

	student, err := s.accountRepo.ApproveStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("approvedBy", actor.ID).
		Msg("Student account approved")

	return student, nil
}

// RejectStudent tags a student account as rejected. The record survives so
// the decision can be audited and reversed; the account drops out of the
// pending listing.
func (s *approvalService) RejectStudent(ctx context.Context, actor *models.Account, id int64) error {
	if !actor.IsApprovedStaff() {
		return apperrors.ErrStaffNotApproved
	}

	if err := s.accountRepo.RejectStudent(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentID", id).
		Int64("rejectedBy", actor.ID).
		Msg("Student account rejected")

	return nil
}
