package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/policy"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

func isResolutionStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected || status == StatusCancelled
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, p policy.Principal, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, p policy.Principal) ([]LeaveResponse, error)
	GetByID(ctx context.Context, p policy.Principal, id string) (LeaveResponse, error)
	Resolve(ctx context.Context, p policy.Principal, id string, req ResolveLeaveRequest) (LeaveResponse, error)
	ListApprovals(ctx context.Context, p policy.Principal) ([]ApprovalResponse, error)
	CreateApproval(ctx context.Context, p policy.Principal, req CreateApprovalRequest) (ApprovalResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, p policy.Principal, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", p.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	// Pemohon selalu employee milik token, bukan dari request body
	employeeID, err := uuid.Parse(p.EmployeeID)
	if err != nil {
		s.logger.Warn("create leave without employee profile",
			zap.String("request_id", rid),
			zap.String("user_id", p.UserID),
		)
		return LeaveResponse{}, leaveerrors.ErrNoEmployeeProfile
	}

	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, apperror.InvalidField("leave_type_id")
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.LeaveTypeExists(ctx, req.LeaveTypeID)
	if err != nil {
		s.logger.Error("create leave type check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotFound
	}

	l := &Leave{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      StatusPending,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveRequestedEvent{
			EventType:   "leave_requested",
			RequestID:   rid,
			LeaveID:     l.ID.String(),
			EmployeeID:  l.EmployeeID.String(),
			LeaveTypeID: l.LeaveTypeID.String(),
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return LeaveResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create leave outbox persist failed",
				zap.String("leave_id", l.ID.String()),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", l.EmployeeID.String()),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, p policy.Principal) ([]LeaveResponse, error) {
	if p.IsElevated() {
		leaves, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(leaves), nil
	}

	if p.EmployeeID == "" {
		return []LeaveResponse{}, nil
	}
	leaves, err := s.repo.FindAllByEmployee(ctx, p.EmployeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, p policy.Principal, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !policy.CanViewLeave(p, l.EmployeeID.String()) {
		return LeaveResponse{}, apperror.ErrForbidden
	}

	return mapToResponse(*l), nil
}

func (s *service) Resolve(ctx context.Context, p policy.Principal, id string, req ResolveLeaveRequest) (LeaveResponse, error) {
	l, _, err := s.resolve(ctx, p, id, req.Status, req.Comments)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) CreateApproval(ctx context.Context, p policy.Principal, req CreateApprovalRequest) (ApprovalResponse, error) {
	_, a, err := s.resolve(ctx, p, req.LeaveID, StatusApproved, req.Comments)
	if err != nil {
		return ApprovalResponse{}, err
	}
	return mapApprovalToResponse(*a), nil
}

// resolve moves a pending leave to its terminal status and records the
// approval, all in one transaction. The row lock serializes concurrent
// resolvers; the unique index on leave_approvals.leave_id catches
// anything the lock did not.
func (s *service) resolve(ctx context.Context, p policy.Principal, id, status, comments string) (*Leave, *LeaveApproval, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("resolve leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("target_status", status),
		zap.String("approver_user_id", p.UserID),
	)

	approverID, err := uuid.Parse(p.UserID)
	if err != nil {
		return nil, nil, apperror.ErrUnauthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve leave begin tx failed", zap.Error(err))
		return nil, nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("resolve leave lock failed", zap.String("leave_id", id), zap.Error(err))
		return nil, nil, err
	}

	if !policy.CanResolveLeave(p) {
		s.logger.Warn("resolve leave forbidden",
			zap.String("leave_id", id),
			zap.String("user_id", p.UserID),
			zap.String("role", p.Role),
		)
		return nil, nil, apperror.ErrForbidden
	}

	if l.Status != StatusPending {
		s.logger.Warn("resolve leave already processed",
			zap.String("leave_id", id),
			zap.String("current_status", l.Status),
		)
		return nil, nil, leaveerrors.ErrLeaveAlreadyProcessed
	}

	if !isResolutionStatus(status) {
		return nil, nil, leaveerrors.ErrInvalidResolution
	}

	now := time.Now().UTC()
	a := &LeaveApproval{
		ID:         uuid.New(),
		LeaveID:    l.ID,
		ApproverID: approverID,
		Comments:   comments,
		ApprovedAt: now,
	}
	if err := qtx.CreateApproval(ctx, a); err != nil {
		s.logger.Error("resolve leave approval persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return nil, nil, mapResolveError(err)
	}
	if err := qtx.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("resolve leave status persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return nil, nil, err
	}
	l.Status = status
	l.UpdatedAt = now

	if s.outbox != nil {
		event := events.LeaveResolvedEvent{
			EventType:  "leave_resolved",
			RequestID:  rid,
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			Status:     status,
			ApproverID: approverID.String(),
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return nil, nil, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveResolvedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("resolve leave outbox persist failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return nil, nil, mapResolveError(err)
	}
	s.logger.Info("resolve leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", status),
	)

	return l, a, nil
}

func (s *service) ListApprovals(ctx context.Context, p policy.Principal) ([]ApprovalResponse, error) {
	if p.IsElevated() {
		approvals, err := s.repo.FindAllApprovals(ctx)
		if err != nil {
			return nil, err
		}
		return mapApprovalsToResponse(approvals), nil
	}

	if p.EmployeeID == "" {
		return []ApprovalResponse{}, nil
	}
	approvals, err := s.repo.FindApprovalsByEmployee(ctx, p.EmployeeID)
	if err != nil {
		return nil, err
	}
	return mapApprovalsToResponse(approvals), nil
}

func mapResolveError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "leave_id") {
			return leaveerrors.ErrLeaveAlreadyResolved
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "leave_id") {
		return leaveerrors.ErrLeaveAlreadyResolved
	}

	return err
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// durationDays is inclusive on both ends, a one day leave has
// start_date == end_date and duration 1.
func durationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		Duration:    durationDays(l.StartDate, l.EndDate),
		Reason:      l.Reason,
		Status:      l.Status,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

func mapApprovalToResponse(a LeaveApproval) ApprovalResponse {
	return ApprovalResponse{
		ID:         a.ID.String(),
		LeaveID:    a.LeaveID.String(),
		ApproverID: a.ApproverID.String(),
		Comments:   a.Comments,
		ApprovedAt: a.ApprovedAt.Format(time.RFC3339),
	}
}

func mapApprovalsToResponse(approvals []LeaveApproval) []ApprovalResponse {
	resp := make([]ApprovalResponse, len(approvals))
	for i, a := range approvals {
		resp[i] = mapApprovalToResponse(a)
	}
	return resp
}
