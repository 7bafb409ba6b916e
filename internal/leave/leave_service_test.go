package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	kafkaMock "go-leave/internal/messaging/kafka/mock"
	"go-leave/internal/policy"
	"go-leave/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn                  func(tx *sql.Tx) leave.Repository
	createFn                  func(ctx context.Context, l *leave.Leave) error
	findAllFn                 func(ctx context.Context) ([]leave.Leave, error)
	findAllByEmployeeFn       func(ctx context.Context, employeeID string) ([]leave.Leave, error)
	findByIDFn                func(ctx context.Context, id string) (*leave.Leave, error)
	findByIDForUpdateFn       func(ctx context.Context, id string) (*leave.Leave, error)
	updateStatusFn            func(ctx context.Context, id, status string) error
	createApprovalFn          func(ctx context.Context, a *leave.LeaveApproval) error
	leaveTypeExistsFn         func(ctx context.Context, leaveTypeID string) (bool, error)
	findAllApprovalsFn        func(ctx context.Context) ([]leave.LeaveApproval, error)
	findApprovalsByEmployeeFn func(ctx context.Context, employeeID string) ([]leave.LeaveApproval, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindByIDForUpdate(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeLeaveRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeLeaveRepository) CreateApproval(ctx context.Context, a *leave.LeaveApproval) error {
	if f.createApprovalFn != nil {
		return f.createApprovalFn(ctx, a)
	}
	return nil
}

func (f *fakeLeaveRepository) LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error) {
	if f.leaveTypeExistsFn != nil {
		return f.leaveTypeExistsFn(ctx, leaveTypeID)
	}
	return true, nil
}

func (f *fakeLeaveRepository) FindAllApprovals(ctx context.Context) ([]leave.LeaveApproval, error) {
	if f.findAllApprovalsFn != nil {
		return f.findAllApprovalsFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindApprovalsByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveApproval, error) {
	if f.findApprovalsByEmployeeFn != nil {
		return f.findApprovalsByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	svc := leave.NewService(db, repo)

	return &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func employeePrincipal(employeeID string) policy.Principal {
	return policy.Principal{
		UserID:     uuid.New().String(),
		EmployeeID: employeeID,
		Role:       policy.RoleEmployee,
	}
}

func managerPrincipal() policy.Principal {
	return policy.Principal{
		UserID:     uuid.New().String(),
		EmployeeID: uuid.New().String(),
		Role:       policy.RoleManager,
	}
}

func pendingLeave(id, employeeID string) *leave.Leave {
	return &leave.Leave{
		ID:          uuid.MustParse(id),
		EmployeeID:  uuid.MustParse(employeeID),
		LeaveTypeID: uuid.New(),
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Reason:      "Family event",
		Status:      leave.StatusPending,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	leaveTypeID := uuid.New().String()

	t.Run("success forces pending and requester from token", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID,
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-03",
			Reason:      "Family event",
		}

		deps.repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, uuid.MustParse(employeeID), l.EmployeeID)
			assert.Equal(t, uuid.MustParse(leaveTypeID), l.LeaveTypeID)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := deps.service.Create(ctx, employeePrincipal(employeeID), req)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.Duration)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID,
			StartDate:   "2026-03-05",
			EndDate:     "2026-03-01",
			Reason:      "Family event",
		}

		_, err := deps.service.Create(ctx, employeePrincipal(employeeID), req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative bad date format", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID,
			StartDate:   "01-03-2026",
			EndDate:     "2026-03-03",
			Reason:      "Family event",
		}

		_, err := deps.service.Create(ctx, employeePrincipal(employeeID), req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative unknown leave type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		req := leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID,
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-03",
			Reason:      "Family event",
		}

		deps.repo.leaveTypeExistsFn = func(ctx context.Context, id string) (bool, error) {
			assert.Equal(t, leaveTypeID, id)
			return false, nil
		}

		_, err := deps.service.Create(ctx, employeePrincipal(employeeID), req)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveTypeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative principal without employee profile", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID,
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-03",
			Reason:      "Family event",
		}

		_, err := deps.service.Create(ctx, employeePrincipal(""), req)

		assert.ErrorIs(t, err, leaveerrors.ErrNoEmployeeProfile)
	})
}

func TestLeaveService_DurationInclusive(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	cases := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"one day", "2026-03-10", "2026-03-10", 1},
		{"two days", "2026-03-10", "2026-03-11", 2},
		{"full week", "2026-03-09", "2026-03-15", 7},
		{"across month boundary", "2026-03-30", "2026-04-02", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupLeaveServiceTest(t)
			defer deps.db.Close()

			expectTx(t, deps.sqlMock, true)
			resp, err := deps.service.Create(ctx, employeePrincipal(employeeID), leave.CreateLeaveRequest{
				LeaveTypeID: uuid.New().String(),
				StartDate:   tc.start,
				EndDate:     tc.end,
				Reason:      "time off",
			})

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, resp.Duration)
		})
	}
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("manager sees every request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]leave.Leave, error) {
			return []leave.Leave{*pendingLeave(uuid.New().String(), uuid.New().String())}, nil
		}
		deps.repo.findAllByEmployeeFn = func(ctx context.Context, employeeID string) ([]leave.Leave, error) {
			t.Fatal("scoped query must not be used for managers")
			return nil, nil
		}

		resp, err := deps.service.GetAll(ctx, managerPrincipal())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("employee only sees own requests", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		deps.repo.findAllFn = func(ctx context.Context) ([]leave.Leave, error) {
			t.Fatal("unscoped query must not be used for employees")
			return nil, nil
		}
		deps.repo.findAllByEmployeeFn = func(ctx context.Context, eid string) ([]leave.Leave, error) {
			assert.Equal(t, employeeID, eid)
			return []leave.Leave{*pendingLeave(uuid.New().String(), employeeID)}, nil
		}

		resp, err := deps.service.GetAll(ctx, employeePrincipal(employeeID))

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, employeeID, resp[0].EmployeeID)
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]leave.Leave, error) {
			return nil, errors.New("db error")
		}

		resp, err := deps.service.GetAll(ctx, managerPrincipal())

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success own request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, employeeID), nil
		}

		resp, err := deps.service.GetByID(ctx, employeePrincipal(employeeID), id)

		assert.NoError(t, err)
		assert.Equal(t, id, resp.ID)
	})

	t.Run("negative foreign request forbidden", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}

		_, err := deps.service.GetByID(ctx, employeePrincipal(uuid.New().String()), id)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("manager reads foreign request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}

		_, err := deps.service.GetByID(ctx, managerPrincipal(), id)

		assert.NoError(t, err)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, managerPrincipal(), id)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Resolve(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success approve records approval and status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		p := managerPrincipal()
		var approvalSeen, statusSeen bool

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}
		deps.repo.createApprovalFn = func(ctx context.Context, a *leave.LeaveApproval) error {
			approvalSeen = true
			assert.Equal(t, uuid.MustParse(id), a.LeaveID)
			assert.Equal(t, uuid.MustParse(p.UserID), a.ApproverID)
			assert.Equal(t, "looks fine", a.Comments)
			return nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, targetID, status string) error {
			statusSeen = true
			assert.Equal(t, id, targetID)
			assert.Equal(t, leave.StatusApproved, status)
			return nil
		}

		resp, err := deps.service.Resolve(ctx, p, id, leave.ResolveLeaveRequest{
			Status:   leave.StatusApproved,
			Comments: "looks fine",
		})

		assert.NoError(t, err)
		assert.True(t, approvalSeen)
		assert.True(t, statusSeen)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success reject", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}

		resp, err := deps.service.Resolve(ctx, managerPrincipal(), id, leave.ResolveLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return nil, sql.ErrNoRows
		}

		_, err := deps.service.Resolve(ctx, managerPrincipal(), id, leave.ResolveLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative employee cannot resolve", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, targetID, status string) error {
			t.Fatal("status must not change on forbidden resolve")
			return nil
		}
		deps.repo.createApprovalFn = func(ctx context.Context, a *leave.LeaveApproval) error {
			t.Fatal("approval must not be written on forbidden resolve")
			return nil
		}

		_, err := deps.service.Resolve(ctx, employeePrincipal(uuid.New().String()), id, leave.ResolveLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already processed", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			l := pendingLeave(targetID, uuid.New().String())
			l.Status = leave.StatusApproved
			return l, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, targetID, status string) error {
			t.Fatal("a processed leave must stay unchanged")
			return nil
		}

		_, err := deps.service.Resolve(ctx, managerPrincipal(), id, leave.ResolveLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyProcessed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown target status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}

		_, err := deps.service.Resolve(ctx, managerPrincipal(), id, leave.ResolveLeaveRequest{
			Status: "deleted",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidResolution)
	})

	t.Run("success queues leave_resolved outbox event in the tx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeLeaveRepository{}
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		svc := leave.NewServiceWithOutbox(db, repo, outbox)

		expectTx(t, sqlMock, true)
		repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.LeaveResolvedTopic, e.Topic)
				assert.Equal(t, "leave_resolved", e.EventType)
				assert.Equal(t, id, e.AggregateID)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)
				return nil
			},
		)

		_, err = svc.Resolve(ctx, managerPrincipal(), id, leave.ResolveLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative racing approval maps to conflict", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}
		deps.repo.createApprovalFn = func(ctx context.Context, a *leave.LeaveApproval) error {
			return &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "idx_leave_approvals_leave_id",
			}
		}

		_, err := deps.service.Resolve(ctx, managerPrincipal(), id, leave.ResolveLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyResolved)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_CreateApproval(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New().String()

	t.Run("success resolves as approved", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		p := managerPrincipal()
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, targetID string) (*leave.Leave, error) {
			return pendingLeave(targetID, uuid.New().String()), nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, targetID, status string) error {
			assert.Equal(t, leave.StatusApproved, status)
			return nil
		}

		resp, err := deps.service.CreateApproval(ctx, p, leave.CreateApprovalRequest{
			LeaveID:  leaveID,
			Comments: "enjoy",
		})

		assert.NoError(t, err)
		assert.Equal(t, leaveID, resp.LeaveID)
		assert.Equal(t, p.UserID, resp.ApproverID)
		assert.Equal(t, "enjoy", resp.Comments)
	})
}

func TestLeaveService_ListApprovals(t *testing.T) {
	ctx := context.Background()

	t.Run("manager sees all approvals", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllApprovalsFn = func(ctx context.Context) ([]leave.LeaveApproval, error) {
			return []leave.LeaveApproval{{
				ID:         uuid.New(),
				LeaveID:    uuid.New(),
				ApproverID: uuid.New(),
				ApprovedAt: time.Now().UTC(),
			}}, nil
		}

		resp, err := deps.service.ListApprovals(ctx, managerPrincipal())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("employee scoped to own leaves", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		deps.repo.findAllApprovalsFn = func(ctx context.Context) ([]leave.LeaveApproval, error) {
			t.Fatal("unscoped query must not be used for employees")
			return nil, nil
		}
		deps.repo.findApprovalsByEmployeeFn = func(ctx context.Context, eid string) ([]leave.LeaveApproval, error) {
			assert.Equal(t, employeeID, eid)
			return nil, nil
		}

		_, err := deps.service.ListApprovals(ctx, employeePrincipal(employeeID))

		assert.NoError(t, err)
	})
}
