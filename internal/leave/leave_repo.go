package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Leave, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CreateApproval(ctx context.Context, a *LeaveApproval) error
	LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error)
	FindAllApprovals(ctx context.Context) ([]LeaveApproval, error)
	FindApprovalsByEmployee(ctx context.Context, employeeID string) ([]LeaveApproval, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	if r.tx != nil {
		query := `
			INSERT INTO leaves (id, employee_id, leave_type_id, start_date, end_date, reason, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query,
			l.ID, l.EmployeeID, l.LeaveTypeID, l.StartDate, l.EndDate, l.Reason, l.Status,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

// FindByIDForUpdate loads the leave row with a row lock so a racing
// resolver blocks until the caller's transaction finishes. It must run
// inside a transaction.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Leave, error) {
	if r.tx == nil {
		return nil, sql.ErrTxDone
	}
	query := `
		SELECT id, employee_id, leave_type_id, start_date, end_date, reason, status, created_at, updated_at
		FROM leaves
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`
	var l Leave
	err := r.tx.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.LeaveTypeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	if r.tx != nil {
		query := `
			UPDATE leaves
			SET status = $2, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, id, status)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CreateApproval(ctx context.Context, a *LeaveApproval) error {
	if r.tx != nil {
		query := `
			INSERT INTO leave_approvals (id, leave_id, approver_id, comments, approved_at, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
		`
		_, err := r.tx.ExecContext(ctx, query,
			a.ID, a.LeaveID, a.ApproverID, a.Comments, a.ApprovedAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) LeaveTypeExists(ctx context.Context, leaveTypeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Where("id = ?", leaveTypeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllApprovals(ctx context.Context) ([]LeaveApproval, error) {
	var approvals []LeaveApproval
	err := r.db.WithContext(ctx).
		Order("approved_at ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) FindApprovalsByEmployee(ctx context.Context, employeeID string) ([]LeaveApproval, error) {
	var approvals []LeaveApproval
	err := r.db.WithContext(ctx).
		Joins("JOIN leaves ON leaves.id = leave_approvals.leave_id").
		Where("leaves.employee_id = ?", employeeID).
		Order("leave_approvals.approved_at ASC").
		Find(&approvals).Error
	return approvals, err
}
