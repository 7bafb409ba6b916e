package leavetype

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id string) (*LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	if r.tx != nil {
		query := `
			INSERT INTO leave_types (id, name, description, max_days, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query, lt.ID, lt.Name, lt.Description, lt.MaxDays)
		return err
	}
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	return &lt, err
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	if r.tx != nil {
		query := `
			UPDATE leave_types
			SET name = $2, description = $3, max_days = $4, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, lt.ID, lt.Name, lt.Description, lt.MaxDays)
		return err
	}
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		query := `
			UPDATE leave_types
			SET deleted_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, id)
		return err
	}
	return r.db.WithContext(ctx).Delete(&LeaveType{}, "id = ?", id).Error
}
