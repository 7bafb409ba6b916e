package department

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, d *Department) error
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

func (r *repository) Create(ctx context.Context, d *Department) error {
	if r.tx != nil {
		query := `
			INSERT INTO departments (id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query, d.ID, d.Name, d.Description)
		return err
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var departments []Department
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&departments).Error
	return departments, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Department) error {
	if r.tx != nil {
		query := `
			UPDATE departments
			SET name = $2, description = $3, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, d.ID, d.Name, d.Description)
		return err
	}
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		query := `
			UPDATE departments
			SET deleted_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, id)
		return err
	}
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}
