package position

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	Update(ctx context.Context, p *Position) error
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

func (r *repository) Create(ctx context.Context, p *Position) error {
	if r.tx != nil {
		query := `
			INSERT INTO positions (id, department_id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query, p.ID, p.DepartmentID, p.Name, p.Description)
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var p Position
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, p *Position) error {
	if r.tx != nil {
		query := `
			UPDATE positions
			SET department_id = $2, name = $3, description = $4, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, p.ID, p.DepartmentID, p.Name, p.Description)
		return err
	}
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		query := `
			UPDATE positions
			SET deleted_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query, id)
		return err
	}
	return r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id).Error
}
