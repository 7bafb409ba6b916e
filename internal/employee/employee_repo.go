package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	DeleteUserByEmployee(ctx context.Context, employeeID string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	if r.tx != nil {
		query := `
			INSERT INTO employees (
				id, department_id, position_id, full_name, employee_number,
				join_date, phone, address, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query,
			e.ID, e.DepartmentID, e.PositionID, e.FullName, e.EmployeeNumber,
			e.JoinDate, e.Phone, e.Address,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	if r.tx != nil {
		query := `
			UPDATE employees
			SET department_id = $2, position_id = $3, full_name = $4,
				join_date = $5, phone = $6, address = $7, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		_, err := r.tx.ExecContext(ctx, query,
			e.ID, e.DepartmentID, e.PositionID, e.FullName,
			e.JoinDate, e.Phone, e.Address,
		)
		return err
	}
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
		return err
	}
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) DeleteUserByEmployee(ctx context.Context, employeeID string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE users SET deleted_at = NOW() WHERE employee_id = $1 AND deleted_at IS NULL`, employeeID)
		return err
	}
	return r.db.WithContext(ctx).
		Table("users").
		Where("employee_id = ?", employeeID).
		Where("deleted_at IS NULL").
		Update("deleted_at", gorm.Expr("NOW()")).Error
}
