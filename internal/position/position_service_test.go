package position_test

import (
	"context"
	"database/sql"
	"testing"

	"go-leave/internal/position"
	positionerrors "go-leave/internal/position/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePositionRepository struct {
	withTxFn           func(tx *sql.Tx) position.Repository
	createFn           func(ctx context.Context, p *position.Position) error
	findAllFn          func(ctx context.Context) ([]position.Position, error)
	findByIDFn         func(ctx context.Context, id string) (*position.Position, error)
	departmentExistsFn func(ctx context.Context, departmentID string) (bool, error)
	updateFn           func(ctx context.Context, p *position.Position) error
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakePositionRepository) WithTx(tx *sql.Tx) position.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePositionRepository) Create(ctx context.Context, p *position.Position) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePositionRepository) FindAll(ctx context.Context) ([]position.Position, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePositionRepository) FindByID(ctx context.Context, id string) (*position.Position, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePositionRepository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	if f.departmentExistsFn != nil {
		return f.departmentExistsFn(ctx, departmentID)
	}
	return true, nil
}

func (f *fakePositionRepository) Update(ctx context.Context, p *position.Position) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePositionRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type positionServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service position.Service
	repo    *fakePositionRepository
}

func setupPositionServiceTest(t *testing.T) *positionServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePositionRepository{}
	svc := position.NewService(db, repo)

	return &positionServiceDeps{
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

func TestPositionService_Create(t *testing.T) {
	ctx := context.Background()
	departmentID := uuid.New().String()

	t.Run("success creates position linked to its department", func(t *testing.T) {
		deps := setupPositionServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		var created *position.Position
		deps.repo.createFn = func(ctx context.Context, p *position.Position) error {
			created = p
			return nil
		}

		resp, err := deps.service.Create(ctx, position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: departmentID,
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, departmentID, resp.DepartmentID)
		assert.Equal(t, "Backend Engineer", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown department rejects the create", func(t *testing.T) {
		deps := setupPositionServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.departmentExistsFn = func(ctx context.Context, targetID string) (bool, error) {
			assert.Equal(t, departmentID, targetID)
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, p *position.Position) error {
			t.Fatal("create must not be called when the department does not exist")
			return nil
		}

		_, err := deps.service.Create(ctx, position.CreatePositionRequest{
			Name:         "Backend Engineer",
			DepartmentID: departmentID,
		})

		assert.ErrorIs(t, err, positionerrors.ErrDepartmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPositionService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative unknown id maps to not found", func(t *testing.T) {
		deps := setupPositionServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
	})
}

func TestPositionService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success moves position to another department", func(t *testing.T) {
		deps := setupPositionServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		id := uuid.New()
		newDepartment := uuid.New().String()
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*position.Position, error) {
			return &position.Position{ID: id, DepartmentID: uuid.New(), Name: "Backend Engineer"}, nil
		}

		resp, err := deps.service.Update(ctx, id.String(), position.UpdatePositionRequest{
			Name:         "Senior Backend Engineer",
			DepartmentID: newDepartment,
		})

		assert.NoError(t, err)
		assert.Equal(t, newDepartment, resp.DepartmentID)
		assert.Equal(t, "Senior Backend Engineer", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown position maps to not found", func(t *testing.T) {
		deps := setupPositionServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Update(ctx, uuid.New().String(), position.UpdatePositionRequest{
			Name:         "X",
			DepartmentID: uuid.New().String(),
		})

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPositionService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("negative unknown id maps to not found", func(t *testing.T) {
		deps := setupPositionServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			t.Fatal("delete must not be called for an unknown position")
			return nil
		}

		err := deps.service.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
