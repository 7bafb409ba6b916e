package app

import (
	"database/sql"

	"go-leave/internal/department"
	"go-leave/internal/employee"
	"go-leave/internal/identity"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/position"
	"go-leave/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	identityRepo := identity.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo)
	identityService := identity.NewService(db, identityRepo, employeeRepo, counterRepo, outboxRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, outboxRepo)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb)
	positionService := position.NewService(db, positionRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	identityHandler := identity.NewHandler(identityService)
	leaveHandler := leave.NewHandler(leaveService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	positionHandler := position.NewHandler(positionService)

	// --- Routes Registration ---
	router.GET("/healthz", HealthHandler(db, rdb))

	api := router.Group("/api/v1")
	{
		identity.RegisterRoutes(api, identityHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
		leavetype.RegisterRoutes(api, leaveTypeHandler)
		position.RegisterRoutes(api, positionHandler)
	}

	return nil
}
