package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/events"
	identityerrors "go-leave/internal/identity/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/policy"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=identity_service.go -destination=mock/identity_service_mock.go -package=mock

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (TokenPairResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPairResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	AssignRole(ctx context.Context, userID string, req UpdateRoleRequest) (AuthResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	counter      counter.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("identity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		counter:      counterRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

// Register creates the Employee profile and its User credential record as
// one atomic pair. Either both rows exist afterwards or neither does.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		s.logger.Warn("register invalid join_date", zap.String("join_date", req.JoinDate))
		return AuthResponse{}, identityerrors.ErrInvalidJoinDate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
	if err != nil {
		s.logger.Error("register generate employee number failed", zap.Error(err))
		return AuthResponse{}, err
	}

	empl := &employee.Employee{
		ID:             uuid.New(),
		FullName:       req.Name,
		EmployeeNumber: fmt.Sprintf("EMP-%06d", nextVal),
		JoinDate:       joinDate,
		Phone:          req.Phone,
		Address:        req.Address,
		DepartmentID:   uuidPtr(req.DepartmentID),
		PositionID:     uuidPtr(req.PositionID),
	}
	if err := s.employeeRepo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("register employee persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: &empl.ID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       policy.RoleEmployee,
		IsActive:   true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		s.logger.Error("register user persist failed", zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			UserID:     user.ID.String(),
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return AuthResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("register outbox persist failed", zap.Error(err))
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return AuthResponse{}, err
	}
	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToAuthResponse(user), nil
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPairResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return TokenPairResponse{}, identityerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenPairResponse{}, identityerrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPairResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, identityerrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPairResponse{}, identityerrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPairResponse{}, identityerrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return TokenPairResponse{}, identityerrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return TokenPairResponse{}, identityerrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPairResponse{}, identityerrors.ErrUserNotFound
	}

	return s.issueTokenPair(user)
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, identityerrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, identityerrors.ErrUserNotFound
	}

	resp := mapToAuthResponse(u)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return identityerrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return identityerrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return identityerrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.Error(err))
		return err
	}
	s.logger.Info("change password success", zap.String("user_id", userID))
	return nil
}

// AssignRole promotes or demotes an existing account. It sits behind an
// admin-only gate; issued access tokens keep their old role until refresh.
func (s *service) AssignRole(ctx context.Context, userID string, req UpdateRoleRequest) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, identityerrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, identityerrors.ErrUserNotFound
	}

	if err := s.repo.UpdateRole(ctx, id, req.Role); err != nil {
		s.logger.Error("assign role persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	user.Role = req.Role
	s.logger.Info("assign role success",
		zap.String("user_id", userID),
		zap.String("role", req.Role),
	)
	return mapToAuthResponse(user), nil
}

func (s *service) issueTokenPair(user *User) (TokenPairResponse, error) {
	accessToken, err := generateToken(user, time.Minute*15)
	if err != nil {
		return TokenPairResponse{}, identityerrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(user, time.Hour*24*7)
	if err != nil {
		return TokenPairResponse{}, identityerrors.ErrTokenGenerationFailed
	}

	return TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         mapToAuthResponse(user),
	}, nil
}

func generateToken(user *User, ttl time.Duration) (string, error) {
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = user.EmployeeID.String()
	}

	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"employee_id": employeeID,
		"role":        user.Role,
		"exp":         time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
			return identityerrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "email") {
		return identityerrors.ErrEmailAlreadyRegistered
	}

	return err
}

func uuidPtr(v string) *uuid.UUID {
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func mapToAuthResponse(u *User) AuthResponse {
	resp := AuthResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = u.EmployeeID.String()
	}
	return resp
}
