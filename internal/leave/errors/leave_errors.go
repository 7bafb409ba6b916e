package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"leave type does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrNoEmployeeProfile = apperror.New(
		apperror.CodeInvalidInput,
		"no employee profile linked to this account",
		http.StatusBadRequest,
	)
	ErrInvalidResolution = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of approved, rejected, cancelled",
		http.StatusBadRequest,
	)
	ErrLeaveAlreadyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been processed",
		http.StatusBadRequest,
	)
	ErrLeaveAlreadyResolved = apperror.New(
		apperror.CodeConflict,
		"leave request was resolved by another approver",
		http.StatusConflict,
	)
)
