package leavetypeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var ErrLeaveTypeNotFound = apperror.New(
	apperror.CodeNotFound,
	"leave type not found",
	http.StatusNotFound,
)

var ErrLeaveTypeNameTaken = apperror.New(
	apperror.CodeConflict,
	"leave type name already exists",
	http.StatusConflict,
)
