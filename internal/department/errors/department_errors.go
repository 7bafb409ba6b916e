package departmenterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var ErrDepartmentNotFound = apperror.New(
	apperror.CodeNotFound,
	"department not found",
	http.StatusNotFound,
)
