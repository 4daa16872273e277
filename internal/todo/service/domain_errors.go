package service

import (
	"net/http"

	commonerrors "github.com/KarimovRD/fullstack-todo/backend/internal/common/errors"
)

var ErrTodoNotFound = commonerrors.NewDomainError(
	"TODO_NOT_FOUND",
	commonerrors.CategoryNotFound,
	http.StatusNotFound,
	"Todo not found",
)
