package service

import (
	"net/http"

	commonerrors "github.com/KarimovRD/fullstack-todo/backend/internal/common/errors"
)

var (
	ErrDuplicateUser = commonerrors.NewDomainError(
		"DUPLICATE_USER",
		commonerrors.CategoryConflict,
		http.StatusBadRequest,
		"Username already exists",
	)

	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid credentials",
	)

	ErrInvalidToken = commonerrors.NewDomainError(
		"INVALID_TOKEN",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid token",
	)
)
