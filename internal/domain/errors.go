package domain

import (
	"net/http"

	"github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

var (
	ErrDuplicateEmail     = errorutil.NewDomainError("DUPLICATE_EMAIL", "email already registered", http.StatusConflict, nil)
	ErrInvalidDomain      = errorutil.NewDomainError("INVALID_DOMAIN", "only college domain emails allowed", http.StatusBadRequest, nil)
	ErrPasswordMismatch   = errorutil.NewDomainError("PASSWORD_MISMATCH", "passwords do not match", http.StatusBadRequest, nil)
	ErrInvalidCredentials = errorutil.NewDomainError("INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized, nil)
	ErrUnknownUser        = errorutil.NewDomainError("UNKNOWN_USER", "user not found", http.StatusNotFound, nil)
	ErrUnknownDay         = errorutil.NewDomainError("UNKNOWN_DAY", "unknown menu day", http.StatusNotFound, nil)
	ErrInvalidRating      = errorutil.NewDomainError("INVALID_RATING", "rating must be between 1 and 5", http.StatusBadRequest, nil)
	ErrNotAuthenticated   = errorutil.NewDomainError("UNAUTHORIZED", "login required", http.StatusUnauthorized, nil)
	ErrSessionNotFound    = errorutil.NewDomainError("SESSION_NOT_FOUND", "session not found", http.StatusUnauthorized, nil)

	ErrAlreadyAuthenticated = errorutil.NewDomainError("ALREADY_AUTHENTICATED", "log out before logging in again", http.StatusConflict, nil)

	// ErrStorageLoadFailure is fatal: the process cannot run without a
	// readable, if empty, user store.
	ErrStorageLoadFailure = errorutil.NewDomainError("STORAGE_LOAD_FAILURE", "user store could not be loaded", http.StatusInternalServerError, nil)
)
