package httperror

import (
	"context"
	"errors"
	"net/http"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/fetcher"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/finboard/backend/pkg/mirror"
	"github.com/finboard/backend/pkg/models"
	"github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// sqliteBusy is the primary result code of SQLite when the database is locked.
const sqliteBusy = 5

type Error struct {
	Message string `json:"error" example:"invalid input: month must be in YYYY-MM format"`
}

// New returns the error for the response body. Database errors are not
// exposed to clients.
func New(e error) Error {
	var sqliteErr *sqlite.Error
	if errors.As(e, &sqliteErr) {
		return Error{Message: "a database error occurred during your request"}
	}

	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	switch {
	case errors.Is(err, aggregate.ErrInvalidInput),
		errors.Is(err, types.ErrMonthFormat),
		errors.Is(err, models.ErrCategoryRequired),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQuery):
		return http.StatusBadRequest

	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, mirror.ErrSyncRunning):
		return http.StatusConflict

	// The client is gone in most cases, but the request may also
	// have hit the server's own deadline
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	case busy(err):
		return http.StatusServiceUnavailable

	case errors.Is(err, fetcher.ErrNetwork), errors.Is(err, fetcher.ErrInvalidPayload):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// busy reports whether err is caused by a locked mirror database, e.g.
// during a synchronization.
func busy(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqliteBusy
}
