package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the JSON error body for err. Internal errors are
// logged and hidden behind fallbackMsg; client errors expose their message.
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}

	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	logger.Warn(fallbackMsg, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": msg})
}

// requireUserID returns the authenticated user or writes a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

const dateOnlyLayout = "2006-01-02"

// parseTimeQuery reads an optional RFC 3339 or YYYY-MM-DD query parameter.
// A date-only upper bound is extended to the last instant of that day.
func parseTimeQuery(c *gin.Context, name string, loc *time.Location, upperBound bool) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	day, err := time.ParseInLocation(dateOnlyLayout, raw, loc)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("'" + name + "' must be RFC 3339 or YYYY-MM-DD")
	}
	if upperBound {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, nil
}

// parseWindowQuery reads the optional from/to pair shared by list and report endpoints.
func parseWindowQuery(c *gin.Context, loc *time.Location) (from, to *time.Time, err error) {
	if from, err = parseTimeQuery(c, "from", loc, false); err != nil {
		return nil, nil, err
	}
	if to, err = parseTimeQuery(c, "to", loc, true); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
