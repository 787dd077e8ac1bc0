package helper

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPGError memetakan error PostgreSQL (driver gorm = pgx) ke status HTTP.
func MapPGError(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "Database timeout."
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapSQLState(pgxErr.Code, pgxErr.Message)
	}
	return http.StatusInternalServerError, err.Error()
}

func mapSQLState(code, message string) (int, string) {
	switch code {
	case "23503":
		return http.StatusBadRequest, "Referenced record not found (FK violation)."
	case "23505":
		return http.StatusConflict, "Duplicate record (unique violation)."
	case "57014":
		return http.StatusGatewayTimeout, "Query cancelled (statement timeout)."
	case "42883":
		return http.StatusInternalServerError, "Report function is not available: " + message
	default:
		return http.StatusInternalServerError, message
	}
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
