// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// --- PG error mapping (pgx/libpq) ---

func pgCode(err error) (string, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

// IsUniqueViolation: constraint unik tertabrak (23505).
// Dipakai alur upsert "insert dulu, kalau bentrok retry sebagai update".
func IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == "23505"
}

func MapPGError(err error) (int, string) {
	if code, ok := pgCode(err); ok {
		switch code {
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23P01":
			return http.StatusConflict, "Bentrok data: time range overlap."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// WritePGError: response JSON dari error DB; *fiber.Error diteruskan apa adanya.
func WritePGError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
