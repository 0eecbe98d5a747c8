// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMap: konversi error validator → map field → pesan
// (bentuk standar untuk JsonValidationError).
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "min":
			msg = fmt.Sprintf("minimal %s", fe.Param())
		case "max":
			msg = fmt.Sprintf("maksimal %s", fe.Param())
		case "oneof":
			msg = fmt.Sprintf("harus salah satu dari: %s", fe.Param())
		case "uuid":
			msg = "harus UUID valid"
		case "datetime":
			msg = fmt.Sprintf("format harus %s", fe.Param())
		default:
			msg = fmt.Sprintf("tidak valid (%s)", fe.Tag())
		}
		out[field] = append(out[field], msg)
	}
	return out
}
