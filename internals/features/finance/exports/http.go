package exports

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	helper "pmics_backend/internals/helpers"
)

const (
	HeaderFormat   = "X-Export-Format"
	HeaderFallback = "X-Export-Fallback"
	HeaderError    = "X-Export-Error"
	HeaderRecords  = "X-Export-Records"
)

// WriteError memetakan error export ke response JSON.
func WriteError(c *fiber.Ctx, err error) error {
	var exErr *ExportError
	switch {
	case errors.Is(err, ErrNoData):
		return helper.JsonError(c, http.StatusNotFound, "No data available to download. Please adjust your filters.")
	case errors.Is(err, ErrUnknownColumn):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &exErr):
		return helper.JsonErrorDetails(c, http.StatusInternalServerError, "All export methods failed", map[string][]string{
			string(exErr.Preferred): {exErr.Cause.Error()},
			string(FormatCSV):       {exErr.Fallback.Error()},
		})
	default:
		return helper.WritePGError(c, err)
	}
}

// Send menulis file + header notifikasi fallback.
func Send(c *fiber.Ctx, res *Result) error {
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	c.Set(HeaderFormat, string(res.Format))
	c.Set(HeaderRecords, fmt.Sprint(res.Records))
	if res.Fallback {
		c.Set(HeaderFallback, "true")
		if res.Cause != nil {
			c.Set(HeaderError, oneLine(res.Cause.Error()))
		}
	}
	return c.Status(http.StatusOK).Send(res.Body)
}

const maxHeaderError = 200

// oneLine: nilai header satu baris, maksimal maxHeaderError byte, tidak memotong di tengah rune.
func oneLine(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	if len(s) <= maxHeaderError {
		return s
	}
	cut := maxHeaderError
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
