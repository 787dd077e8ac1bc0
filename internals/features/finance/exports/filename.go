package exports

import (
	"strconv"
	"strings"
)

// Filename: prefix_year[_part...], part "all"/kosong dilewati.
// Karakter yang tidak aman untuk nama file diganti "-".
func Filename(prefix string, year int, parts ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	if year > 0 {
		b.WriteString("_")
		b.WriteString(strconv.Itoa(year))
	}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "all" {
			continue
		}
		b.WriteString("_")
		b.WriteString(sanitize(p))
	}
	return b.String()
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ', ',', ';':
			return '-'
		}
		return r
	}, s)
}
