// file: internals/helpers/format/format.go
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money: "BDT 1,234,567.89". Kode kosong → angka saja.
func Money(code string, v float64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%.2f", v)
	if code = strings.TrimSpace(code); code == "" {
		return s
	}
	return code + " " + s
}

// Number: grouping ribuan, 2 desimal.
func Number(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", v)
}

// Percent: 0.8734 → "87.34%".
func Percent(rate float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f%%", rate*100)
}

// RoundCents membulatkan ke 2 desimal.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

var dayNames = map[string]string{
	"mon": "Monday",
	"tue": "Tuesday",
	"wed": "Wednesday",
	"thu": "Thursday",
	"fri": "Friday",
	"sat": "Saturday",
	"sun": "Sunday",
}

// DayName: "mon" / "Mon" / "monday" → "Monday". Tidak dikenal → apa adanya.
func DayName(day string) string {
	key := strings.ToLower(strings.TrimSpace(day))
	if len(key) >= 3 {
		if name, ok := dayNames[key[:3]]; ok {
			return name
		}
	}
	return day
}
