package tabular

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle: field sama → balik arah; field baru → reset ke asc.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Direction == Asc {
			return SortState{Field: field, Direction: Desc}
		}
		return SortState{Field: field, Direction: Asc}
	}
	return SortState{Field: field, Direction: Asc}
}

// Sort mengembalikan salinan terurut (stable). Input tidak diubah.
// Teks pakai collation locale English, angka pakai selisih numerik (missing = 0).
func Sort[T any](rows []T, field Field[T], dir Direction) []T {
	out := slices.Clone(rows)
	if out == nil {
		return []T{}
	}

	var cmp func(a, b T) int
	if field.IsNumeric() {
		cmp = func(a, b T) int {
			x, y := field.number(a), field.number(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	} else {
		// collator tidak goroutine-safe, jadi dibuat per panggilan
		col := collate.New(language.English)
		cmp = func(a, b T) int {
			x, _ := field.text(a)
			y, _ := field.text(b)
			return col.CompareString(x, y)
		}
	}

	if dir == Desc {
		asc := cmp
		cmp = func(a, b T) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}
