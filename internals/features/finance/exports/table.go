// file: internals/features/finance/exports/table.go
package exports

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownColumn = errors.New("unknown export column")

type Kind int

const (
	KindText Kind = iota
	KindMoney
	KindNumber
)

func (k Kind) Numeric() bool { return k != KindText }

type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Kind   Kind   `json:"kind"`
}

type Cell struct {
	Text   string
	Number float64
}

type Table struct {
	Columns []Column
	Rows    [][]Cell
}

func (t Table) Len() int { return len(t.Rows) }

func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Header
	}
	return out
}

// Raw: nilai mentah untuk CSV (angka tanpa format).
func (t Table) Raw(row, col int) string {
	c := t.Rows[row][col]
	if t.Columns[col].Kind.Numeric() {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

/* =========================
   Flatten
   ========================= */

// ColumnDef mengikat kolom ke accessor baris bertipe T.
type ColumnDef[T any] struct {
	Column
	Text   func(T) string
	Number func(T) float64
}

func TextColumn[T any](key, header string, fn func(T) string) ColumnDef[T] {
	return ColumnDef[T]{Column: Column{Key: key, Header: header, Kind: KindText}, Text: fn}
}

func MoneyColumn[T any](key, header string, fn func(T) float64) ColumnDef[T] {
	return ColumnDef[T]{Column: Column{Key: key, Header: header, Kind: KindMoney}, Number: fn}
}

func NumberColumn[T any](key, header string, fn func(T) float64) ColumnDef[T] {
	return ColumnDef[T]{Column: Column{Key: key, Header: header, Kind: KindNumber}, Number: fn}
}

// Flatten memilih kolom (kosong = semua) dengan urutan kanonik defs.
func Flatten[T any](rows []T, defs []ColumnDef[T], selected []string) (Table, error) {
	want := map[string]bool{}
	for _, key := range selected {
		found := false
		for _, d := range defs {
			if d.Key == key {
				found = true
				break
			}
		}
		if !found {
			return Table{}, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
		want[key] = true
	}

	active := make([]ColumnDef[T], 0, len(defs))
	for _, d := range defs {
		if len(want) == 0 || want[d.Key] {
			active = append(active, d)
		}
	}

	t := Table{Columns: make([]Column, len(active)), Rows: make([][]Cell, 0, len(rows))}
	for i, d := range active {
		t.Columns[i] = d.Column
	}
	for _, r := range rows {
		cells := make([]Cell, len(active))
		for i, d := range active {
			if d.Number != nil {
				cells[i].Number = d.Number(r)
			} else if d.Text != nil {
				cells[i].Text = d.Text(r)
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}
