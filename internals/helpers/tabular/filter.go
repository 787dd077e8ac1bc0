package tabular

import "strings"

// SentinelAll menonaktifkan filter kategori.
const SentinelAll = "all"

// Predicate bernilai nil berarti filter tidak aktif.
type Predicate[T any] func(T) bool

// Search: case-insensitive substring di salah satu field teks.
// Term kosong → predicate nonaktif. Field kosong tidak pernah match.
func Search[T any](term string, fields ...Field[T]) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" || len(fields) == 0 {
		return nil
	}
	return func(row T) bool {
		for _, f := range fields {
			v, ok := f.text(row)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
		return false
	}
}

// Equal: exact match untuk filter kategori.
// "", "all", dan sentinel tambahan (mis. "all-courses") → nonaktif.
func Equal[T any](value string, field Field[T], sentinels ...string) Predicate[T] {
	value = strings.TrimSpace(value)
	if IsDisabled(value, sentinels...) {
		return nil
	}
	return func(row T) bool {
		v, ok := field.text(row)
		return ok && v == value
	}
}

func IsDisabled(value string, sentinels ...string) bool {
	if value == "" || value == SentinelAll {
		return true
	}
	for _, s := range sentinels {
		if value == s {
			return true
		}
	}
	return false
}

// Filter = AND dari semua predicate aktif. Urutan input dipertahankan.
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, p := range active {
			if !p(row) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}
