// Package tabular berisi pipeline filter → sort → paginate yang dipakai bareng
// oleh laporan keuangan dan kalender jadwal. Semua fungsi murni, tidak ada I/O.
package tabular

// Field mendeskripsikan satu kolom dari baris bertipe T.
// Tepat satu dari Text / Number yang diisi. Nilai ok=false berarti field kosong
// (NULL di DB / tidak ada di record).
type Field[T any] struct {
	Key    string
	Text   func(T) (string, bool)
	Number func(T) (float64, bool)
}

func TextField[T any](key string, fn func(T) (string, bool)) Field[T] {
	return Field[T]{Key: key, Text: fn}
}

func NumberField[T any](key string, fn func(T) (float64, bool)) Field[T] {
	return Field[T]{Key: key, Number: fn}
}

// StringOf: untuk field yang selalu terisi kecuali string kosong.
func StringOf[T any](fn func(T) string) func(T) (string, bool) {
	return func(row T) (string, bool) {
		v := fn(row)
		return v, v != ""
	}
}

// NumberOf: untuk field numerik yang selalu ada.
func NumberOf[T any](fn func(T) float64) func(T) (float64, bool) {
	return func(row T) (float64, bool) { return fn(row), true }
}

func (f Field[T]) IsNumeric() bool { return f.Number != nil }

// text mengembalikan nilai string; missing → "".
func (f Field[T]) text(row T) (string, bool) {
	if f.Text == nil {
		return "", false
	}
	return f.Text(row)
}

// number mengembalikan nilai numerik; missing → 0.
func (f Field[T]) number(row T) float64 {
	if f.Number == nil {
		return 0
	}
	v, ok := f.Number(row)
	if !ok {
		return 0
	}
	return v
}

// Fields adalah registry kolom yang boleh dipakai untuk sort.
type Fields[T any] []Field[T]

func (fs Fields[T]) Lookup(key string) (Field[T], bool) {
	for _, f := range fs {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (fs Fields[T]) Keys() []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Key)
	}
	return out
}
