package tabular

// Query adalah state tampilan: filter sudah dirakit jadi predicate.
type Query[T any] struct {
	Predicates []Predicate[T]
	Sort       SortState
	Page       int
	PerPage    int
}

// Result: slice halaman + seluruh hasil filter (untuk summary/chart/export).
type Result[T any] struct {
	Page     Page[T]
	Filtered []T
}

func (r Result[T]) Count() int { return len(r.Filtered) }

// Pipeline mengikat registry kolom yang bisa di-sort.
type Pipeline[T any] struct {
	Fields Fields[T]
}

func NewPipeline[T any](fields ...Field[T]) *Pipeline[T] {
	return &Pipeline[T]{Fields: fields}
}

// Run: filter → sort → paginate. Sort field yang tidak dikenal diabaikan
// (urutan sumber dipertahankan).
func (p *Pipeline[T]) Run(rows []T, q Query[T]) Result[T] {
	filtered := Filter(rows, q.Predicates...)
	if f, ok := p.Fields.Lookup(q.Sort.Field); ok {
		filtered = Sort(filtered, f, q.Sort.Direction)
	}
	page := Paginate(filtered, q.Page, q.PerPage)
	if page.Rows == nil {
		page.Rows = []T{}
	}
	return Result[T]{Page: page, Filtered: filtered}
}
