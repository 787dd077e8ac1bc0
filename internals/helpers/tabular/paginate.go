package tabular

// DefaultPageSize dipakai tabel laporan.
const DefaultPageSize = 10

type Page[T any] struct {
	Rows       []T `json:"rows"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TotalPages = ceil(n / perPage).
func TotalPages(n, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// ClampPage: page < 1 atau di luar range → balik ke 1.
func ClampPage(page, total, perPage int) int {
	pages := TotalPages(total, perPage)
	if page < 1 || page > pages {
		return 1
	}
	return page
}

func Paginate[T any](rows []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	total := len(rows)
	page = ClampPage(page, total, perPage)

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Rows:       rows[start:end:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: TotalPages(total, perPage),
	}
}
