package exports

// Satuan mm. Konversi pt → mm untuk tinggi baris teks.
const ptToMM = 0.3527

// Proporsi lebar kolom tabel PDF per key; key lain pakai defaultProportion.
var columnProportions = map[string]float64{
	"batch_id":                0.15,
	"program_code":            0.12,
	"academic_period":         0.18,
	"total_income":            0.09,
	"actual_collected":        0.09,
	"program_running_expense": 0.12,
	"department_development":  0.10,
	"research_allocation":     0.09,
	"university_income":       0.09,
}

const defaultProportion = 0.11

// Measurer menghitung jumlah baris hasil wrap teks pada lebar tertentu.
type Measurer interface {
	Lines(text string, width float64, bold bool) int
}

type LayoutConfig struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	FontSize     float64
	TableTop     float64 // y awal tabel di halaman pertama
	BottomMargin float64
	FooterHeight float64 // pita footer di atas BottomMargin, tidak boleh dipakai baris tabel
}

// A4 landscape, margin 10mm, font tabel 8pt, footer 3 baris.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		PageWidth:    297,
		PageHeight:   210,
		Margin:       10,
		FontSize:     8,
		BottomMargin: 10,
		FooterHeight: 12,
	}
}

func (c LayoutConfig) ContentWidth() float64 { return c.PageWidth - 2*c.Margin }

// TableBottom: batas bawah baris tabel (= atas pita footer).
func (c LayoutConfig) TableBottom() float64 {
	return c.PageHeight - c.BottomMargin - c.FooterHeight
}

const footerLineHeight = 3.0

// FooterBaselines: baseline 3 baris footer, semuanya di dalam pita footer.
func (c LayoutConfig) FooterBaselines() [3]float64 {
	top := c.TableBottom() + 1
	return [3]float64{top + footerLineHeight, top + 2*footerLineHeight, top + 3*footerLineHeight}
}

type ColumnBox struct {
	Index int
	X     float64
	Width float64
	Right bool // kolom numerik rata kanan
}

type RowBox struct {
	Index  int
	Y      float64
	Height float64
	Shaded bool
}

type PageBox struct {
	HeaderY float64
	Rows    []RowBox
}

type Layout struct {
	Columns      []ColumnBox
	HeaderHeight float64
	Pages        []PageBox
}

func (c LayoutConfig) textHeight(lines int) float64 {
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * c.FontSize * ptToMM
}

// ComputeLayout: lebar kolom proporsional, tinggi header/baris dari teks
// yang di-wrap, page break saat y + tinggi baris > TableBottom().
// Header diulang di awal setiap halaman.
func ComputeLayout(doc *Document, cfg LayoutConfig, m Measurer) Layout {
	cw := cfg.ContentWidth()
	lay := Layout{Columns: make([]ColumnBox, len(doc.Table.Columns))}

	x := cfg.Margin
	for i, col := range doc.Table.Columns {
		p, ok := columnProportions[col.Key]
		if !ok {
			p = defaultProportion
		}
		w := cw * p
		lay.Columns[i] = ColumnBox{Index: i, X: x, Width: w, Right: col.Kind.Numeric()}
		x += w
	}

	lay.HeaderHeight = 10
	for i, col := range doc.Table.Columns {
		h := cfg.textHeight(m.Lines(col.Header, lay.Columns[i].Width-4, true)) + 6
		if h > lay.HeaderHeight {
			lay.HeaderHeight = h
		}
	}

	maxY := cfg.TableBottom()
	top := cfg.TableTop
	if top <= 0 {
		top = cfg.Margin
	}
	page := PageBox{HeaderY: top}
	y := top + lay.HeaderHeight

	for i := range doc.Table.Rows {
		rh := 8.0
		for j := range doc.Table.Columns {
			h := cfg.textHeight(m.Lines(doc.Display(i, j), lay.Columns[j].Width-4, false)) + 4
			if h > rh {
				rh = h
			}
		}
		// halaman baru yang masih kosong tidak di-break lagi (baris lebih tinggi dari halaman)
		fresh := len(page.Rows) == 0 && page.HeaderY == cfg.Margin
		if y+rh > maxY && !fresh {
			lay.Pages = append(lay.Pages, page)
			page = PageBox{HeaderY: cfg.Margin}
			y = cfg.Margin + lay.HeaderHeight
		}
		page.Rows = append(page.Rows, RowBox{Index: i, Y: y, Height: rh, Shaded: i%2 == 0})
		y += rh
	}
	lay.Pages = append(lay.Pages, page)
	return lay
}
