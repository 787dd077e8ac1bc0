package exports

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// warna brand #006A4E
var brand = [3]int{0, 106, 78}

type PDFWriter struct {
	Layout LayoutConfig
}

func NewPDFWriter() *PDFWriter { return &PDFWriter{Layout: DefaultLayoutConfig()} }

func (*PDFWriter) Format() Format      { return FormatPDF }
func (*PDFWriter) Extension() string   { return "pdf" }
func (*PDFWriter) ContentType() string { return "application/pdf" }

// fpdfMeasurer memakai metrik font core fpdf untuk wrap teks.
type fpdfMeasurer struct {
	pdf  *fpdf.Fpdf
	size float64
	tr   func(string) string
}

func (m fpdfMeasurer) Lines(text string, width float64, bold bool) int {
	style := ""
	if bold {
		style = "B"
	}
	m.pdf.SetFont("Helvetica", style, m.size)
	n := len(m.pdf.SplitText(m.tr(text), width))
	if n < 1 {
		return 1
	}
	return n
}

type pdfCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	cfg LayoutConfig
}

func (p *pdfCanvas) text(x, y float64, s string) { p.pdf.Text(x, y, p.tr(s)) }

func (p *pdfCanvas) textCenter(y float64, s string) {
	s = p.tr(s)
	p.pdf.Text(p.cfg.PageWidth/2-p.pdf.GetStringWidth(s)/2, y, s)
}

// lines menulis teks ter-wrap, rata kiri/kanan, di tengah vertikal sel.
func (p *pdfCanvas) lines(col ColumnBox, top, height float64, s string) {
	maxW := col.Width - 4
	parts := p.pdf.SplitText(p.tr(s), maxW)
	if len(parts) == 0 {
		return
	}
	lh := p.cfg.FontSize * ptToMM
	y := top + height/2 - float64(len(parts))*lh/2 + 2
	for k, line := range parts {
		ly := y + float64(k)*lh
		if col.Right {
			p.pdf.Text(col.X+col.Width-2-p.pdf.GetStringWidth(line), ly, line)
		} else {
			p.pdf.Text(col.X+2, ly, line)
		}
	}
}

func (w *PDFWriter) Write(out io.Writer, doc *Document) error {
	cfg := w.Layout
	if cfg.PageWidth == 0 {
		cfg = DefaultLayoutConfig()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject("Financial Report", true)
	pdf.SetAuthor(doc.Institution, true)
	pdf.SetCreator(doc.Program+" Administration", true)
	pdf.SetCreationDate(doc.generatedAt())
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	cv := &pdfCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), cfg: cfg}
	m := cfg.Margin
	cw := cfg.ContentWidth()
	y := m

	/* ---------- kop ---------- */
	pdf.SetFillColor(brand[0], brand[1], brand[2])
	pdf.Circle(m+5, y+5, 5, "F")
	if doc.Badge != "" {
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8)
		cv.text(m+5-pdf.GetStringWidth(doc.Badge)/2, y+7, doc.Badge)
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(brand[0], brand[1], brand[2])
	cv.text(m+13, y+4, doc.Institution)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	cv.text(m+13, y+9, doc.Title)
	pdf.SetFontSize(10)
	cv.text(m+13, y+14, doc.Subtitle)
	y += 20

	/* ---------- filter ---------- */
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(m, y, cw, 10, "FD")
	pdf.SetFontSize(9)
	cv.text(m+3, y+5, "Filters: "+doc.FilterText)
	y += 15

	/* ---------- ringkasan ---------- */
	y = cv.grid(y, "Financial Summary", doc.Summary, 2)
	y = cv.grid(y, "Fund Allocation", doc.Allocation, 3)

	/* ---------- tabel ---------- */
	cfg.TableTop = y
	lay := ComputeLayout(doc, cfg, fpdfMeasurer{pdf: pdf, size: cfg.FontSize, tr: cv.tr})

	for pi, page := range lay.Pages {
		if pi > 0 {
			pdf.AddPage()
		}
		cv.header(doc, lay, page.HeaderY)

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", cfg.FontSize)
		for _, row := range page.Rows {
			if row.Shaded {
				pdf.SetFillColor(245, 245, 245)
				pdf.Rect(m, row.Y, cw, row.Height, "F")
			}
			for j, col := range lay.Columns {
				cv.lines(col, row.Y, row.Height, doc.Display(row.Index, j))
			}
			pdf.SetDrawColor(220, 220, 220)
			pdf.Line(m, row.Y, m+cw, row.Y)
			pdf.Line(m, row.Y, m, row.Y+row.Height)
			for _, col := range lay.Columns {
				pdf.Line(col.X+col.Width, row.Y, col.X+col.Width, row.Y+row.Height)
			}
			pdf.Line(m, row.Y+row.Height, m+cw, row.Y+row.Height)
		}
	}

	/* ---------- footer (halaman terakhir) ---------- */
	fy := cfg.FooterBaselines()
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	cv.textCenter(fy[0], "Generated on "+doc.generatedAt().Format("January 2, 2006"))
	cv.textCenter(fy[1], fmt.Sprintf("%s - %s Program", doc.Institution, doc.Program))
	cv.textCenter(fy[2], fmt.Sprintf("Records Count: %d", doc.Table.Len()))

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return pdf.Output(out)
}

// grid menggambar judul + sel metrik (cols per baris), return y berikutnya.
func (p *pdfCanvas) grid(y float64, title string, metrics []Metric, cols int) float64 {
	if len(metrics) == 0 {
		return y
	}
	pdf := p.pdf
	m := p.cfg.Margin
	cellW := p.cfg.ContentWidth() / float64(cols)
	const cellH = 15.0

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(brand[0], brand[1], brand[2])
	p.text(m, y, title)
	pdf.SetTextColor(0, 0, 0)
	y += 5

	pdf.SetDrawColor(220, 220, 220)
	pdf.SetFillColor(249, 249, 249)
	for i, mt := range metrics {
		col := i % cols
		if i > 0 && col == 0 {
			y += cellH
		}
		x := m + float64(col)*cellW
		pdf.Rect(x, y, cellW, cellH, "FD")
		pdf.SetFont("Helvetica", "B", 9)
		p.text(x+3, y+5, mt.Label+":")
		pdf.SetFont("Helvetica", "", 9)
		p.text(x+3, y+10, mt.Value)
	}
	return y + cellH + 10
}

func (p *pdfCanvas) header(doc *Document, lay Layout, y float64) {
	pdf := p.pdf
	pdf.SetFillColor(brand[0], brand[1], brand[2])
	pdf.Rect(p.cfg.Margin, y, p.cfg.ContentWidth(), lay.HeaderHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", p.cfg.FontSize)
	for i, col := range lay.Columns {
		p.lines(col, y, lay.HeaderHeight, doc.Table.Columns[i].Header)
	}
}
