// Package reports renders assembled report data into PDF, XLSX and CSV
// documents. Renderers never touch storage; they format what they are given.
package reports

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/salary_ledger/internal/utils/accounting"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	fontFamily     = "Helvetica"
	displayDate    = "02 January 2006"
	displayStamp   = "02 January 2006, 03:04 PM"
	computerFooter = "This is a computer-generated document. No signature required."
)

// Renderer produces the documents. CompanyName heads every page.
type Renderer struct {
	CompanyName string
}

// NewRenderer creates a renderer for the given company.
func NewRenderer(companyName string) *Renderer {
	return &Renderer{CompanyName: companyName}
}

// document wraps a gofpdf instance with the translator for non-ASCII text.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument() *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	return &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *document) header(company, subtitle string) {
	d.pdf.SetFont(fontFamily, "B", 20)
	d.pdf.SetTextColor(30, 58, 138)
	d.pdf.CellFormat(0, 10, d.tr(company), "", 1, "C", false, 0, "")
	d.pdf.SetFont(fontFamily, "B", 14)
	d.pdf.SetTextColor(60, 60, 60)
	d.pdf.CellFormat(0, 8, d.tr(subtitle), "", 1, "C", false, 0, "")
	d.pdf.Ln(4)
	d.pdf.SetTextColor(20, 20, 20)
}

func (d *document) heading(text string) {
	d.pdf.Ln(3)
	d.pdf.SetFont(fontFamily, "B", 12)
	d.pdf.SetTextColor(30, 58, 138)
	d.pdf.CellFormat(0, 8, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(20, 20, 20)
}

func (d *document) line(text string) {
	d.pdf.SetFont(fontFamily, "", 10)
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "L", false, 0, "")
}

// keyValues draws a two-column bordered table with bold labels.
func (d *document) keyValues(rows [][2]string, widths [2]float64) {
	d.pdf.SetDrawColor(200, 200, 200)
	for _, r := range rows {
		d.pdf.SetFont(fontFamily, "B", 10)
		d.pdf.SetFillColor(243, 244, 246)
		d.pdf.CellFormat(widths[0], 8, d.tr(r[0]), "1", 0, "L", true, 0, "")
		d.pdf.SetFont(fontFamily, "", 10)
		d.pdf.CellFormat(widths[1], 8, d.tr(r[1]), "1", 1, "L", false, 0, "")
	}
}

// table draws a header row and striped body rows. align holds one gofpdf
// alignment string per column.
func (d *document) table(headers []string, widths []float64, align []string, rows [][]string) {
	drawHeader := func() {
		d.pdf.SetFont(fontFamily, "B", 10)
		d.pdf.SetFillColor(30, 58, 138)
		d.pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			d.pdf.CellFormat(widths[i], 8, d.tr(h), "1", 0, "C", true, 0, "")
		}
		d.pdf.Ln(-1)
		d.pdf.SetTextColor(20, 20, 20)
		d.pdf.SetFont(fontFamily, "", 9)
	}

	d.pdf.SetDrawColor(200, 200, 200)
	drawHeader()
	_, pageHeight := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	for n, row := range rows {
		if d.pdf.GetY()+7 > pageHeight-bottom {
			d.pdf.AddPage()
			drawHeader()
		}
		fill := n%2 == 1
		d.pdf.SetFillColor(249, 250, 251)
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], 7, d.tr(cell), "1", 0, align[i], fill, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *document) footer(text string) {
	d.pdf.Ln(10)
	d.pdf.SetFont(fontFamily, "I", 9)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "C", false)
}

func (d *document) write(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func rupees(amount decimal.Decimal) string {
	return "Rs " + accounting.FormatAmount(amount)
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func formatDate(t time.Time) string {
	return t.Format(displayDate)
}
