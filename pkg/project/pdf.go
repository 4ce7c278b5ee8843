package project

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF 将渲染后的页面写为 A4 PDF
// 错误页只输出错误信息
func ExportPDF(w io.Writer, p *Page) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(p.Title, true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	if p.Failed() {
		pdf.SetTextColor(200, 0, 0)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, p.Error, "", "L", false)
		return output(pdf, w)
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, p.Title, "", "L", false)
	pdf.Ln(4)

	for _, s := range p.Sections {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, s.Heading, "", 1, "L", false, 0, "")
		pdf.SetDrawColor(180, 180, 180)
		pdf.SetLineWidth(0.2)
		x, y := pdf.GetXY()
		pdf.Line(x, y, x+170, y)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range s.Lines {
			pdf.MultiCell(0, 5.5, line, "", "L", false)
		}
		pdf.Ln(4)
	}
	return output(pdf, w)
}

func output(pdf *gofpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
