package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// PDF renders the markdown report document into an A4 PDF. The renderer
// walks the goldmark AST directly; report documents only use headings,
// paragraphs, emphasis, lists and tables.
func (s *Service) PDF(markdown string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 9)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))

	renderer := &pdfRenderer{pdf: pdf, source: source}
	if err := ast.Walk(doc, renderer.walk); err != nil {
		return nil, models.NewAPIError(models.ErrCodeExport, "failed to render PDF", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, models.NewAPIError(models.ErrCodeExport, "failed to write PDF", err)
	}

	s.logger.Debug().Int("pdf_size", buf.Len()).Msg("PDF generated")
	return buf.Bytes(), nil
}

type pdfRenderer struct {
	pdf    *fpdf.Fpdf
	source []byte
	bold   bool
	inList bool
}

func (r *pdfRenderer) bodyFont() {
	style := ""
	if r.bold {
		style = "B"
	}
	r.pdf.SetFont("Arial", style, 9)
}

func (r *pdfRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		if entering {
			r.pdf.Ln(5)
			size := 14.0 - float64(node.Level)
			if size < 10 {
				size = 10
			}
			r.pdf.SetFont("Arial", "B", size)
		} else {
			r.pdf.Ln(6)
			r.bodyFont()
		}
	case *ast.Paragraph:
		if !entering && !r.inList {
			r.pdf.Ln(6)
		}
	case *ast.Text:
		if entering {
			r.pdf.Write(5, string(node.Text(r.source)))
		}
	case *ast.Emphasis:
		r.bold = node.Level == 2 && entering
		r.bodyFont()
	case *ast.List:
		if entering {
			r.inList = true
		} else {
			r.inList = false
			r.pdf.Ln(4)
		}
	case *ast.ListItem:
		if entering {
			r.pdf.Ln(5)
			r.pdf.SetX(14)
			r.pdf.Write(5, "- ")
		}
	case *ast.ThematicBreak:
		if entering {
			r.pdf.Ln(3)
			r.pdf.Line(10, r.pdf.GetY(), 200, r.pdf.GetY())
			r.pdf.Ln(3)
		}
	case *extast.Table:
		if entering {
			r.renderTable(node)
			return ast.WalkSkipChildren, nil
		}
	}
	return ast.WalkContinue, nil
}

func (r *pdfRenderer) renderTable(table *extast.Table) {
	rows := r.tableRows(table)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	widths := r.columnWidths(rows)

	r.pdf.Ln(2)
	for i, row := range rows {
		if i == 0 {
			r.pdf.SetFont("Arial", "B", 8)
			r.pdf.SetFillColor(230, 230, 230)
		} else {
			r.pdf.SetFont("Arial", "", 8)
			r.pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			r.pdf.CellFormat(widths[j], 6, cell, "1", 0, "L", i == 0, 0, "")
		}
		r.pdf.Ln(6)
	}
	r.pdf.Ln(3)
	r.bodyFont()
}

func (r *pdfRenderer) tableRows(table *extast.Table) [][]string {
	var rows [][]string

	var collect func(node ast.Node)
	collect = func(node ast.Node) {
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *extast.TableHeader:
				collect(c)
			case *extast.TableRow:
				var row []string
				for cell := c.FirstChild(); cell != nil; cell = cell.NextSibling() {
					row = append(row, string(cell.Text(r.source)))
				}
				rows = append(rows, row)
			}
		}
	}
	collect(table)

	return rows
}

// columnWidths sizes columns to their widest cell, scaled to the page width
func (r *pdfRenderer) columnWidths(rows [][]string) []float64 {
	const pageWidth = 190.0

	r.pdf.SetFont("Arial", "B", 8)
	widths := make([]float64, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := r.pdf.GetStringWidth(cell) + 4; w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := 0.0
	for _, w := range widths {
		total += w
	}
	if total > pageWidth {
		scale := pageWidth / total
		for i := range widths {
			widths[i] *= scale
		}
	}

	return widths
}
