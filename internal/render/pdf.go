// Package render exports invoice documents to PDF files.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/nvilela/salesledger/internal/domain"
)

// PDFRenderer writes invoice documents as PDF files into a directory.
// It implements service.InvoiceRenderer.
type PDFRenderer struct {
	dir string
}

// NewPDFRenderer creates a renderer that writes into dir. The directory
// is created on first render if it does not exist.
func NewPDFRenderer(dir string) *PDFRenderer {
	return &PDFRenderer{dir: dir}
}

// Render writes the document to "Invoice_<order_id>.pdf": a title, the
// order header fields, one numbered line per item, and the total.
func (r *PDFRenderer) Render(doc *domain.InvoiceDocument) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create invoice dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(14, 22, "Invoice")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(14, 32, fmt.Sprintf("Order ID: %s", doc.OrderID))
	pdf.Text(14, 40, fmt.Sprintf("Customer: %s", doc.Customer))
	pdf.Text(14, 48, fmt.Sprintf("Status: %s", doc.Status))

	pdf.Text(14, 60, "Items:")

	y := 70.0
	for i, line := range doc.Lines {
		pdf.Text(14, y, fmt.Sprintf("%d. %s (x%d) - %s",
			i+1, line.Description, line.Quantity, domain.FormatDollars(line.LineTotal)))
		y += 10
	}

	pdf.Text(14, y+10, fmt.Sprintf("Total Amount: %s", domain.FormatDollars(doc.Total)))

	path := filepath.Join(r.dir, fmt.Sprintf("Invoice_%s.pdf", doc.OrderID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write invoice pdf: %w", err)
	}
	return nil
}
