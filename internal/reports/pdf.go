package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"paydesk/internal/domain/salary"
	"paydesk/internal/messages"
)

// PDFExporter writes a salary report for the registered work types into a
// directory. Reports are rendered with the English catalog: the built-in
// PDF fonts only cover latin-1.
type PDFExporter struct {
	dir string
}

func NewPDFExporter(dir string) *PDFExporter {
	return &PDFExporter{dir: dir}
}

// Export renders one line per work entry plus an aggregate summary and
// returns the path of the written file.
func (e *PDFExporter) Export(works []*salary.Work) (string, error) {
	if len(works) == 0 {
		return "", salary.ErrNoWorks
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, "salary-report-"+uuid.NewString()+".pdf")

	cat := messages.English()
	summary := BuildSummary(works)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02 15:04:05 UTC")))
	pdf.Ln(10)

	for i, w := range works {
		line := fmt.Sprintf("%d. %s: %.2f (base: %.2f, %s)",
			i+1, w.Name(), w.Salary(), w.BaseAmount(), messages.DescribeStrategy(cat, w.Strategy()))
		pdf.Cell(0, 8, line)
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.Cell(0, 8, fmt.Sprintf("Work types: %d", summary.Count))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", summary.Total))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average: %.2f", summary.Average))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Lowest: %.2f   Highest: %.2f", summary.Min, summary.Max))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
