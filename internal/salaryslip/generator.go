// Package salaryslip fills a .docx template with computed pay figures.
// Templates mark substitution points with double-curly-brace tokens such as
// {{Name}} or {{Payable}}; replacement runs over the whole document body, so
// tokens inside table cells are handled the same way as paragraph text.
package salaryslip

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Houeta/stampcam/internal/models"
	"github.com/nguyenthenguyen/docx"
)

// Generator produces salary slip documents from a single template file.
type Generator struct {
	log          *slog.Logger
	templatePath string
}

// NewGenerator creates a Generator reading its template from templatePath.
// The template is re-read per generation so edits take effect without a
// restart.
func NewGenerator(log *slog.Logger, templatePath string) *Generator {
	return &Generator{log: log, templatePath: templatePath}
}

// Generate substitutes every placeholder token with the values derived from
// details and writes the filled document to w.
func (g *Generator) Generate(details models.SlipDetails, w io.Writer) error {
	tmpl, err := docx.ReadDocxFile(g.templatePath)
	if err != nil {
		return fmt.Errorf("failed to read slip template: %w", err)
	}
	defer tmpl.Close()

	doc := tmpl.Editable()
	for key, value := range details.Placeholders(time.Now()) {
		if err = doc.Replace("{{"+key+"}}", value, -1); err != nil {
			return fmt.Errorf("failed to replace placeholder %q: %w", key, err)
		}
	}

	if err = doc.Write(w); err != nil {
		return fmt.Errorf("failed to write filled document: %w", err)
	}

	g.log.Debug("Salary slip generated", "name", details.Name, "month", details.Month)

	return nil
}
