package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"

	"projection-engine/internal/engine"
)

// Markdown renders a calculation as a yearly ledger and a checkpoint summary.
func Markdown(c *engine.Calculation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection: %s", c.Prediction.Name))
	doc.PlainText(fmt.Sprintf("Target %s in %d, initial growth %s over %d years.",
		Money(c.Prediction.TargetPrice), c.Prediction.Year, Rate(c.InitialRate), c.PeriodCount))

	doc.H2("Summary")
	doc.Table(SummaryTable(c))

	doc.H2("Yearly ledger")
	doc.Table(LedgerTable(c))

	return doc.String()
}

func LedgerTable(c *engine.Calculation) md.TableSet {
	rows := make([][]string, 0, len(c.Records))
	for _, r := range c.Records {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			Money(r.Price),
			Growth(r.GrowthRatePct),
			Quantity(r.HoldingAfter),
			Money(r.HoldingValue),
			Quantity(r.QuantityLiquidated),
			Money(r.LiquidationValue),
		})
	}
	return md.TableSet{
		Header: []string{"Year", "Price", "Growth", "Held", "Value", "Sold", "Sold Value"},
		Rows:   rows,
	}
}

func SummaryTable(c *engine.Calculation) md.TableSet {
	years := c.Summary.Years()
	rows := make([][]string, 0, len(years))
	for _, y := range years {
		s := c.Summary[y]
		rows = append(rows, []string{
			strconv.Itoa(y),
			Quantity(s.HoldingAfter),
			Money(s.HoldingValue),
			Money(s.Price),
			Money(s.CumulativeLiquidationValue),
			Money(s.AverageAnnualLiquidationValue),
			Money(s.PeriodLiquidationValue),
		})
	}
	return md.TableSet{
		Header: []string{"Year", "Held", "Value", "Price", "Total Used", "Average Used", "Period Used"},
		Rows:   rows,
	}
}

// Terminal styles markdown for a terminal of the given width.
func Terminal(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
