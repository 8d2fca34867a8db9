// README: Renders itinerary text into a paginated letter-size PDF byte buffer.
package pdf

import (
	"bytes"
	"math"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	pageHeightPt = 792.0 // US Letter
	marginPt     = 50.0
	linePitchPt  = 20.0
	fontSize     = 12.0
)

// linesPerPage is derived from the page geometry: baselines start marginPt from
// the top and step linePitchPt until the next one would cross the bottom margin.
var linesPerPage = int(math.Floor((pageHeightPt-2*marginPt)/linePitchPt)) + 1

// Render produces a PDF document from the given text, one input line per drawn
// line, left-aligned at the fixed margin. Long lines are not wrapped and
// overflow the page edge. Identical input yields byte-identical output.
func Render(text string) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	// Pin the embedded creation timestamp so output depends only on the text.
	doc.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range paginate(strings.Split(text, "\n")) {
		doc.AddPage()
		doc.SetFont("Helvetica", "", fontSize)
		y := marginPt
		for _, line := range page {
			doc.Text(marginPt, y, tr(line))
			y += linePitchPt
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// paginate splits lines into pages of at most linesPerPage. Empty input still
// yields a single (blank) page.
func paginate(lines []string) [][]string {
	pages := [][]string{}
	for len(lines) > linesPerPage {
		pages = append(pages, lines[:linesPerPage])
		lines = lines[linesPerPage:]
	}
	return append(pages, lines)
}
