package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Deterministic(t *testing.T) {
	text := "Day 1: Beach\nDay 2: Old town walk\n\nDay 3: Spice market"

	first, err := Render(text)
	require.NoError(t, err)
	second, err := Render(text)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
	assert.Equal(t, first, second, "identical text must yield byte-identical output")
}

func TestRender_MultiPage(t *testing.T) {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}

	out, err := Render(strings.Join(lines, "\n"))
	require.NoError(t, err)

	// 60 lines at 35 per page is two page objects in the document body.
	assert.Equal(t, 2, bytes.Count(out, []byte("/Type /Page\n")))
}

func TestPaginate(t *testing.T) {
	mkLines := func(n int) []string {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = fmt.Sprintf("l%d", i)
		}
		return lines
	}

	tests := []struct {
		name      string
		lines     []string
		wantPages []int
	}{
		{"empty text still yields a page", []string{""}, []int{1}},
		{"single line", mkLines(1), []int{1}},
		{"exactly one full page", mkLines(35), []int{35}},
		{"one line over", mkLines(36), []int{35, 1}},
		{"sixty lines across two pages", mkLines(60), []int{35, 25}},
		{"three pages", mkLines(71), []int{35, 35, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := paginate(tt.lines)
			require.Len(t, pages, len(tt.wantPages))
			for i, want := range tt.wantPages {
				assert.Len(t, pages[i], want, "page %d", i)
			}
		})
	}
}

func TestLinesPerPageGeometry(t *testing.T) {
	// Letter height 792pt, 50pt top/bottom margins, 20pt pitch.
	assert.Equal(t, 35, linesPerPage)
}
