package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// measureByRunes gives every rune a width of one unit.
func measureByRunes(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapTextGreedy(t *testing.T) {
	lines := wrapText(measureByRunes, "aa bb cc dd", 5)

	assert.Equal(t, []string{"aa bb", "cc dd"}, lines)
}

func TestWrapTextNeverExceedsWidth(t *testing.T) {
	text := "unwuchtige vorderreifen getauscht und achsvermessung durchgeführt"
	lines := wrapText(measureByRunes, text, 20)

	for _, line := range lines {
		if strings.Contains(line, " ") {
			assert.LessOrEqual(t, measureByRunes(line), 20.0, "multi-word line %q too wide", line)
		}
	}

	// no content lost
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "))
}

func TestWrapTextOverlongWordStandsAlone(t *testing.T) {
	lines := wrapText(measureByRunes, "kurz einvielzulangeswortohnetrennung ende", 10)

	assert.Equal(t, []string{"kurz", "einvielzulangeswortohnetrennung", "ende"}, lines)
}

func TestWrapTextEmpty(t *testing.T) {
	assert.Empty(t, wrapText(measureByRunes, "", 10))
	assert.Empty(t, wrapText(measureByRunes, "   ", 10))
}
