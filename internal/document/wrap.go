package document

import "strings"

// wrapText breaks text into lines no wider than maxWidth, measuring with the
// given function. Words are accumulated greedily; a line is emitted as soon as
// the next word would push it over the limit. A single word wider than
// maxWidth is placed on its own overflowing line rather than hyphenated.
func wrapText(measure func(string) float64, text string, maxWidth float64) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}

		if measure(test) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
