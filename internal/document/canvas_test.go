package document

import "strings"

// fakeCanvas records drawing calls for layout assertions. Text is measured as
// one fixed width per rune, so tests can reason about wrapping exactly.
type fakeCanvas struct {
	pages     int
	texts     []placedText
	charWidth float64
}

type placedText struct {
	X, Y float64
	S    string
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{charWidth: 2}
}

func (f *fakeCanvas) PageWidth() float64  { return 210 }
func (f *fakeCanvas) PageHeight() float64 { return 297 }
func (f *fakeCanvas) AddPage()            { f.pages++ }

func (f *fakeCanvas) SetFont(style string, size float64) {}

func (f *fakeCanvas) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * f.charWidth
}

func (f *fakeCanvas) Text(x, y float64, s string) {
	f.texts = append(f.texts, placedText{X: x, Y: y, S: s})
}

func (f *fakeCanvas) TextRight(x, y float64, s string) {
	f.texts = append(f.texts, placedText{X: x, Y: y, S: s})
}

func (f *fakeCanvas) TextCenter(x, y float64, s string) {
	f.texts = append(f.texts, placedText{X: x, Y: y, S: s})
}

func (f *fakeCanvas) SetTextColor(r, g, b int)        {}
func (f *fakeCanvas) SetFillColor(r, g, b int)        {}
func (f *fakeCanvas) SetDrawColor(r, g, b int)        {}
func (f *fakeCanvas) SetLineWidth(w float64)          {}
func (f *fakeCanvas) FillRect(x, y, w, h float64)     {}
func (f *fakeCanvas) Line(x1, y1, x2, y2 float64)     {}

func (f *fakeCanvas) hasText(substr string) bool {
	for _, t := range f.texts {
		if strings.Contains(t.S, substr) {
			return true
		}
	}
	return false
}

func (f *fakeCanvas) countText(substr string) int {
	n := 0
	for _, t := range f.texts {
		if strings.Contains(t.S, substr) {
			n++
		}
	}
	return n
}

func (f *fakeCanvas) findText(substr string) []placedText {
	var found []placedText
	for _, t := range f.texts {
		if strings.Contains(t.S, substr) {
			found = append(found, t)
		}
	}
	return found
}
