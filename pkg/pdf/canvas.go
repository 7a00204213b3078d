// Package pdf renders composed documents into PDF bytes using gofpdf.
package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// Canvas implements document.Canvas on an A4 portrait gofpdf document.
type Canvas struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func NewCanvas() *Canvas {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetAutoPageBreak(false, 0)
	return &Canvas{
		pdf: p,
		// core fonts are cp1252; umlauts and the × sign need translating
		translate: p.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *Canvas) PageWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w
}

func (c *Canvas) PageHeight() float64 {
	_, h := c.pdf.GetPageSize()
	return h
}

func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

func (c *Canvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *Canvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.translate(s))
}

func (c *Canvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.translate(s))
}

func (c *Canvas) TextRight(x, y float64, s string) {
	t := c.translate(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(t), y, t)
}

func (c *Canvas) TextCenter(x, y float64, s string) {
	t := c.translate(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(t)/2, y, t)
}

func (c *Canvas) SetTextColor(r, g, b int) {
	c.pdf.SetTextColor(r, g, b)
}

func (c *Canvas) SetFillColor(r, g, b int) {
	c.pdf.SetFillColor(r, g, b)
}

func (c *Canvas) SetDrawColor(r, g, b int) {
	c.pdf.SetDrawColor(r, g, b)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

// Bytes finalizes the document and returns the encoded PDF.
func (c *Canvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
