// Package document lays out service reports and invoices page by page.
// It decides what goes where; turning the drawing calls into actual PDF
// bytes is the canvas implementation's job.
package document

// Canvas is the rendering backend the composer draws on. Coordinates are in
// the backend's page units (millimeters for the PDF backend), origin top-left.
type Canvas interface {
	PageWidth() float64
	PageHeight() float64
	AddPage()

	// SetFont selects the active font style ("" regular, "B" bold) and size.
	SetFont(style string, size float64)
	// TextWidth measures s in the active font. The composer relies on this
	// for word wrapping and never measures text itself.
	TextWidth(s string) float64

	Text(x, y float64, s string)
	TextRight(x, y float64, s string)
	TextCenter(x, y float64, s string)

	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(w float64)
	FillRect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
}

// pageMargin is the uniform page margin used by both document types.
const pageMargin = 20.0
