package document

import "time"

// Composer builds service reports and invoices on a Canvas. It assumes its
// inputs were validated upstream and performs no validation of its own.
type Composer struct {
	canvas Canvas
}

func NewComposer(canvas Canvas) *Composer {
	return &Composer{canvas: canvas}
}

// run tracks the vertical cursor of one document build.
type run struct {
	c      Canvas
	y      float64
	pageW  float64
	pageH  float64
	footer string
}

func (d *Composer) newRun(footerText string) *run {
	d.canvas.AddPage()
	return &run{
		c:      d.canvas,
		y:      pageMargin,
		pageW:  d.canvas.PageWidth(),
		pageH:  d.canvas.PageHeight(),
		footer: footerText,
	}
}

// breakPage closes the current page with its footer and starts a fresh one.
func (r *run) breakPage() {
	r.drawFooter()
	r.c.AddPage()
	r.y = pageMargin
}

// finish stamps the footer on the last page.
func (r *run) finish() {
	r.drawFooter()
}

func (r *run) drawFooter() {
	r.c.SetFont("", 8)
	r.c.SetTextColor(128, 128, 128)
	r.c.TextCenter(r.pageW/2, r.pageH-10, r.footer)
	r.c.SetTextColor(0, 0, 0)
}

func generatedOn(now time.Time) string {
	return formatDate(now)
}
