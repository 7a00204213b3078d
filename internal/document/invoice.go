package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"workshop-backend/internal/models"
	"workshop-backend/internal/status"
)

// Invoice lays out an invoice for a vehicle's services. invoiceNumber should
// come from the company settings counter; when empty a timestamp-based
// fallback is used so the document is still complete for callers without
// settings.
func (d *Composer) Invoice(vehicle *models.Vehicle, services []models.ServiceRecord, company *models.CompanySettings, invoiceNumber string, now time.Time) {
	if invoiceNumber == "" {
		invoiceNumber = "R" + strconv.FormatInt(now.UnixMilli(), 10)
	}

	r := d.newRun("Rechnung erstellt am " + generatedOn(now))

	r.c.SetFont("B", 32)
	r.c.Text(pageMargin, r.y, "RECHNUNG")
	r.y += 25

	// recipient on the left, invoice number and date on the right
	rightColX := r.pageW/2 + 10

	r.c.SetFont("B", 10)
	r.c.Text(pageMargin, r.y, "RECHNUNG AN:")
	r.y += 7

	r.c.SetFont("", 11)
	r.c.Text(pageMargin, r.y, strings.ToUpper(vehicle.OwnerName))
	r.y += 6

	if vehicle.OwnerAddress != "" {
		r.c.SetFont("", 10)
		r.c.Text(pageMargin, r.y, vehicle.OwnerAddress)
		r.y += 5
	}
	if vehicle.OwnerCity != "" {
		r.c.SetFont("", 10)
		r.c.Text(pageMargin, r.y, fmt.Sprintf("%s %s", vehicle.OwnerZipCode, vehicle.OwnerCity))
		r.y += 5
	}

	rightY := r.y - 18
	r.c.SetFont("", 10)
	r.c.TextRight(rightColX, rightY, "RECHNUNG NR. "+invoiceNumber)
	rightY += 5
	r.c.TextRight(rightColX, rightY, formatLongDate(now))

	r.y += 15

	// sender block, right-aligned
	if company != nil && company.Name != "" {
		right := r.pageW - pageMargin
		r.c.SetFont("B", 11)
		r.c.TextRight(right, r.y, strings.ToUpper(company.Name))
		r.y += 7

		r.c.SetFont("", 9)
		if company.Address != "" {
			r.c.TextRight(right, r.y, company.Address)
			r.y += 4
		}
		if company.City != "" {
			r.c.TextRight(right, r.y, fmt.Sprintf("%s %s", company.ZipCode, company.City))
			r.y += 4
		}
		if company.Phone != "" {
			r.c.TextRight(right, r.y, "Tel: "+company.Phone)
			r.y += 4
		}
		if company.Email != "" {
			r.c.TextRight(right, r.y, company.Email)
			r.y += 4
		}
	}

	r.y += 20

	r.c.SetDrawColor(0, 0, 0)
	r.c.SetLineWidth(0.5)
	r.c.Line(pageMargin, r.y, r.pageW-pageMargin, r.y)
	r.y += 10

	d.lineItemHeader(r)

	subtotal := decimal.Zero
	for _, svc := range services {
		if r.y > r.pageH-60 {
			r.breakPage()
			d.lineItemHeader(r)
		}
		subtotal = subtotal.Add(d.lineItems(r, svc))
	}

	// totals
	r.y += 5
	r.c.SetFont("", 10)
	r.c.Text(r.pageW-pageMargin-50, r.y, "Zwischensumme")
	r.c.TextRight(r.pageW-pageMargin-3, r.y, formatAmount(subtotal)+"€")
	r.y += 6

	taxRate := 0.0
	if company != nil {
		taxRate = company.TaxRate
	}
	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Div(decimal.NewFromInt(100))
	r.c.Text(r.pageW-pageMargin-50, r.y, fmt.Sprintf("Steuer (%s%%)", formatHours(taxRate)))
	r.c.TextRight(r.pageW-pageMargin-3, r.y, formatAmount(tax)+"€")
	r.y += 10

	total := subtotal.Add(tax)
	r.c.SetDrawColor(0, 0, 0)
	r.c.SetLineWidth(1)
	r.c.Line(r.pageW-pageMargin-60, r.y-2, r.pageW-pageMargin, r.y-2)

	r.c.SetFont("B", 14)
	r.c.Text(r.pageW-pageMargin-50, r.y+5, "Summe")
	r.c.TextRight(r.pageW-pageMargin-3, r.y+5, formatAmount(total)+"€")
	r.y += 20

	// payment block
	if company != nil && (company.BankName != "" || company.IBAN != "") {
		r.y += 5
		r.c.SetFont("B", 10)
		r.c.Text(pageMargin, r.y, "ZAHLUNGSINFORMATIONEN:")
		r.y += 7

		r.c.SetFont("", 9)
		if company.BankName != "" {
			r.c.Text(pageMargin, r.y, "Empfänger: "+company.BankName)
			r.y += 5
		}
		if company.IBAN != "" {
			r.c.Text(pageMargin, r.y, "Kontonummer: "+company.IBAN)
			r.y += 5
		}
	}

	r.finish()
}

// lineItemHeader draws the table heading; repeated at the top of every page.
func (d *Composer) lineItemHeader(r *run) {
	r.c.SetFillColor(240, 240, 240)
	r.c.FillRect(pageMargin, r.y-5, r.pageW-2*pageMargin, 8)

	r.c.SetFont("B", 10)
	r.c.Text(pageMargin+3, r.y, "Beschreibung")
	r.c.TextRight(r.pageW-pageMargin-90, r.y, "Anzahl")
	r.c.TextRight(r.pageW-pageMargin-50, r.y, "Preis")
	r.c.TextRight(r.pageW-pageMargin-3, r.y, "Summe")
	r.y += 10

	r.c.SetFont("", 9)
}

// lineItems renders one service's rows and returns the sum of its line totals.
func (d *Composer) lineItems(r *run, svc models.ServiceRecord) decimal.Decimal {
	// description wrapped to a single wide column
	descWidth := r.pageW - pageMargin - 110
	lines := wrapText(r.c.TextWidth, formatDate(svc.Date)+" - "+svc.Description, descWidth)
	for i, line := range lines {
		r.c.Text(pageMargin+3, r.y, line)
		if i < len(lines)-1 {
			r.y += 4
		}
	}

	sum := decimal.Zero

	if svc.PartsCost > 0 {
		r.y += 5
		parts := decimal.NewFromFloat(svc.PartsCost)
		r.c.Text(pageMargin+8, r.y, "Material")
		r.c.TextRight(r.pageW-pageMargin-90, r.y, "1")
		r.c.TextRight(r.pageW-pageMargin-50, r.y, formatAmount(parts)+"€")
		r.c.TextRight(r.pageW-pageMargin-3, r.y, formatAmount(parts)+"€")
		sum = sum.Add(parts)
	}

	if svc.LaborHours > 0 {
		r.y += 5
		labor := status.LaborCost(svc)
		r.c.Text(pageMargin+8, r.y, fmt.Sprintf("Arbeitszeit (%sh)", formatHours(svc.LaborHours)))
		r.c.TextRight(r.pageW-pageMargin-90, r.y, formatHours(svc.LaborHours))
		r.c.TextRight(r.pageW-pageMargin-50, r.y, formatFloat(svc.LaborRate)+"€")
		r.c.TextRight(r.pageW-pageMargin-3, r.y, formatAmount(labor)+"€")
		sum = sum.Add(labor)
	}

	r.y += 8

	r.c.SetDrawColor(230, 230, 230)
	r.c.SetLineWidth(0.1)
	r.c.Line(pageMargin, r.y, r.pageW-pageMargin, r.y)
	r.y += 8

	return sum
}
