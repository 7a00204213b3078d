package document

import (
	"fmt"
	"sort"
	"time"

	"workshop-backend/internal/models"
	"workshop-backend/internal/status"
)

// ServiceReport lays out the service history document for a vehicle. The
// company block is optional letterhead. Services are rendered most recent
// first regardless of storage order.
func (d *Composer) ServiceReport(vehicle *models.Vehicle, services []models.ServiceRecord, company *models.CompanySettings, now time.Time) {
	r := d.newRun("Erstellt am " + generatedOn(now))

	// letterhead, right-aligned
	if company != nil {
		r.c.SetFont("", 9)
		right := r.pageW - pageMargin
		r.c.TextRight(right, r.y, company.Name)
		r.y += 4
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
		r.y += 10
	}

	r.c.SetFont("B", 20)
	r.c.TextCenter(r.pageW/2, r.y, "Service-Nachweis")
	r.y += 15

	// vehicle summary box
	r.c.SetFillColor(245, 245, 245)
	r.c.FillRect(pageMargin, r.y, r.pageW-2*pageMargin, 35)
	r.y += 8

	r.c.SetFont("B", 12)
	r.c.Text(pageMargin+5, r.y, "Fahrzeugdaten")
	r.y += 7

	r.c.SetFont("", 10)
	r.c.Text(pageMargin+5, r.y, "Kennzeichen: "+vehicle.LicensePlate)
	r.y += 5
	r.c.Text(pageMargin+5, r.y, fmt.Sprintf("Fahrzeug: %s %s (%d)", vehicle.Make, vehicle.Model, vehicle.Year))
	r.y += 5
	r.c.Text(pageMargin+5, r.y, "Besitzer: "+vehicle.OwnerName)
	r.y += 5
	r.c.Text(pageMargin+5, r.y, fmt.Sprintf("Aktueller KM-Stand: %s km", formatKm(vehicle.CurrentKm)))
	r.y += 15

	r.c.SetFont("B", 14)
	r.c.Text(pageMargin, r.y, "Service-Historie")
	r.y += 10

	if len(services) == 0 {
		r.c.SetFont("", 10)
		r.c.Text(pageMargin, r.y, "Keine Service-Einträge vorhanden")
		r.finish()
		return
	}

	sorted := make([]models.ServiceRecord, len(services))
	copy(sorted, services)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	for i, svc := range sorted {
		if r.y > r.pageH-50 {
			r.breakPage()
		}
		d.serviceEntry(r, i+1, svc)
	}

	// running total block
	total := status.TotalCost(sorted)
	if r.y > r.pageH-30 {
		r.breakPage()
	}
	r.y += 5
	r.c.SetFillColor(59, 130, 246)
	r.c.FillRect(pageMargin, r.y-5, r.pageW-2*pageMargin, 10)
	r.c.SetTextColor(255, 255, 255)
	r.c.SetFont("B", 12)
	r.c.Text(pageMargin+5, r.y, fmt.Sprintf("Gesamtkosten aller Services: %s EUR", formatAmount(total)))
	r.c.SetTextColor(0, 0, 0)

	r.finish()
}

func (d *Composer) serviceEntry(r *run, seq int, svc models.ServiceRecord) {
	// entry header
	r.c.SetFillColor(250, 250, 250)
	r.c.FillRect(pageMargin, r.y-5, r.pageW-2*pageMargin, 8)

	r.c.SetFont("B", 11)
	r.c.Text(pageMargin+3, r.y, fmt.Sprintf("%d. Service vom %s", seq, formatDate(svc.Date)))

	if svc.IsTuv {
		r.c.SetFillColor(34, 197, 94)
		r.c.FillRect(r.pageW-pageMargin-25, r.y-4, 23, 6)
		r.c.SetTextColor(255, 255, 255)
		r.c.SetFont("B", 9)
		r.c.TextCenter(r.pageW-pageMargin-13.5, r.y, "TÜV")
		r.c.SetTextColor(0, 0, 0)
	}

	r.y += 8

	r.c.SetFont("", 10)
	r.c.Text(pageMargin+3, r.y, fmt.Sprintf("KM-Stand: %s km", formatKm(svc.Km)))
	r.y += 7

	// description flows across two columns; the cursor advances after the
	// right column, with a catch-up advance when the line count is odd
	colWidth := (r.pageW - 2*pageMargin - 10) / 2
	lines := wrapText(r.c.TextWidth, svc.Description, colWidth)

	leftX := pageMargin + 3
	rightX := pageMargin + 3 + colWidth + 5

	for i, line := range lines {
		if r.y > r.pageH-20 {
			r.breakPage()
		}
		if i%2 == 0 {
			r.c.Text(leftX, r.y, line)
		} else {
			r.c.Text(rightX, r.y, line)
			r.y += 5
		}
	}
	if len(lines)%2 != 0 {
		r.y += 5
	}
	r.y += 5

	labor := status.LaborCost(svc)
	total := status.Cost(svc)

	r.c.SetFont("", 9)
	r.c.Text(pageMargin+3, r.y, fmt.Sprintf("Materialkosten: %s EUR", formatFloat(svc.PartsCost)))
	r.y += 4
	r.c.Text(pageMargin+3, r.y, fmt.Sprintf("Arbeitszeit: %sh × %s EUR/h = %s EUR",
		formatHours(svc.LaborHours), formatFloat(svc.LaborRate), formatAmount(labor)))
	r.y += 5

	r.c.SetFont("B", 10)
	r.c.Text(pageMargin+3, r.y, fmt.Sprintf("Gesamtkosten: %s EUR", formatAmount(total)))
	r.y += 10

	r.c.SetDrawColor(220, 220, 220)
	r.c.Line(pageMargin, r.y, r.pageW-pageMargin, r.y)
	r.y += 8
}
