package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop-backend/internal/models"
)

var testVehicle = &models.Vehicle{
	LicensePlate: "M-AB 1234",
	OwnerName:    "Hans Müller",
	Make:         "Volkswagen",
	Model:        "Golf",
	Year:         2018,
	CurrentKm:    85000,
}

func TestServiceReportEmptyHistory(t *testing.T) {
	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, nil, nil, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, canvas.hasText("Keine Service-Einträge vorhanden"))
	assert.False(t, canvas.hasText("Service vom"))
	assert.False(t, canvas.hasText("Gesamtkosten aller Services"))
	assert.Equal(t, 1, canvas.pages)
}

func TestServiceReportVehicleSummary(t *testing.T) {
	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, nil, nil, time.Now())

	assert.True(t, canvas.hasText("Kennzeichen: M-AB 1234"))
	assert.True(t, canvas.hasText("Fahrzeug: Volkswagen Golf (2018)"))
	assert.True(t, canvas.hasText("Besitzer: Hans Müller"))
	assert.True(t, canvas.hasText("Aktueller KM-Stand: 85.000 km"))
}

func TestServiceReportLetterhead(t *testing.T) {
	company := &models.CompanySettings{
		Name:    "Werkstatt Schmidt",
		Address: "Hauptstraße 1",
		ZipCode: "80331",
		City:    "München",
		Phone:   "089 123456",
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, nil, company, time.Now())

	assert.True(t, canvas.hasText("Werkstatt Schmidt"))
	assert.True(t, canvas.hasText("80331 München"))
	assert.True(t, canvas.hasText("Tel: 089 123456"))
}

func TestServiceReportOrdersMostRecentFirst(t *testing.T) {
	services := []models.ServiceRecord{
		{Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Km: 70000, Description: "Inspektion", LaborRate: 80},
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Km: 85000, Description: "Ölwechsel", LaborRate: 80},
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, services, nil, time.Now())

	assert.True(t, canvas.hasText("1. Service vom 01.06.2024"))
	assert.True(t, canvas.hasText("2. Service vom 01.06.2023"))
}

func TestServiceReportTuvBadgeAndTotals(t *testing.T) {
	services := []models.ServiceRecord{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Km: 80000, Description: "HU/AU bestanden",
			PartsCost: 50, LaborHours: 2, LaborRate: 80, IsTuv: true},
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, services, nil, time.Now())

	assert.True(t, canvas.hasText("TÜV"))
	assert.True(t, canvas.hasText("Materialkosten: 50.00 EUR"))
	assert.True(t, canvas.hasText("Arbeitszeit: 2h × 80.00 EUR/h = 160.00 EUR"))
	assert.True(t, canvas.hasText("Gesamtkosten: 210.00 EUR"))
	assert.True(t, canvas.hasText("Gesamtkosten aller Services: 210.00 EUR"))
}

func TestServiceReportTwoColumnFlow(t *testing.T) {
	// column width is 80 units; at 2 units per rune a 30-rune word fills a
	// line on its own, so four words produce four alternating lines
	word := strings.Repeat("a", 30)
	desc := strings.Join([]string{word, word, word, word}, " ")

	services := []models.ServiceRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Km: 1000, Description: desc, LaborRate: 80},
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, services, nil, time.Now())

	lines := canvas.findText(word)
	require.Len(t, lines, 4)

	leftX := 23.0
	rightX := 108.0

	assert.Equal(t, leftX, lines[0].X)
	assert.Equal(t, rightX, lines[1].X)
	assert.Equal(t, leftX, lines[2].X)
	assert.Equal(t, rightX, lines[3].X)

	// columns pair up at the same vertical position; the cursor only
	// advances after the right column
	assert.Equal(t, lines[0].Y, lines[1].Y)
	assert.Equal(t, lines[2].Y, lines[3].Y)
	assert.Equal(t, lines[0].Y+5, lines[2].Y)
}

func TestServiceReportPaginates(t *testing.T) {
	var services []models.ServiceRecord
	for i := 0; i < 20; i++ {
		services = append(services, models.ServiceRecord{
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Km:          10000 + i*100,
			Description: "Routineinspektion mit Ölwechsel",
			PartsCost:   40,
			LaborHours:  1,
			LaborRate:   80,
		})
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).ServiceReport(testVehicle, services, nil, time.Now())

	assert.Greater(t, canvas.pages, 1)
	// every record made it onto some page
	assert.Equal(t, 20, canvas.countText("Service vom"))
	// footer is stamped per page
	assert.Equal(t, canvas.pages, canvas.countText("Erstellt am"))
}
