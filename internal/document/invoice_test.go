package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop-backend/internal/models"
)

var invoiceCompany = &models.CompanySettings{
	Name:     "Werkstatt Schmidt",
	Address:  "Hauptstraße 1",
	ZipCode:  "80331",
	City:     "München",
	TaxRate:  19,
	BankName: "Stadtsparkasse",
	IBAN:     "DE02120300000000202051",
}

func TestInvoiceTotals(t *testing.T) {
	services := []models.ServiceRecord{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Km: 80000, Description: "Bremsen erneuert",
			PartsCost: 50, LaborHours: 2, LaborRate: 80},
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Km: 81000, Description: "Fehlerdiagnose",
			PartsCost: 0, LaborHours: 1, LaborRate: 100},
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).Invoice(testVehicle, services, invoiceCompany, "R42", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	// 50 + 160 + 100
	assert.True(t, canvas.hasText("310.00€"))
	assert.True(t, canvas.hasText("Steuer (19%)"))
	assert.True(t, canvas.hasText("58.90€"))
	assert.True(t, canvas.hasText("368.90€"))
}

func TestInvoiceHeaderBlocks(t *testing.T) {
	canvas := newFakeCanvas()
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	NewComposer(canvas).Invoice(testVehicle, nil, invoiceCompany, "R7", now)

	assert.True(t, canvas.hasText("RECHNUNG AN:"))
	assert.True(t, canvas.hasText("HANS MÜLLER"))
	assert.True(t, canvas.hasText("RECHNUNG NR. R7"))
	assert.True(t, canvas.hasText("15. Januar 2024"))
	assert.True(t, canvas.hasText("WERKSTATT SCHMIDT"))
}

func TestInvoiceNumberFallback(t *testing.T) {
	canvas := newFakeCanvas()
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	NewComposer(canvas).Invoice(testVehicle, nil, nil, "", now)

	nr := canvas.findText("RECHNUNG NR. ")
	require.Len(t, nr, 1)
	assert.Contains(t, nr[0].S, "RECHNUNG NR. R1705314600000")
}

func TestInvoiceLineItems(t *testing.T) {
	services := []models.ServiceRecord{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Km: 80000, Description: "Zahnriemen gewechselt",
			PartsCost: 120, LaborHours: 3.5, LaborRate: 80},
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).Invoice(testVehicle, services, invoiceCompany, "R1", time.Now())

	assert.True(t, canvas.hasText("01.02.2024 - Zahnriemen gewechselt"))
	assert.True(t, canvas.hasText("Material"))
	assert.True(t, canvas.hasText("Arbeitszeit (3.5h)"))
	assert.True(t, canvas.hasText("120.00€"))
	assert.True(t, canvas.hasText("280.00€"))
}

func TestInvoiceSkipsZeroLineItems(t *testing.T) {
	services := []models.ServiceRecord{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Km: 80000, Description: "Sichtprüfung",
			PartsCost: 0, LaborHours: 0, LaborRate: 80},
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).Invoice(testVehicle, services, invoiceCompany, "R1", time.Now())

	assert.False(t, canvas.hasText("Material"))
	assert.False(t, canvas.hasText("Arbeitszeit ("))
	// a zero-cost record still contributes nothing to the subtotal
	assert.True(t, canvas.hasText("0.00€"))
}

func TestInvoicePaymentBlock(t *testing.T) {
	canvas := newFakeCanvas()
	NewComposer(canvas).Invoice(testVehicle, nil, invoiceCompany, "R1", time.Now())

	assert.True(t, canvas.hasText("ZAHLUNGSINFORMATIONEN:"))
	assert.True(t, canvas.hasText("Empfänger: Stadtsparkasse"))
	assert.True(t, canvas.hasText("Kontonummer: DE02120300000000202051"))
}

func TestInvoiceRepeatsTableHeaderPerPage(t *testing.T) {
	var services []models.ServiceRecord
	for i := 0; i < 40; i++ {
		services = append(services, models.ServiceRecord{
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Km:          50000 + i*50,
			Description: "Wartung nach Herstellervorgabe",
			PartsCost:   25,
			LaborHours:  0.5,
			LaborRate:   80,
		})
	}

	canvas := newFakeCanvas()
	NewComposer(canvas).Invoice(testVehicle, services, invoiceCompany, "R9", time.Now())

	assert.Greater(t, canvas.pages, 1)
	assert.Equal(t, canvas.pages, canvas.countText("Beschreibung"))
	assert.Equal(t, canvas.pages, canvas.countText("Rechnung erstellt am"))
}
