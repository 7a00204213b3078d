// Package status derives inspection and service due state from vehicle data
// and computes service costs. All functions are pure.
package status

import (
	"time"

	"github.com/shopspring/decimal"

	"workshop-backend/internal/models"
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusDue     Status = "due"
	StatusOverdue Status = "overdue"
)

// InspectionStatus reports whether the periodic inspection is ok, in its
// warning window or overdue. The warning window opens one calendar month
// before the due date, computed with time.Time.AddDate(0, -1, 0); at month
// ends AddDate normalizes (e.g. March 31 minus one month rolls into early
// March), and that normalized date is the rule used throughout. Both
// boundaries are inclusive: now == due date is already overdue.
func InspectionStatus(nextInspection *time.Time, now time.Time) Status {
	if nextInspection == nil {
		return StatusOK
	}

	if !now.Before(*nextInspection) {
		return StatusOverdue
	}

	warningFrom := nextInspection.AddDate(0, -1, 0)
	if !now.Before(warningFrom) {
		return StatusWarning
	}

	return StatusOK
}

// ServiceStatus reports whether the next service is due. A vehicle with no
// recorded service km is always due. The 15000 km interval boundary is
// inclusive. An odometer reading below the last service km yields a negative
// delta and therefore ok; regressions are accepted as-is, not rejected.
func ServiceStatus(currentKm, lastServiceKm int) Status {
	if lastServiceKm == 0 {
		return StatusDue
	}

	if currentKm-lastServiceKm >= models.ServiceIntervalKm {
		return StatusDue
	}

	return StatusOK
}

// LaborCost is hours times hourly rate for a single service.
func LaborCost(rec models.ServiceRecord) decimal.Decimal {
	return decimal.NewFromFloat(rec.LaborHours).Mul(decimal.NewFromFloat(rec.LaborRate))
}

// Cost is the total of a single service: parts plus hours times rate.
// Decimal arithmetic keeps long-running sums free of float drift; callers
// round to two places only when formatting.
func Cost(rec models.ServiceRecord) decimal.Decimal {
	return decimal.NewFromFloat(rec.PartsCost).Add(LaborCost(rec))
}

// TotalCost sums Cost over all records. Order-independent.
func TotalCost(recs []models.ServiceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range recs {
		total = total.Add(Cost(rec))
	}
	return total
}
