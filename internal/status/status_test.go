package status

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"workshop-backend/internal/models"
)

func TestInspectionStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		next     *time.Time
		expected Status
	}{
		{
			name:     "no inspection date",
			next:     nil,
			expected: StatusOK,
		},
		{
			name:     "due date in the past",
			next:     timePtr(now.AddDate(0, 0, -10)),
			expected: StatusOverdue,
		},
		{
			name:     "due date exactly now",
			next:     timePtr(now),
			expected: StatusOverdue,
		},
		{
			name:     "due in two months",
			next:     timePtr(now.AddDate(0, 2, 0)),
			expected: StatusOK,
		},
		{
			name:     "due in three weeks",
			next:     timePtr(now.AddDate(0, 0, 21)),
			expected: StatusWarning,
		},
		{
			name:     "due in exactly one month",
			next:     timePtr(now.AddDate(0, 1, 0)),
			expected: StatusWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InspectionStatus(tt.next, now))
		})
	}
}

func TestServiceStatus(t *testing.T) {
	tests := []struct {
		name          string
		currentKm     int
		lastServiceKm int
		expected      Status
	}{
		{"never serviced at interval boundary", 15000, 0, StatusDue},
		{"never serviced below interval", 14999, 0, StatusDue},
		{"interval met exactly", 20000, 5000, StatusDue},
		{"one km short of interval", 19999, 5000, StatusOK},
		{"freshly serviced", 15100, 15000, StatusOK},
		{"odometer rollback yields ok", 9000, 10000, StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ServiceStatus(tt.currentKm, tt.lastServiceKm))
		})
	}
}

func TestCost(t *testing.T) {
	rec := models.ServiceRecord{PartsCost: 50, LaborHours: 2, LaborRate: 80}
	assert.True(t, Cost(rec).Equal(decimal.NewFromInt(210)))

	free := models.ServiceRecord{}
	assert.True(t, Cost(free).Equal(decimal.Zero))
}

func TestLaborCost(t *testing.T) {
	rec := models.ServiceRecord{LaborHours: 1.5, LaborRate: 80}
	assert.True(t, LaborCost(rec).Equal(decimal.NewFromInt(120)))
}

func TestTotalCostOrderIndependent(t *testing.T) {
	records := []models.ServiceRecord{
		{PartsCost: 50, LaborHours: 2, LaborRate: 80},
		{PartsCost: 0, LaborHours: 1, LaborRate: 100},
		{PartsCost: 19.99, LaborHours: 0.5, LaborRate: 80},
		{PartsCost: 0.1, LaborHours: 0, LaborRate: 80},
	}

	expected := TotalCost(records)

	reversed := make([]models.ServiceRecord, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}

	assert.True(t, expected.Equal(TotalCost(reversed)))

	rotated := append(records[2:], records[:2]...)
	assert.True(t, expected.Equal(TotalCost(rotated)))
}

func TestTotalCostNoFloatDrift(t *testing.T) {
	// 0.1 summed a thousand times is exactly 100 in decimal arithmetic
	records := make([]models.ServiceRecord, 1000)
	for i := range records {
		records[i] = models.ServiceRecord{PartsCost: 0.1}
	}

	assert.True(t, TotalCost(records).Equal(decimal.NewFromInt(100)))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
