package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddServiceUpdatesDerivedFields(t *testing.T) {
	v := &Vehicle{CurrentKm: 40000}
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	rec := v.AddService(ServiceRecord{
		Date:        date,
		Km:          45000,
		Description: "Ölwechsel",
		PartsCost:   60,
		LaborHours:  1,
		LaborRate:   80,
	})

	require.Len(t, v.ServiceHistory, 1)
	assert.False(t, rec.ID.IsZero())
	assert.Equal(t, 45000, v.CurrentKm)
	assert.Equal(t, 45000, v.LastServiceKm)
	require.NotNil(t, v.LastServiceDate)
	assert.Equal(t, date, *v.LastServiceDate)
	assert.Nil(t, v.NextInspectionDate)
}

func TestAddServiceTuvSetsNextInspection(t *testing.T) {
	v := &Vehicle{}
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	v.AddService(ServiceRecord{
		Date:        date,
		Km:          50000,
		Description: "HU/AU",
		IsTuv:       true,
	})

	require.NotNil(t, v.LastInspectionDate)
	assert.Equal(t, date, *v.LastInspectionDate)
	require.NotNil(t, v.NextInspectionDate)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *v.NextInspectionDate)
}

func TestAddServiceOverwritesLowerOdometer(t *testing.T) {
	// regressions are trusted, not rejected
	v := &Vehicle{CurrentKm: 80000, LastServiceKm: 75000}

	v.AddService(ServiceRecord{
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Km:          70000,
		Description: "Bremsen erneuert",
	})

	assert.Equal(t, 70000, v.CurrentKm)
	assert.Equal(t, 70000, v.LastServiceKm)
}

func TestAddServiceKeepsInsertionOrder(t *testing.T) {
	v := &Vehicle{}
	later := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	v.AddService(ServiceRecord{Date: later, Km: 20000, Description: "Inspektion"})
	v.AddService(ServiceRecord{Date: earlier, Km: 10000, Description: "Nachgetragener Service"})

	require.Len(t, v.ServiceHistory, 2)
	assert.Equal(t, later, v.ServiceHistory[0].Date)
	assert.Equal(t, earlier, v.ServiceHistory[1].Date)
}

func TestAddServiceDefaultsDate(t *testing.T) {
	v := &Vehicle{}
	before := time.Now()

	rec := v.AddService(ServiceRecord{Km: 1000, Description: "Reifenwechsel"})

	assert.False(t, rec.Date.Before(before))
	require.NotNil(t, v.LastServiceDate)
}
