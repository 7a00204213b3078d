package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceIntervalKm is the distance between scheduled services.
const ServiceIntervalKm = 15000

// InspectionValidityYears is how long a passed inspection remains valid.
const InspectionValidityYears = 2

type Vehicle struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LicensePlate       string             `bson:"license_plate" json:"licensePlate" validate:"required"`
	OwnerName          string             `bson:"owner_name" json:"ownerName" validate:"required"`
	OwnerPhone         string             `bson:"owner_phone,omitempty" json:"ownerPhone,omitempty"`
	OwnerEmail         string             `bson:"owner_email,omitempty" json:"ownerEmail,omitempty"`
	OwnerAddress       string             `bson:"owner_address,omitempty" json:"ownerAddress,omitempty"`
	OwnerZipCode       string             `bson:"owner_zip_code,omitempty" json:"ownerZipCode,omitempty"`
	OwnerCity          string             `bson:"owner_city,omitempty" json:"ownerCity,omitempty"`
	Make               string             `bson:"make" json:"make" validate:"required"`
	Model              string             `bson:"model" json:"model" validate:"required"`
	Year               int                `bson:"year" json:"year" validate:"required"`
	CurrentKm          int                `bson:"current_km" json:"currentKm" validate:"min=0"`
	LastInspectionDate *time.Time         `bson:"last_inspection_date,omitempty" json:"lastInspectionDate,omitempty"`
	NextInspectionDate *time.Time         `bson:"next_inspection_date,omitempty" json:"nextInspectionDate,omitempty"`
	LastServiceDate    *time.Time         `bson:"last_service_date,omitempty" json:"lastServiceDate,omitempty"`
	LastServiceKm      int                `bson:"last_service_km" json:"lastServiceKm"`
	ServiceHistory     []ServiceRecord    `bson:"service_history" json:"serviceHistory"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ServiceRecord is embedded in its vehicle and never stored on its own.
// Records carry generated ids so later edits can address them stably.
type ServiceRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        time.Time          `bson:"date" json:"date"`
	Km          int                `bson:"km" json:"km" validate:"min=0"`
	Description string             `bson:"description" json:"description" validate:"required"`
	PartsCost   float64            `bson:"parts_cost" json:"partsCost" validate:"min=0"`
	LaborHours  float64            `bson:"labor_hours" json:"laborHours" validate:"min=0"`
	LaborRate   float64            `bson:"labor_rate" json:"laborRate"`
	IsTuv       bool               `bson:"is_tuv" json:"isTuv"`
	PerformedBy primitive.ObjectID `bson:"performed_by,omitempty" json:"performedBy,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// AddService appends a record and updates the vehicle's derived fields.
// The recorded km is trusted as the latest reading and overwrites
// CurrentKm/LastServiceKm even if it is lower than before. A TÜV service
// pushes the next inspection out by two calendar years from the service date.
func (v *Vehicle) AddService(rec ServiceRecord) ServiceRecord {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	v.ServiceHistory = append(v.ServiceHistory, rec)

	v.CurrentKm = rec.Km
	v.LastServiceDate = &rec.Date
	v.LastServiceKm = rec.Km

	if rec.IsTuv {
		v.LastInspectionDate = &rec.Date
		next := rec.Date.AddDate(InspectionValidityYears, 0, 0)
		v.NextInspectionDate = &next
	}

	v.UpdatedAt = time.Now()
	return rec
}
