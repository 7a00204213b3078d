package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"workshop-backend/internal/models"
	"workshop-backend/internal/repository"
	"workshop-backend/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleService struct {
	vehicleRepo  *repository.VehicleRepository
	cacheManager cache.CacheManager
	cacheConfig  cache.CacheConfig
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		cacheConfig: cache.DefaultCacheConfig(),
	}
}

// SetCacheManager allows setting the cache manager for caching operations
func (s *VehicleService) SetCacheManager(cacheManager cache.CacheManager) {
	s.cacheManager = cacheManager
}

type CreateVehicleRequest struct {
	LicensePlate string     `json:"licensePlate" validate:"required,min=1,max=20"`
	OwnerName    string     `json:"ownerName" validate:"required,min=1,max=100"`
	OwnerPhone   string     `json:"ownerPhone,omitempty"`
	OwnerEmail   string     `json:"ownerEmail,omitempty" validate:"omitempty,email"`
	OwnerAddress string     `json:"ownerAddress,omitempty"`
	OwnerZipCode string     `json:"ownerZipCode,omitempty"`
	OwnerCity    string     `json:"ownerCity,omitempty"`
	Make         string     `json:"make" validate:"required"`
	Model        string     `json:"model" validate:"required"`
	Year         int        `json:"year" validate:"required,min=1900,max=2100"`
	CurrentKm    int        `json:"currentKm" validate:"min=0"`
	LastTuvDate  *time.Time `json:"lastTuvDate,omitempty"`
	NextTuvDate  *time.Time `json:"nextTuvDate,omitempty"`
}

type UpdateVehicleRequest struct {
	LicensePlate   string                 `json:"licensePlate,omitempty"`
	OwnerName      string                 `json:"ownerName,omitempty"`
	OwnerPhone     *string                `json:"ownerPhone,omitempty"`
	OwnerEmail     *string                `json:"ownerEmail,omitempty"`
	OwnerAddress   *string                `json:"ownerAddress,omitempty"`
	OwnerZipCode   *string                `json:"ownerZipCode,omitempty"`
	OwnerCity      *string                `json:"ownerCity,omitempty"`
	Make           string                 `json:"make,omitempty"`
	Model          string                 `json:"model,omitempty"`
	Year           int                    `json:"year,omitempty" validate:"omitempty,min=1900,max=2100"`
	CurrentKm      *int                   `json:"currentKm,omitempty" validate:"omitempty,min=0"`
	LastTuvDate    *time.Time             `json:"lastTuvDate,omitempty"`
	NextTuvDate    *time.Time             `json:"nextTuvDate,omitempty"`
	ServiceHistory []models.ServiceRecord `json:"serviceHistory,omitempty"`
}

type AddServiceRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Km          int        `json:"km" validate:"min=0"`
	Description string     `json:"description" validate:"required"`
	PartsCost   float64    `json:"partsCost" validate:"min=0"`
	LaborHours  float64    `json:"laborHours" validate:"min=0"`
	LaborRate   float64    `json:"laborRate" validate:"min=0"`
	IsTuv       bool       `json:"isTuv"`
}

// normalizePlate applies the canonical license plate form: trimmed, uppercased.
func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func (s *VehicleService) GetAllVehicles() ([]*models.Vehicle, error) {
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicleList("all_vehicles")
		if err != nil {
			log.Printf("Cache error for GetAllVehicles: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicleRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cacheManager != nil {
		ttl := s.cacheConfig.GetTTLForDataType("vehicle_list")
		if cacheErr := s.cacheManager.SetVehicleList("all_vehicles", vehicles, ttl); cacheErr != nil {
			log.Printf("Failed to cache all vehicles: %v", cacheErr)
		}
	}

	return vehicles, nil
}

func (s *VehicleService) GetVehicleByID(id string) (*models.Vehicle, error) {
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicle(id)
		if err != nil {
			log.Printf("Cache error for GetVehicleByID(%s): %v", id, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.cacheManager != nil {
		ttl := s.cacheConfig.GetTTLForDataType("vehicle")
		if cacheErr := s.cacheManager.SetVehicle(id, vehicle, ttl); cacheErr != nil {
			log.Printf("Failed to cache vehicle %s: %v", id, cacheErr)
		}
	}

	return vehicle, nil
}

func (s *VehicleService) CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error) {
	plate := normalizePlate(req.LicensePlate)

	existing, _ := s.vehicleRepo.FindByLicensePlate(plate)
	if existing != nil {
		return nil, errors.New("license plate already exists")
	}

	now := time.Now()
	vehicle := &models.Vehicle{
		ID:                 primitive.NewObjectID(),
		LicensePlate:       plate,
		OwnerName:          req.OwnerName,
		OwnerPhone:         req.OwnerPhone,
		OwnerEmail:         req.OwnerEmail,
		OwnerAddress:       req.OwnerAddress,
		OwnerZipCode:       req.OwnerZipCode,
		OwnerCity:          req.OwnerCity,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		CurrentKm:          req.CurrentKm,
		LastInspectionDate: req.LastTuvDate,
		NextInspectionDate: req.NextTuvDate,
		ServiceHistory:     []models.ServiceRecord{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.vehicleRepo.Create(vehicle)
	if err != nil {
		return nil, err
	}

	s.invalidateLists()
	return created, nil
}

func (s *VehicleService) UpdateVehicle(id string, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.LicensePlate != "" {
		plate := normalizePlate(req.LicensePlate)
		existing, _ := s.vehicleRepo.FindByLicensePlate(plate)
		if existing != nil && existing.ID.Hex() != id {
			return nil, errors.New("license plate already exists")
		}
		vehicle.LicensePlate = plate
	}
	if req.OwnerName != "" {
		vehicle.OwnerName = req.OwnerName
	}
	if req.OwnerPhone != nil {
		vehicle.OwnerPhone = *req.OwnerPhone
	}
	if req.OwnerEmail != nil {
		vehicle.OwnerEmail = *req.OwnerEmail
	}
	if req.OwnerAddress != nil {
		vehicle.OwnerAddress = *req.OwnerAddress
	}
	if req.OwnerZipCode != nil {
		vehicle.OwnerZipCode = *req.OwnerZipCode
	}
	if req.OwnerCity != nil {
		vehicle.OwnerCity = *req.OwnerCity
	}
	if req.Make != "" {
		vehicle.Make = req.Make
	}
	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.Year > 0 {
		vehicle.Year = req.Year
	}
	if req.CurrentKm != nil {
		vehicle.CurrentKm = *req.CurrentKm
	}
	if req.LastTuvDate != nil {
		vehicle.LastInspectionDate = req.LastTuvDate
	}
	if req.NextTuvDate != nil {
		vehicle.NextInspectionDate = req.NextTuvDate
	}
	// records have no fine-grained API; edits and deletes replace the
	// embedded collection wholesale
	if req.ServiceHistory != nil {
		for i := range req.ServiceHistory {
			if req.ServiceHistory[i].ID.IsZero() {
				req.ServiceHistory[i].ID = primitive.NewObjectID()
			}
		}
		vehicle.ServiceHistory = req.ServiceHistory
	}

	updated, err := s.vehicleRepo.Update(id, vehicle)
	if err != nil {
		return nil, err
	}

	s.invalidateVehicle(id)
	return updated, nil
}

// AddService records a service event and persists the whole vehicle document.
func (s *VehicleService) AddService(id string, req *AddServiceRequest, performedBy string) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	rec := models.ServiceRecord{
		Km:          req.Km,
		Description: req.Description,
		PartsCost:   req.PartsCost,
		LaborHours:  req.LaborHours,
		LaborRate:   req.LaborRate,
		IsTuv:       req.IsTuv,
	}
	if req.Date != nil {
		rec.Date = *req.Date
	}
	if rec.LaborRate == 0 {
		rec.LaborRate = 80
	}
	if performedBy != "" {
		if uid, err := primitive.ObjectIDFromHex(performedBy); err == nil {
			rec.PerformedBy = uid
		}
	}

	vehicle.AddService(rec)

	updated, err := s.vehicleRepo.Update(id, vehicle)
	if err != nil {
		return nil, err
	}

	s.invalidateVehicle(id)
	return updated, nil
}

func (s *VehicleService) DeleteVehicle(id string) error {
	if err := s.vehicleRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateVehicle(id)
	return nil
}

func (s *VehicleService) invalidateVehicle(id string) {
	if s.cacheManager == nil {
		return
	}
	if err := s.cacheManager.InvalidateVehicle(id); err != nil {
		log.Printf("Failed to invalidate vehicle %s: %v", id, err)
	}
	s.invalidateLists()
}

func (s *VehicleService) invalidateLists() {
	if s.cacheManager == nil {
		return
	}
	if err := s.cacheManager.InvalidateVehicleLists(); err != nil {
		log.Printf("Failed to invalidate vehicle lists: %v", err)
	}
}
