package services

import (
	"errors"

	"workshop-backend/internal/models"
	"workshop-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

type UpdateSettingsRequest struct {
	Name              string  `json:"name" validate:"required"`
	Address           string  `json:"address,omitempty"`
	ZipCode           string  `json:"zipCode,omitempty"`
	City              string  `json:"city,omitempty"`
	Phone             string  `json:"phone,omitempty"`
	Email             string  `json:"email,omitempty" validate:"omitempty,email"`
	Website           string  `json:"website,omitempty"`
	BankName          string  `json:"bankName,omitempty"`
	IBAN              string  `json:"iban,omitempty"`
	BIC               string  `json:"bic,omitempty"`
	TaxID             string  `json:"taxId,omitempty"`
	VatID             string  `json:"vatId,omitempty"`
	TaxRate           float64 `json:"taxRate" validate:"min=0,max=100"`
	InvoicePrefix     string  `json:"invoicePrefix,omitempty"`
	NextInvoiceNumber int     `json:"nextInvoiceNumber,omitempty" validate:"omitempty,min=1"`
}

// GetSettings returns the manager's settings, creating the default document
// on first read.
func (s *SettingsService) GetSettings(userID string) (*models.CompanySettings, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	settings, err := s.settingsRepo.FindByUserID(uid)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, err
	}

	return s.settingsRepo.Create(models.DefaultCompanySettings(uid))
}

// UpdateSettings upserts the manager's settings as a full document. The
// invoice counter is preserved unless the request sets it explicitly.
func (s *SettingsService) UpdateSettings(userID string, req *UpdateSettingsRequest) (*models.CompanySettings, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	current, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	current.Name = req.Name
	current.Address = req.Address
	current.ZipCode = req.ZipCode
	current.City = req.City
	current.Phone = req.Phone
	current.Email = req.Email
	current.Website = req.Website
	current.BankName = req.BankName
	current.IBAN = req.IBAN
	current.BIC = req.BIC
	current.TaxID = req.TaxID
	current.VatID = req.VatID
	current.TaxRate = req.TaxRate
	if req.InvoicePrefix != "" {
		current.InvoicePrefix = req.InvoicePrefix
	}
	if req.NextInvoiceNumber > 0 {
		current.NextInvoiceNumber = req.NextInvoiceNumber
	}

	return s.settingsRepo.Upsert(uid, current)
}
