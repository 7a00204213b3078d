package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workshop-backend/internal/document"
	"workshop-backend/internal/models"
	"workshop-backend/internal/repository"
	"workshop-backend/pkg/pdf"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentService produces downloadable PDF documents for a vehicle. Company
// data comes from the requesting user's settings when they have any; mechanics
// without settings get documents without a letterhead.
type DocumentService struct {
	vehicleRepo  *repository.VehicleRepository
	settingsRepo *repository.SettingsRepository
}

func NewDocumentService(vehicleRepo *repository.VehicleRepository, settingsRepo *repository.SettingsRepository) *DocumentService {
	return &DocumentService{
		vehicleRepo:  vehicleRepo,
		settingsRepo: settingsRepo,
	}
}

type GeneratedDocument struct {
	Filename string
	Data     []byte
}

func (s *DocumentService) GenerateServiceReport(vehicleID, requesterID string) (*GeneratedDocument, error) {
	vehicle, err := s.vehicleRepo.FindByID(vehicleID)
	if err != nil {
		return nil, err
	}

	company := s.settingsFor(requesterID)
	now := time.Now()

	canvas := pdf.NewCanvas()
	document.NewComposer(canvas).ServiceReport(vehicle, vehicle.ServiceHistory, company, now)

	data, err := canvas.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render service report: %w", err)
	}

	filename := fmt.Sprintf("Service-Nachweis-%s-%s.pdf",
		strings.ReplaceAll(vehicle.LicensePlate, " ", "-"), now.Format("2006-01-02"))

	return &GeneratedDocument{Filename: filename, Data: data}, nil
}

func (s *DocumentService) GenerateInvoice(vehicleID, requesterID string) (*GeneratedDocument, error) {
	vehicle, err := s.vehicleRepo.FindByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if len(vehicle.ServiceHistory) == 0 {
		return nil, errors.New("vehicle has no services to invoice")
	}

	company := s.settingsFor(requesterID)
	now := time.Now()

	invoiceNumber := s.nextInvoiceNumber(company, now)

	canvas := pdf.NewCanvas()
	document.NewComposer(canvas).Invoice(vehicle, vehicle.ServiceHistory, company, invoiceNumber, now)

	data, err := canvas.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	filename := fmt.Sprintf("Rechnung-%s-%s.pdf",
		invoiceNumber, strings.ReplaceAll(vehicle.LicensePlate, " ", "-"))

	return &GeneratedDocument{Filename: filename, Data: data}, nil
}

func (s *DocumentService) settingsFor(userID string) *models.CompanySettings {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}
	settings, err := s.settingsRepo.FindByUserID(uid)
	if err != nil {
		return nil
	}
	return settings
}

// nextInvoiceNumber consumes the settings counter when the requester has one;
// requesters without settings get a timestamp-based number.
func (s *DocumentService) nextInvoiceNumber(company *models.CompanySettings, now time.Time) string {
	if company != nil {
		n, err := s.settingsRepo.ConsumeInvoiceNumber(company.UserID)
		if err == nil {
			prefix := company.InvoicePrefix
			if prefix == "" {
				prefix = "R"
			}
			return prefix + strconv.Itoa(n)
		}
	}
	return "R" + strconv.FormatInt(now.UnixMilli(), 10)
}
