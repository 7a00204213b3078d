package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanySettings holds the letterhead, banking and invoicing data of a
// manager's workshop. One document per manager, lazily created on first read.
type CompanySettings struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"user_id" json:"userId"`
	Name              string             `bson:"name" json:"name" validate:"required"`
	Address           string             `bson:"address,omitempty" json:"address,omitempty"`
	ZipCode           string             `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
	City              string             `bson:"city,omitempty" json:"city,omitempty"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	Website           string             `bson:"website,omitempty" json:"website,omitempty"`
	BankName          string             `bson:"bank_name,omitempty" json:"bankName,omitempty"`
	IBAN              string             `bson:"iban,omitempty" json:"iban,omitempty"`
	BIC               string             `bson:"bic,omitempty" json:"bic,omitempty"`
	TaxID             string             `bson:"tax_id,omitempty" json:"taxId,omitempty"`
	VatID             string             `bson:"vat_id,omitempty" json:"vatId,omitempty"`
	TaxRate           float64            `bson:"tax_rate" json:"taxRate"`
	InvoicePrefix     string             `bson:"invoice_prefix" json:"invoicePrefix"`
	NextInvoiceNumber int                `bson:"next_invoice_number" json:"nextInvoiceNumber"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DefaultCompanySettings returns the document created on a manager's first
// settings read.
func DefaultCompanySettings(userID primitive.ObjectID) *CompanySettings {
	now := time.Now()
	return &CompanySettings{
		UserID:            userID,
		Name:              "Ihre Werkstatt",
		TaxRate:           19,
		InvoicePrefix:     "R",
		NextInvoiceNumber: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
