// Package models defines the domain types shared across the application:
// properties, monthly records, derived statement figures and branding.
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerType identifies the tax category of a property owner.
// The tokens match the ones used in the tabular import format.
type OwnerType string

const (
	// OwnerIndividual marks a private individual owner ("persona fisica").
	// Withholding tax applies to this category.
	OwnerIndividual OwnerType = "PF"
	// OwnerCompany marks a company owner. No withholding tax applies.
	OwnerCompany OwnerType = "Societa"
)

// ParseOwnerType maps an import token to an OwnerType. Anything other than
// the exact company token (including the empty string) is an individual.
func ParseOwnerType(token string) OwnerType {
	if OwnerType(token) == OwnerCompany {
		return OwnerCompany
	}
	return OwnerIndividual
}

// Property represents a managed rental property.
type Property struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	OwnerType     OwnerType       `json:"ownerType" yaml:"ownerType"`
	CommissionPct decimal.Decimal `json:"commissionPct" yaml:"commissionPct"`
	OwnerDisplay  string          `json:"ownerDisplay,omitempty" yaml:"ownerDisplay,omitempty"`
	Address       string          `json:"address,omitempty" yaml:"address,omitempty"`
	Cover         string          `json:"cover,omitempty" yaml:"cover,omitempty"`
}

// NewProperty creates a property with a fresh identifier. The commission
// rate is a percentage and must not be negative; a negative input is
// clamped to zero.
func NewProperty(name string, owner OwnerType, commissionPct decimal.Decimal) Property {
	if commissionPct.IsNegative() {
		commissionPct = decimal.Zero
	}
	return Property{
		ID:            uuid.New().String(),
		Name:          name,
		OwnerType:     owner,
		CommissionPct: commissionPct,
	}
}

// NameKey returns the normalized form of a property name used for
// case-insensitive matching during import reconciliation.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MonthlyRecord holds the raw figures for one property and one month.
// Month is a zero-based calendar index (0 = January).
type MonthlyRecord struct {
	ID         string          `json:"id" yaml:"id"`
	PropertyID string          `json:"propertyId" yaml:"propertyId"`
	Year       int             `json:"year" yaml:"year"`
	Month      int             `json:"month" yaml:"month"`
	Airbnb     decimal.Decimal `json:"airbnb" yaml:"airbnb"`
	Pulizie    decimal.Decimal `json:"pulizie" yaml:"pulizie"`
	AltreSpese decimal.Decimal `json:"altreSpese" yaml:"altreSpese"`
	Notes      string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewMonthlyRecord creates a record with a fresh identifier.
func NewMonthlyRecord(propertyID string, year, month int, airbnb, pulizie, altreSpese decimal.Decimal) MonthlyRecord {
	return MonthlyRecord{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		Year:       year,
		Month:      month,
		Airbnb:     airbnb,
		Pulizie:    pulizie,
		AltreSpese: altreSpese,
	}
}

// NaturalKey identifies one monthly statement independently of the opaque
// record ID. At most one record may exist per natural key.
type NaturalKey struct {
	PropertyID string
	Year       int
	Month      int
}

// Key returns the record's natural key.
func (r MonthlyRecord) Key() NaturalKey {
	return NaturalKey{PropertyID: r.PropertyID, Year: r.Year, Month: r.Month}
}

// StatementResult is the full financial breakdown derived from one monthly
// record and its owning property. It is recomputed on every read and never
// persisted.
type StatementResult struct {
	Locazione decimal.Decimal `json:"locazione"`
	Comm      decimal.Decimal `json:"comm"`
	IVA       decimal.Decimal `json:"iva"`
	Netto     decimal.Decimal `json:"netto"`
	Rit       decimal.Decimal `json:"rit"`
	Bonifico  decimal.Decimal `json:"bonifico"`
}

// Brand holds the report branding configured by the property manager.
type Brand struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Logo  string `json:"logo,omitempty" yaml:"logo,omitempty"`
}
