package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyLocation oficina de la empresa. Se asume como máximo una activa con IsMainOffice.
type CompanyLocation struct {
	ID           int64
	Name         string
	Latitude     decimal.Decimal // NUMERIC en la base
	Longitude    decimal.Decimal
	Address      string
	City         string
	State        string
	ZipCode      string
	Phone        string
	Email        string
	IsMainOffice bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
