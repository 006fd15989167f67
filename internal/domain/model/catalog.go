package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a catalog entry users can purchase.
type Package struct {
	ID             int64
	Name           string
	Price          decimal.Decimal
	StarsPrice     int64
	Type           string
	InputLabel     string
	Description    string
	AllowStars     bool
	RequirePremium bool
	Active         bool
	CreatedAt      time.Time
}
