package dto

import "github.com/shopspring/decimal"

// PackageResponse represents a storefront package.
type PackageResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	StarsPrice     int64           `json:"starsPrice"`
	Type           string          `json:"type"`
	InputLabel     string          `json:"inputLabel"`
	Description    string          `json:"description"`
	AllowStars     bool            `json:"allowStars"`
	RequirePremium bool            `json:"requirePremium"`
}
