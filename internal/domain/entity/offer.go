package entity

import "time"

// OfferStatus is the lifecycle state of an offer in the catalog.
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusInactive OfferStatus = "inactive"
	OfferStatusExpired  OfferStatus = "expired"
)

// Offer is a brand promotion read from the external catalog.
type Offer struct {
	ID            int64       `json:"id"`             // Catalog identifier.
	BrandID       int64       `json:"brand_id"`       // Brand publishing the offer.
	Title         string      `json:"title"`          // Short headline used as notification title.
	Description   string      `json:"description"`    // Body text used as notification body.
	Status        OfferStatus `json:"status"`         // active, inactive or expired.
	DiscountValue float64     `json:"discount_value"` // Magnitude used to rank offers.
	StartDate     *time.Time  `json:"start_date"`     // Open when nil.
	EndDate       *time.Time  `json:"end_date"`       // Open when nil.
	MaxClaims     *int        `json:"max_claims"`     // Unlimited when nil.
	ClaimsCount   int         `json:"claims_count"`   // Claims made so far.
}

// IsAvailable reports whether the offer is active, inside its date window
// and still under its claim limit at now.
func (o *Offer) IsAvailable(now time.Time) bool {
	if o.Status != OfferStatusActive {
		return false
	}
	if o.StartDate != nil && now.Before(*o.StartDate) {
		return false
	}
	if o.EndDate != nil && now.After(*o.EndDate) {
		return false
	}
	if o.MaxClaims != nil && o.ClaimsCount >= *o.MaxClaims {
		return false
	}

	return true
}
