package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffer_IsAvailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)
	limit := 2

	tests := []struct {
		name     string
		offer    Offer
		expected bool
	}{
		{name: "open ended", offer: Offer{Status: OfferStatusActive}, expected: true},
		{name: "inactive", offer: Offer{Status: OfferStatusInactive}},
		{name: "expired status", offer: Offer{Status: OfferStatusExpired}},
		{name: "not started", offer: Offer{Status: OfferStatusActive, StartDate: &after}},
		{name: "ended", offer: Offer{Status: OfferStatusActive, EndDate: &before}},
		{name: "inside window", offer: Offer{Status: OfferStatusActive, StartDate: &before, EndDate: &after}, expected: true},
		{name: "starts now", offer: Offer{Status: OfferStatusActive, StartDate: &now}, expected: true},
		{name: "ends now", offer: Offer{Status: OfferStatusActive, EndDate: &now}, expected: true},
		{name: "claims left", offer: Offer{Status: OfferStatusActive, MaxClaims: &limit, ClaimsCount: 1}, expected: true},
		{name: "claims exhausted", offer: Offer{Status: OfferStatusActive, MaxClaims: &limit, ClaimsCount: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.offer.IsAvailable(now))
		})
	}
}

func TestDecision_IsSent(t *testing.T) {
	var nilDecision *Decision
	assert.False(t, nilDecision.IsSent())
	assert.False(t, (&Decision{Status: ThrottleStatusThrottled}).IsSent())
	assert.True(t, (&Decision{Status: ThrottleStatusSent}).IsSent())
}
