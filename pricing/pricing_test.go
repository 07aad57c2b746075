package pricing_test

import (
	"math"
	"testing"

	"travel-booking-webapp/pricing"

	"github.com/stretchr/testify/assert"
)

func TestHotelTotalTwoNights(t *testing.T) {
	total, err := pricing.HotelTotal(2500, "2024-06-01", "2024-06-03")

	assert.NoError(t, err)
	assert.Equal(t, 5000.0, total)
}

func TestHotelTotalRejectsInvertedDates(t *testing.T) {
	_, err := pricing.HotelTotal(2500, "2024-06-03", "2024-06-01")
	assert.Error(t, err)

	_, err = pricing.HotelTotal(2500, "2024-06-01", "2024-06-01")
	assert.Error(t, err)
}

func TestHotelTotalRejectsMalformedDates(t *testing.T) {
	_, err := pricing.HotelTotal(2500, "01-06-2024", "2024-06-03")
	assert.Error(t, err)
}

func TestPackageTotalAdultsAndChildren(t *testing.T) {
	// 3500*2 adults + 3500*0.5*1 child
	total := pricing.PackageTotal(3500, 2, 1)
	assert.Equal(t, 8750.0, total)
}

func TestPackageTotalNoChildren(t *testing.T) {
	total := pricing.PackageTotal(3500, 2, 0)
	assert.Equal(t, 7000.0, total)
}

func TestNormalizeSubstitutesTypeSpecificDefaults(t *testing.T) {
	tests := []struct {
		itemType string
		amount   float64
		expected float64
	}{
		{"hotel", 0, pricing.DefaultHotelAmount},
		{"hotel", -100, pricing.DefaultHotelAmount},
		{"hotel", math.NaN(), pricing.DefaultHotelAmount},
		{"package", 0, pricing.DefaultPackageAmount},
		{"package", math.Inf(1), pricing.DefaultPackageAmount},
		{"travel", 0, pricing.DefaultTravelAmount},
		{"hotel", 5000, 5000},
		{"package", 8750, 8750},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, pricing.Normalize(test.itemType, test.amount))
	}

	// the defaults themselves must stay distinct per item type
	assert.NotEqual(t, pricing.DefaultHotelAmount, pricing.DefaultPackageAmount)
}
