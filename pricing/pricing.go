package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Defaults substituted when a computed amount comes out non-positive or NaN.
// Deliberately distinct per item type so a defaulted hotel total can never be
// mistaken for a defaulted package total.
const (
	DefaultHotelAmount   = 2999
	DefaultPackageAmount = 4999
	DefaultTravelAmount  = 1499
)

// childFactor is the fraction of the base price charged per child.
var childFactor = decimal.NewFromFloat(0.5)

// Nights returns the number of nights between two yyyy-mm-dd dates.
// checkOutDate must be strictly after checkInDate.
func Nights(checkInDate, checkOutDate string) (int, error) {
	checkIn, err := time.Parse(dateLayout, checkInDate)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date %v: %v", checkInDate, err)
	}
	checkOut, err := time.Parse(dateLayout, checkOutDate)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date %v: %v", checkOutDate, err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return 0, fmt.Errorf("check-out date %v must be after check-in date %v", checkOutDate, checkInDate)
	}

	return nights, nil
}

// HotelTotal is nightly rate times the number of nights.
func HotelTotal(nightlyRate float64, checkInDate, checkOutDate string) (float64, error) {
	nights, err := Nights(checkInDate, checkOutDate)
	if err != nil {
		return 0, err
	}

	total := decimal.NewFromFloat(nightlyRate).Mul(decimal.NewFromInt(int64(nights)))
	amount, _ := total.Float64()
	return amount, nil
}

// PackageTotal charges the full base price per adult and half per child.
func PackageTotal(basePrice float64, adults, children uint) float64 {
	base := decimal.NewFromFloat(basePrice)
	total := base.Mul(decimal.NewFromInt(int64(adults))).
		Add(base.Mul(childFactor).Mul(decimal.NewFromInt(int64(children))))
	amount, _ := total.Float64()
	return amount
}

// DefaultAmount returns the fixed fallback total for an item type.
func DefaultAmount(itemType string) float64 {
	switch itemType {
	case "package":
		return DefaultPackageAmount
	case "travel":
		return DefaultTravelAmount
	default:
		return DefaultHotelAmount
	}
}

// Normalize substitutes the type-specific default when the computed amount is
// NaN, infinite or non-positive, so an invalid amount is never submitted.
func Normalize(itemType string, amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return DefaultAmount(itemType)
	}
	return amount
}
