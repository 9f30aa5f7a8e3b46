package fee

import (
	"math"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
)

const (
	baseMinutes    = 10.0
	minutesPerKm   = 5.0
	rushTimeFactor = 1.3
	maxHour        = 23
)

// Calculate returns the delivery fee for a distance at the given wall-clock
// hour. The rush-hour and night windows apply independently; when both match
// the multipliers stack. The result is rounded to 2 decimal places.
func Calculate(distanceKm float64, hour int, cfg domain.FeeConfig) (float64, error) {
	if err := validateInputs(distanceKm, hour); err != nil {
		return 0, err
	}

	fee := cfg.BasePrice + distanceKm*cfg.PricePerKm
	if inWindow(hour, cfg.RushHourStart, cfg.RushHourEnd) {
		fee *= cfg.RushHourMultiplier
	}
	if inWindow(hour, cfg.NightFeeStart, cfg.NightFeeEnd) {
		fee *= cfg.NightFeeMultiplier
	}
	return round2(fee), nil
}

// EstimateMinutes returns the ETA in minutes for a distance at the given
// wall-clock hour, rounded to the nearest integer.
func EstimateMinutes(distanceKm float64, hour int, cfg domain.FeeConfig) (int, error) {
	if err := validateInputs(distanceKm, hour); err != nil {
		return 0, err
	}

	minutes := baseMinutes + distanceKm*minutesPerKm
	if inWindow(hour, cfg.RushHourStart, cfg.RushHourEnd) {
		minutes *= rushTimeFactor
	}
	return int(math.Round(minutes)), nil
}

func validateInputs(distanceKm float64, hour int) error {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return apperr.ErrInvalid
	}
	if hour < 0 || hour > maxHour {
		return apperr.ErrInvalid
	}
	return nil
}

// inWindow reports whether hour falls in [start, end). A window with
// end < start wraps past midnight, e.g. start=22 end=2 covers 22,23,0,1.
func inWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
