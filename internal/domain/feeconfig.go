package domain

// FeeConfig holds the delivery-fee rules. Hours are 0-23; a window with
// End < Start wraps past midnight. A single row exists; it is created with
// defaults at startup and updated only by an administrator.
type FeeConfig struct {
	BasePrice          float64
	PricePerKm         float64
	RushHourMultiplier float64
	RushHourStart      int
	RushHourEnd        int
	NightFeeMultiplier float64
	NightFeeStart      int
	NightFeeEnd        int
}

// DefaultFeeConfig returns the documented defaults used when no config row exists.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		BasePrice:          2.50,
		PricePerKm:         1.00,
		RushHourMultiplier: 1.5,
		RushHourStart:      17,
		RushHourEnd:        21,
		NightFeeMultiplier: 1.2,
		NightFeeStart:      22,
		NightFeeEnd:        6,
	}
}

// Valid checks the config invariants: multipliers >= 0, hours in [0,23].
func (c FeeConfig) Valid() bool {
	if c.BasePrice < 0 || c.PricePerKm < 0 {
		return false
	}
	if c.RushHourMultiplier < 0 || c.NightFeeMultiplier < 0 {
		return false
	}
	for _, h := range []int{c.RushHourStart, c.RushHourEnd, c.NightFeeStart, c.NightFeeEnd} {
		if h < 0 || h > 23 {
			return false
		}
	}
	return true
}
