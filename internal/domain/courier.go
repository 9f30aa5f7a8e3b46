package domain

import "regexp"

type (
	// CourierStatus represents the availability of a courier.
	CourierStatus string
	// VehicleType represents the vehicle a courier rides.
	VehicleType string
)

// List of possible courier statuses
const (
	CourierAvailable CourierStatus = "available"
	CourierBusy      CourierStatus = "busy"
	CourierOffline   CourierStatus = "offline"
)

// List of possible vehicle types
const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
)

var allowedCourierStatuses = [...]CourierStatus{
	CourierAvailable, CourierBusy, CourierOffline,
}

var allowedVehicleTypes = [...]VehicleType{
	VehicleBicycle, VehicleMotorcycle, VehicleCar, VehicleVan,
}

// Valid checks if the CourierStatus is valid
func (s CourierStatus) Valid() bool {
	for _, v := range allowedCourierStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Courier represents a delivery courier.
// Latitude/Longitude stay nil until the first location update.
type Courier struct {
	ID              int64
	Name            string
	Phone           string
	VehicleType     VehicleType
	Status          CourierStatus
	Rating          float64
	TotalDeliveries int64
	IsActive        bool
	Latitude        *float64
	Longitude       *float64
}

// HasLocation reports whether the courier has ever reported coordinates.
func (c Courier) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// PartialCourierUpdate carries optional fields to update a courier.
// A nil field means “do not change” that attribute.
type PartialCourierUpdate struct {
	ID          int64
	Name        *string
	Phone       *string
	Status      *CourierStatus
	VehicleType *VehicleType
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{7,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// ValidateCoordinates checks that lat/lon are signed decimal degrees in range.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
