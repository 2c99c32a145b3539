package entity

import "time"

// VehicleType represents how a driver delivers orders.
type VehicleType string

const (
	// VehicleCar indicates delivery by car.
	VehicleCar VehicleType = "CAR"
	// VehicleBike indicates delivery by bike.
	VehicleBike VehicleType = "BIKE"
	// VehicleByFoot indicates delivery on foot.
	VehicleByFoot VehicleType = "BY_FOOT"
)

// String returns the string representation of the VehicleType.
func (v VehicleType) String() string {
	return string(v)
}

// IsValid checks if the VehicleType is a valid value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleCar, VehicleBike, VehicleByFoot:
		return true
	default:
		return false
	}
}

// VehicleTypes lists every valid vehicle type, in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleCar, VehicleBike, VehicleByFoot}
}

// Driver is an account that delivers orders.
type Driver struct {
	ID int64 // Assigned by the driver repository, starting at 1, never reused.
	Person
	LicenceNumber string
	BirthDate     time.Time // Date of birth; age checks are the presentation layer's job.
	Vehicle       VehicleType
}
