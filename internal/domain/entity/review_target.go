package entity

// ReviewTargetKind represents the kind of entity a review is about.
type ReviewTargetKind string

const (
	// TargetRestaurant indicates the review is about a restaurant.
	TargetRestaurant ReviewTargetKind = "restaurant"
	// TargetDriver indicates the review is about a driver.
	TargetDriver ReviewTargetKind = "driver"
)

// String returns the string representation of the ReviewTargetKind.
func (k ReviewTargetKind) String() string {
	return string(k)
}

// IsValid checks if the ReviewTargetKind is a valid value.
func (k ReviewTargetKind) IsValid() bool {
	switch k {
	case TargetRestaurant, TargetDriver:
		return true
	default:
		return false
	}
}

// ReviewTarget points a review at exactly one restaurant or exactly one
// driver. Values are only built through the constructors below, so a valid
// target can never reference both or neither.
type ReviewTarget struct {
	Kind         ReviewTargetKind
	RestaurantID int64 // Set when Kind is TargetRestaurant, zero otherwise.
	DriverID     int64 // Set when Kind is TargetDriver, zero otherwise.
}

// RestaurantTarget builds a target pointing at a restaurant.
func RestaurantTarget(restaurantID int64) ReviewTarget {
	return ReviewTarget{Kind: TargetRestaurant, RestaurantID: restaurantID}
}

// DriverTarget builds a target pointing at a driver.
func DriverTarget(driverID int64) ReviewTarget {
	return ReviewTarget{Kind: TargetDriver, DriverID: driverID}
}

// IsValid checks that the target references exactly one entity, matching
// its kind.
func (t ReviewTarget) IsValid() bool {
	switch t.Kind {
	case TargetRestaurant:
		return t.RestaurantID != 0 && t.DriverID == 0
	case TargetDriver:
		return t.DriverID != 0 && t.RestaurantID == 0
	default:
		return false
	}
}
