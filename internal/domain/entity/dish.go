package entity

// Dish is a menu item owned by exactly one restaurant.
type Dish struct {
	ID           int64 // Assigned by the dish repository, starting at 1, never reused.
	Name         string
	Ingredients  string
	Price        float64 // Unit price, never negative.
	Spicy        bool
	Vegan        bool
	RestaurantID int64 // The owning restaurant. Always references a live record.
}
