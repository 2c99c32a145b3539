package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewTarget_Constructors(t *testing.T) {
	restaurant := RestaurantTarget(3)
	assert.Equal(t, TargetRestaurant, restaurant.Kind)
	assert.True(t, restaurant.IsValid())

	driver := DriverTarget(7)
	assert.Equal(t, TargetDriver, driver.Kind)
	assert.True(t, driver.IsValid())
}

func TestReviewTarget_IsValid_RejectsMalformedTargets(t *testing.T) {
	assert.False(t, ReviewTarget{}.IsValid())
	assert.False(t, ReviewTarget{Kind: TargetRestaurant}.IsValid())
	assert.False(t, ReviewTarget{Kind: TargetDriver, RestaurantID: 1, DriverID: 2}.IsValid())
	assert.False(t, ReviewTarget{Kind: "dish", RestaurantID: 1}.IsValid())
}
