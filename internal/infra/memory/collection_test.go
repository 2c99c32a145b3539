package memory

import (
	"testing"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDishCollection() *collection[*entity.Dish] {
	return newCollection(
		func(d *entity.Dish) int64 { return d.ID },
		func(d *entity.Dish, id int64) { d.ID = id },
	)
}

func TestCollection_IDsAreMonotonicAcrossDeletes(t *testing.T) {
	c := newDishCollection()

	first := &entity.Dish{Name: "Soup"}
	second := &entity.Dish{Name: "Salad"}
	c.create(first)
	c.create(second)

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	require.True(t, c.delete(second.ID))

	third := &entity.Dish{Name: "Stew"}
	c.create(third)

	// 2 was freed but must never be handed out again.
	assert.Equal(t, int64(3), third.ID)
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	c := newDishCollection()

	dish := &entity.Dish{Name: "Soup"}
	c.create(dish)

	assert.True(t, c.delete(dish.ID))
	assert.False(t, c.delete(dish.ID))
	assert.Empty(t, c.list())
}

func TestCollection_DeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	c := newDishCollection()
	c.create(&entity.Dish{Name: "Soup"})

	before := c.Version()

	assert.False(t, c.delete(42))
	assert.Len(t, c.list(), 1)
	assert.Equal(t, before, c.Version())
}

func TestCollection_UpdateReplacesWholesale(t *testing.T) {
	c := newDishCollection()

	dish := &entity.Dish{Name: "Soup", Price: 4.5}
	c.create(dish)

	replacement := &entity.Dish{ID: dish.ID, Name: "Goulash", Price: 6.0}
	require.True(t, c.update(replacement))

	stored, ok := c.find(dish.ID)
	require.True(t, ok)
	assert.Equal(t, "Goulash", stored.Name)
	assert.Equal(t, 6.0, stored.Price)
}

func TestCollection_UpdateMissingReportsFalse(t *testing.T) {
	c := newDishCollection()

	assert.False(t, c.update(&entity.Dish{ID: 7, Name: "Ghost"}))
	assert.Empty(t, c.list())
}

func TestCollection_ListIsMembershipSnapshot(t *testing.T) {
	c := newDishCollection()

	dish := &entity.Dish{Name: "Soup"}
	c.create(dish)

	snapshot := c.list()
	require.True(t, c.delete(dish.ID))

	// Iterating the snapshot is safe after the delete.
	assert.Len(t, snapshot, 1)
	assert.Empty(t, c.list())
}

func TestCollection_VersionAndSubscribers(t *testing.T) {
	c := newDishCollection()

	var events []repository.Mutation
	cancel := c.Subscribe(func(m repository.Mutation) {
		events = append(events, m)
	})

	dish := &entity.Dish{Name: "Soup"}
	c.create(dish)
	require.True(t, c.update(&entity.Dish{ID: dish.ID, Name: "Broth"}))
	require.True(t, c.delete(dish.ID))

	require.Len(t, events, 3)
	assert.Equal(t, repository.MutationCreated, events[0].Kind)
	assert.Equal(t, repository.MutationUpdated, events[1].Kind)
	assert.Equal(t, repository.MutationDeleted, events[2].Kind)
	for _, e := range events {
		assert.Equal(t, dish.ID, e.EntityID)
		assert.NotEqual(t, e.EventID.String(), "00000000-0000-0000-0000-000000000000")
	}
	assert.Equal(t, uint64(3), c.Version())

	cancel()
	c.create(&entity.Dish{Name: "Salad"})

	assert.Len(t, events, 3)
	assert.Equal(t, uint64(4), c.Version())
}
