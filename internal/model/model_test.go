package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState_Catalog(t *testing.T) {
	st := DefaultState()

	require.Len(t, st.Menu, 5, "default catalog has five items")
	assert.Empty(t, st.Users)
	assert.Empty(t, st.Orders)
	assert.Nil(t, st.CurrentUser)

	names := make([]string, len(st.Menu))
	for i, item := range st.Menu {
		names[i] = item.Name
	}
	assert.Equal(t, []string{
		"Truffle Mushroom Risotto",
		"Dragon Fire wings",
		"Zen Avocado Salad",
		"Midnight Lava Cake",
		"Cosmic Blue Latte",
	}, names)

	for _, item := range st.Menu {
		assert.Positive(t, item.Price, "item %s must have a positive price", item.Name)
		assert.NotEmpty(t, item.Moods, "item %s must carry mood tags", item.Name)
	}
}

func TestDefaultState_SeededStats(t *testing.T) {
	st := DefaultState()

	assert.Equal(t, []float64{800, 950, 700, 1100, 1500, 1800, 1400}, st.Stats.DailyRevenue)
	assert.Equal(t, []float64{40, 30, 15, 15}, st.Stats.Categories)
}

func TestState_UserLookup(t *testing.T) {
	st := DefaultState()
	st.Users = []User{
		{ID: 1, Email: "ana@example.com", Name: "Ana"},
		{ID: 2, Email: "ben@example.com", Name: "Ben"},
	}

	u := st.UserByEmail("ben@example.com")
	require.NotNil(t, u)
	assert.Equal(t, 2, u.ID)

	assert.Nil(t, st.UserByEmail("nobody@example.com"))
	assert.Nil(t, st.UserByEmail("BEN@example.com"), "email lookup is exact")

	u = st.UserByID(1)
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Name)
	assert.Nil(t, st.UserByID(99))
}

func TestState_UserLookupReturnsLiveReference(t *testing.T) {
	st := DefaultState()
	st.Users = []User{{ID: 1, Email: "ana@example.com", Name: "Ana"}}

	st.UserByID(1).Streak++
	assert.Equal(t, 1, st.Users[0].Streak, "lookup must point into the Users collection")
}

func TestState_MenuSnapshotIsIndependent(t *testing.T) {
	st := DefaultState()

	snap := st.MenuSnapshot()
	require.Len(t, snap, 5)

	snap[0].Name = "mutated"
	snap[0].Moods[0] = "mutated"

	assert.Equal(t, "Truffle Mushroom Risotto", st.Menu[0].Name)
	assert.Equal(t, "Stressed", st.Menu[0].Moods[0])
}

func TestState_HasOrderID(t *testing.T) {
	st := DefaultState()
	assert.False(t, st.HasOrderID("ORDAAAAAA"))

	st.Orders = append(st.Orders, Order{ID: "ORDAAAAAA"})
	assert.True(t, st.HasOrderID("ORDAAAAAA"))
	assert.False(t, st.HasOrderID("ORDBBBBBB"))
}
