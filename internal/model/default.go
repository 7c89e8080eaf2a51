package model

// DefaultState materializes the initial application state: the fixed
// five-item catalog, empty users and orders, no session, and the seeded
// dashboard stats. The store persists this exactly once when no prior
// state exists.
func DefaultState() *State {
	return &State{
		Users:  []User{},
		Orders: []Order{},
		Menu:   DefaultMenu(),
		Stats: Stats{
			DailyRevenue: []float64{800, 950, 700, 1100, 1500, 1800, 1400},
			Categories:   []float64{40, 30, 15, 15},
		},
	}
}

// DefaultMenu returns the fixed catalog. Menu items are read-only after
// store initialization.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{
			ID:       1,
			Name:     "Truffle Mushroom Risotto",
			Category: "Veg",
			Price:    24,
			Calories: 450,
			PrepTime: 20,
			Moods:    []string{"Stressed", "Happy"},
			Image:    "https://images.unsplash.com/photo-1476124369491-e7addf5db371?q=80&w=400",
		},
		{
			ID:       2,
			Name:     "Dragon Fire wings",
			Category: "Non-Veg",
			Price:    16,
			Calories: 600,
			PrepTime: 15,
			Moods:    []string{"Energetic", "Adventurous"},
			Image:    "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?q=80&w=400",
		},
		{
			ID:       3,
			Name:     "Zen Avocado Salad",
			Category: "Veg",
			Price:    18,
			Calories: 300,
			PrepTime: 10,
			Moods:    []string{"Calm", "Bored"},
			Image:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=400",
		},
		{
			ID:       4,
			Name:     "Midnight Lava Cake",
			Category: "Dessert",
			Price:    12,
			Calories: 550,
			PrepTime: 12,
			Moods:    []string{"Sad", "Happy"},
			Image:    "https://images.unsplash.com/photo-1563805042-7684c019e1cb?q=80&w=400",
		},
		{
			ID:       5,
			Name:     "Cosmic Blue Latte",
			Category: "Drinks",
			Price:    8,
			Calories: 120,
			PrepTime: 5,
			Moods:    []string{"Tired", "Creative"},
			Image:    "https://images.unsplash.com/photo-1541167760496-1628856ab772?q=80&w=400",
		},
	}
}
