package config

func ptr(n float64) *float64 {
	return &n
}

// Default returns the built-in booking form used when no config file is given.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{Base: "light"},
		Fields: []FieldConfig{
			{
				ID:       "passengers",
				Label:    "Passengers",
				Help:     "Including the driver",
				Min:      ptr(1),
				Max:      ptr(9),
				Initial:  ptr(1),
				Required: true,
			},
			{
				ID:       "rental_days",
				Label:    "Rental days",
				Min:      ptr(1),
				Max:      ptr(30),
				Required: true,
			},
			{
				ID:            "daily_budget",
				Label:         "Daily budget (EUR)",
				Help:          "Leave empty for no limit",
				Min:           ptr(0),
				Max:           ptr(500),
				Step:          5,
				AllowDecimals: true,
			},
		},
		Vehicles: []VehicleConfig{
			{ID: "city_hatch", Name: "City hatchback", Seats: 4, DailyRate: 39},
			{ID: "family_estate", Name: "Family estate", Seats: 5, DailyRate: 59},
			{ID: "people_carrier", Name: "People carrier", Seats: 9, DailyRate: 89},
		},
	}
}
