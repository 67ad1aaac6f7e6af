package domain

import "time"

// Default configuration values
const (
	DefaultReadLatency     = 400 * time.Millisecond
	DefaultWriteLatency    = 600 * time.Millisecond
	DefaultNotificationTTL = 5000 * time.Millisecond
	DefaultMaxPrice        = 500.0
)

// Business validation constants
const (
	MinGuestNameLength = 2
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SeedRooms начальный набор номеров, которым заполняется хранилище при старте
func SeedRooms() []Room {
	return []Room{
		{ID: 101, Name: "101", Category: CategorySingle, Price: 100, Available: true},
		{ID: 102, Name: "102", Category: CategoryDouble, Price: 150, Available: true},
		{ID: 103, Name: "103", Category: CategorySuite, Price: 350, Available: true},
		{ID: 201, Name: "201", Category: CategorySingle, Price: 110, Available: false},
		{ID: 202, Name: "202", Category: CategoryDouble, Price: 160, Available: true},
		{ID: 203, Name: "203", Category: CategorySuite, Price: 400, Available: true},
		{ID: 301, Name: "301", Category: CategoryDouble, Price: 170, Available: true},
		{ID: 302, Name: "302", Category: CategorySuite, Price: 450, Available: true},
		{ID: 303, Name: "303", Category: CategorySingle, Price: 120, Available: true},
	}
}
