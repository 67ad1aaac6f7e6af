package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoom_MatchesSearch(t *testing.T) {
	room := Room{ID: 101, Name: "101", Category: CategorySuite}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term", term: "", want: true},
		{name: "name substring", term: "10", want: true},
		{name: "category lower case", term: "suite", want: true},
		{name: "category mixed case", term: "sUI", want: true},
		{name: "no match", term: "double", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, room.MatchesSearch(tt.term))
		})
	}
}

func TestRoomFilter_Matches(t *testing.T) {
	available := Room{ID: 101, Name: "101", Category: CategorySingle, Price: 100, Available: true}
	occupied := Room{ID: 102, Name: "102", Category: CategoryDouble, Price: 150, Available: false}

	f := DefaultRoomFilter()
	f.MaxPrice = 120
	assert.True(t, f.Matches(&available))
	assert.False(t, f.Matches(&occupied))

	f = DefaultRoomFilter()
	f.AvailableOnly = true
	assert.True(t, f.Matches(&available))
	assert.False(t, f.Matches(&occupied))

	f = DefaultRoomFilter()
	f.Category = CategoryFilter(CategoryDouble)
	assert.False(t, f.Matches(&available))
	assert.True(t, f.Matches(&occupied))

	f.MaxPrice = 150
	assert.True(t, f.Matches(&occupied), "max price is inclusive")
}

func TestFilterEnums(t *testing.T) {
	assert.True(t, CategoryAll.IsValid())
	assert.True(t, CategoryFilter("Twin").IsValid())
	assert.False(t, CategoryFilter("Penthouse").IsValid())
	assert.False(t, CategoryFilter("single").IsValid())

	assert.True(t, SortAsc.IsValid())
	assert.False(t, SortOrder("random").IsValid())

	assert.True(t, SeverityError.IsValid())
	assert.False(t, Severity("WARN").IsValid())
}

func TestCloneRooms(t *testing.T) {
	src := SeedRooms()
	dst := CloneRooms(src)
	dst[0].Available = false

	assert.True(t, src[0].Available)
	assert.NotNil(t, CloneRooms(nil))
}

func TestBooking_Nights(t *testing.T) {
	b := Booking{
		CheckIn:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, b.Nights())
}
