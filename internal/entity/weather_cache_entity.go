package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeatherCacheEntry stores a serialized weather payload per location key.
// Racing writers may leave several rows for one location; readers always
// take the newest.
type WeatherCacheEntry struct {
	Id        uuid.UUID
	Location  string
	Data      []byte
	CreatedAt time.Time
}
