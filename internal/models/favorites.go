package models

import "time"

// Favorites is the per-user parent row for favorite links.
// A user owns at most one; the unique index on UserID enforces it.
type Favorites struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Planets    []FavoritesPlanet    `gorm:"foreignKey:FavoritesID;constraint:OnDelete:CASCADE" json:"planets"`
	Characters []FavoritesCharacter `gorm:"foreignKey:FavoritesID;constraint:OnDelete:CASCADE" json:"characters"`
}

// TableName specifies the table name
func (Favorites) TableName() string {
	return "favorites"
}

// FavoritesPlanet links a Favorites row to one Planet.
// The pair (FavoritesID, PlanetID) is unique.
type FavoritesPlanet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FavoritesID uint      `gorm:"not null;uniqueIndex:idx_favorites_planet" json:"favorites_id"`
	PlanetID    uint      `gorm:"not null;uniqueIndex:idx_favorites_planet" json:"planet_id"`
	CreatedAt   time.Time `json:"created_at"`

	Planet *Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"planet,omitempty"`
}

// TableName specifies the table name
func (FavoritesPlanet) TableName() string {
	return "favorites_planets"
}

// FavoritesCharacter links a Favorites row to one Character.
// The pair (FavoritesID, CharacterID) is unique.
type FavoritesCharacter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FavoritesID uint      `gorm:"not null;uniqueIndex:idx_favorites_character" json:"favorites_id"`
	CharacterID uint      `gorm:"not null;uniqueIndex:idx_favorites_character" json:"character_id"`
	CreatedAt   time.Time `json:"created_at"`

	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"character,omitempty"`
}

// TableName specifies the table name
func (FavoritesCharacter) TableName() string {
	return "favorites_characters"
}
