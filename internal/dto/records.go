// Package dto holds the request payloads and the flat response records the
// API serializes. Conversions are free functions so they can be tested
// without a database.
package dto

import "holocron/internal/models"

// UserRecord is the public view of a user. It never carries the password.
type UserRecord struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type PlanetRecord struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population string `json:"population"`
}

type CharacterRecord struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Mass   string `json:"mass"`
}

// FavoritePlanetRecord is one favorite planet link.
type FavoritePlanetRecord struct {
	ID          uint          `json:"id"`
	FavoritesID uint          `json:"favorites_id"`
	UserID      uint          `json:"user_id"`
	PlanetID    uint          `json:"planet_id"`
	Planet      *PlanetRecord `json:"planet,omitempty"`
}

// FavoriteCharacterRecord is one favorite character link.
type FavoriteCharacterRecord struct {
	ID          uint             `json:"id"`
	FavoritesID uint             `json:"favorites_id"`
	UserID      uint             `json:"user_id"`
	CharacterID uint             `json:"character_id"`
	Character   *CharacterRecord `json:"character,omitempty"`
}

// FavoritesRecord is a user's Favorites row with its links.
type FavoritesRecord struct {
	ID         uint                      `json:"id"`
	UserID     uint                      `json:"user_id"`
	Planets    []FavoritePlanetRecord    `json:"planets"`
	Characters []FavoriteCharacterRecord `json:"characters"`
}

func NewUserRecord(u *models.User) UserRecord {
	return UserRecord{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

func NewPlanetRecord(p *models.Planet) PlanetRecord {
	return PlanetRecord{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Population: p.Population,
	}
}

func NewCharacterRecord(c *models.Character) CharacterRecord {
	return CharacterRecord{
		ID:     c.ID,
		Name:   c.Name,
		Gender: c.Gender,
		Height: c.Height,
		Mass:   c.Mass,
	}
}

// NewFavoritePlanetRecord converts a link row owned by userID. The nested
// planet is included only when it was preloaded.
func NewFavoritePlanetRecord(userID uint, f *models.FavoritesPlanet) FavoritePlanetRecord {
	rec := FavoritePlanetRecord{
		ID:          f.ID,
		FavoritesID: f.FavoritesID,
		UserID:      userID,
		PlanetID:    f.PlanetID,
	}
	if f.Planet != nil {
		p := NewPlanetRecord(f.Planet)
		rec.Planet = &p
	}
	return rec
}

// NewFavoriteCharacterRecord converts a link row owned by userID. The nested
// character is included only when it was preloaded.
func NewFavoriteCharacterRecord(userID uint, f *models.FavoritesCharacter) FavoriteCharacterRecord {
	rec := FavoriteCharacterRecord{
		ID:          f.ID,
		FavoritesID: f.FavoritesID,
		UserID:      userID,
		CharacterID: f.CharacterID,
	}
	if f.Character != nil {
		c := NewCharacterRecord(f.Character)
		rec.Character = &c
	}
	return rec
}

func NewFavoritesRecord(f *models.Favorites) FavoritesRecord {
	rec := FavoritesRecord{
		ID:         f.ID,
		UserID:     f.UserID,
		Planets:    make([]FavoritePlanetRecord, 0, len(f.Planets)),
		Characters: make([]FavoriteCharacterRecord, 0, len(f.Characters)),
	}
	for i := range f.Planets {
		rec.Planets = append(rec.Planets, NewFavoritePlanetRecord(f.UserID, &f.Planets[i]))
	}
	for i := range f.Characters {
		rec.Characters = append(rec.Characters, NewFavoriteCharacterRecord(f.UserID, &f.Characters[i]))
	}
	return rec
}

// UserRecords converts a slice, always returning a non-nil slice so empty
// lists serialize as [].
func UserRecords(users []models.User) []UserRecord {
	out := make([]UserRecord, 0, len(users))
	for i := range users {
		out = append(out, NewUserRecord(&users[i]))
	}
	return out
}

func PlanetRecords(planets []models.Planet) []PlanetRecord {
	out := make([]PlanetRecord, 0, len(planets))
	for i := range planets {
		out = append(out, NewPlanetRecord(&planets[i]))
	}
	return out
}

func CharacterRecords(characters []models.Character) []CharacterRecord {
	out := make([]CharacterRecord, 0, len(characters))
	for i := range characters {
		out = append(out, NewCharacterRecord(&characters[i]))
	}
	return out
}

func FavoritesRecords(favorites []models.Favorites) []FavoritesRecord {
	out := make([]FavoritesRecord, 0, len(favorites))
	for i := range favorites {
		out = append(out, NewFavoritesRecord(&favorites[i]))
	}
	return out
}
