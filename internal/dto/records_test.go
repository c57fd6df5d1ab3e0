package dto

import (
	"encoding/json"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRecordOmitsPassword(t *testing.T) {
	u := &models.User{ID: 3, Email: "luke@x.com", Username: "luke", Password: "$2a$10$hash"}

	raw, err := json.Marshal(NewUserRecord(u))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got, 3)
	assert.Equal(t, "luke", got["username"])
	assert.Equal(t, "luke@x.com", got["email"])
	assert.NotContains(t, got, "password")
}

func TestNewFavoritesRecord(t *testing.T) {
	fav := &models.Favorites{
		ID:     1,
		UserID: 9,
		Planets: []models.FavoritesPlanet{
			{ID: 10, FavoritesID: 1, PlanetID: 5, Planet: &models.Planet{ID: 5, Name: "Tatooine", Climate: "arid", Terrain: "desert", Population: "200000"}},
			{ID: 11, FavoritesID: 1, PlanetID: 6},
		},
	}

	rec := NewFavoritesRecord(fav)
	assert.Equal(t, uint(9), rec.UserID)
	require.Len(t, rec.Planets, 2)
	require.NotNil(t, rec.Planets[0].Planet)
	assert.Equal(t, "Tatooine", rec.Planets[0].Planet.Name)
	assert.Nil(t, rec.Planets[1].Planet)
	assert.Equal(t, uint(9), rec.Planets[1].UserID)
	assert.NotNil(t, rec.Characters)
	assert.Empty(t, rec.Characters)
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"users":      UserRecords(nil),
		"planets":    PlanetRecords(nil),
		"characters": CharacterRecords(nil),
		"favorites":  FavoritesRecords(nil),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[],"planets":[],"characters":[],"favorites":[]}`, string(raw))
}

func TestNewFavoriteCharacterRecord(t *testing.T) {
	link := &models.FavoritesCharacter{
		ID:          4,
		FavoritesID: 2,
		CharacterID: 1,
		Character:   &models.Character{ID: 1, Name: "Luke Skywalker", Gender: "male", Height: "172", Mass: "77"},
	}

	rec := NewFavoriteCharacterRecord(8, link)
	assert.Equal(t, uint(1), rec.CharacterID)
	assert.Equal(t, uint(8), rec.UserID)
	require.NotNil(t, rec.Character)
	assert.Equal(t, "172", rec.Character.Height)
}
