package service

import (
	"context"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreatePlanet(t *testing.T) {
	t.Parallel()

	planets := noopPlanetRepo()
	var saved *models.Planet
	planets.createFn = func(_ context.Context, p *models.Planet) error {
		p.ID = 1
		saved = p
		return nil
	}
	svc := NewCatalogService(planets, noopCharacterRepo())

	p, err := svc.CreatePlanet(context.Background(), CreatePlanetInput{
		Name: " Tatooine ", Climate: "arid", Terrain: "desert", Population: "200000",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "Tatooine", saved.Name)

	_, err = svc.CreatePlanet(context.Background(), CreatePlanetInput{Climate: "arid", Terrain: "desert", Population: "1"})
	assertCode(t, models.CodeValidation, err)

	_, err = svc.CreatePlanet(context.Background(), CreatePlanetInput{Name: "Hoth", Climate: "frozen", Terrain: "tundra"})
	assertCode(t, models.CodeValidation, err)
	assert.Contains(t, err.Error(), "population")
}

func TestCatalogService_CreateCharacter(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(noopPlanetRepo(), noopCharacterRepo())

	c, err := svc.CreateCharacter(context.Background(), CreateCharacterInput{Name: "Yoda", Gender: "male", Height: "66", Mass: "17"})
	require.NoError(t, err)
	assert.Equal(t, "Yoda", c.Name)

	_, err = svc.CreateCharacter(context.Background(), CreateCharacterInput{Name: "Yoda", Gender: "male", Height: "66"})
	assertCode(t, models.CodeValidation, err)
}

func TestCatalogService_Reads(t *testing.T) {
	t.Parallel()

	planets := noopPlanetRepo()
	planets.getByIDFn = func(_ context.Context, id uint) (*models.Planet, error) {
		return nil, models.NewNotFoundError("Planet", id)
	}
	characters := noopCharacterRepo()
	characters.listFn = func(context.Context) ([]models.Character, error) {
		return []models.Character{{ID: 1, Name: "Luke Skywalker"}}, nil
	}
	svc := NewCatalogService(planets, characters)

	_, err := svc.GetPlanet(context.Background(), 3)
	assertCode(t, models.CodeNotFound, err)

	list, err := svc.ListCharacters(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	c, err := svc.GetCharacter(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), c.ID)

	ps, err := svc.ListPlanets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ps)
}
