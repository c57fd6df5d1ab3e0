package service

import (
	"context"
	"maps"
	"slices"
	"strings"

	"holocron/internal/models"
	"holocron/internal/repository"
	"holocron/internal/validation"
)

// CatalogService serves the planet and character catalog.
type CatalogService struct {
	planetRepo    repository.PlanetRepository
	characterRepo repository.CharacterRepository
}

type CreatePlanetInput struct {
	Name       string
	Climate    string
	Terrain    string
	Population string
}

type CreateCharacterInput struct {
	Name   string
	Gender string
	Height string
	Mass   string
}

func NewCatalogService(planetRepo repository.PlanetRepository, characterRepo repository.CharacterRepository) *CatalogService {
	return &CatalogService{planetRepo: planetRepo, characterRepo: characterRepo}
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.planetRepo.List(ctx)
}

func (s *CatalogService) GetPlanet(ctx context.Context, id uint) (*models.Planet, error) {
	return s.planetRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreatePlanet(ctx context.Context, in CreatePlanetInput) (*models.Planet, error) {
	planet := &models.Planet{
		Name:       strings.TrimSpace(in.Name),
		Climate:    strings.TrimSpace(in.Climate),
		Terrain:    strings.TrimSpace(in.Terrain),
		Population: strings.TrimSpace(in.Population),
	}
	if err := validateCatalogEntry(planet.Name, map[string]string{
		"climate":    planet.Climate,
		"terrain":    planet.Terrain,
		"population": planet.Population,
	}); err != nil {
		return nil, err
	}
	if err := s.planetRepo.Create(ctx, planet); err != nil {
		return nil, err
	}
	return planet, nil
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return s.characterRepo.List(ctx)
}

func (s *CatalogService) GetCharacter(ctx context.Context, id uint) (*models.Character, error) {
	return s.characterRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreateCharacter(ctx context.Context, in CreateCharacterInput) (*models.Character, error) {
	character := &models.Character{
		Name:   strings.TrimSpace(in.Name),
		Gender: strings.TrimSpace(in.Gender),
		Height: strings.TrimSpace(in.Height),
		Mass:   strings.TrimSpace(in.Mass),
	}
	if err := validateCatalogEntry(character.Name, map[string]string{
		"gender": character.Gender,
		"height": character.Height,
		"mass":   character.Mass,
	}); err != nil {
		return nil, err
	}
	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// validateCatalogEntry requires a name and every descriptive field. Values
// such as "unknown" are accepted as-is.
func validateCatalogEntry(name string, fields map[string]string) error {
	if err := validation.ValidateCatalogName(name); err != nil {
		return models.NewValidationError(err.Error())
	}
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		value := fields[field]
		if value == "" {
			return models.NewValidationError(field + " is required")
		}
		if err := validation.ValidateCatalogField(field, value); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return nil
}
