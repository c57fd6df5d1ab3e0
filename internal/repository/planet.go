package repository

import (
	"context"
	"errors"

	"holocron/internal/cache"
	"holocron/internal/models"
	"holocron/internal/observability"

	"gorm.io/gorm"
)

// PlanetRepository defines persistence operations for planets.
type PlanetRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	List(ctx context.Context) ([]models.Planet, error)
	Create(ctx context.Context, planet *models.Planet) error
}

type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository returns a new PlanetRepository implementation.
func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &planetRepository{db: db}
}

func (r *planetRepository) GetByID(ctx context.Context, id uint) (planet *models.Planet, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByID", "planets")
	defer func() { observability.EndSpan(span, err) }()

	var p models.Planet
	err = cache.Aside(ctx, cache.PlanetKey(id), &p, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Planet", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planetRepository) List(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&planets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return planets, nil
}

// Create inserts planet and drops any cached entry under its new id, which a
// reset store can hand out again while the old entry is still live.
func (r *planetRepository) Create(ctx context.Context, planet *models.Planet) error {
	if err := r.db.WithContext(ctx).Create(planet).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlanet(ctx, planet.ID)
	return nil
}
