package repository

import (
	"context"
	"errors"

	"holocron/internal/cache"
	"holocron/internal/models"
	"holocron/internal/observability"

	"gorm.io/gorm"
)

// CharacterRepository defines persistence operations for characters.
type CharacterRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
	Create(ctx context.Context, character *models.Character) error
}

type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository returns a new CharacterRepository implementation.
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) GetByID(ctx context.Context, id uint) (character *models.Character, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByID", "characters")
	defer func() { observability.EndSpan(span, err) }()

	var c models.Character
	err = cache.Aside(ctx, cache.CharacterKey(id), &c, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Character", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *characterRepository) List(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return characters, nil
}

// Create inserts character and drops any cached entry under its new id, which a
// reset store can hand out again while the old entry is still live.
func (r *characterRepository) Create(ctx context.Context, character *models.Character) error {
	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCharacter(ctx, character.ID)
	return nil
}
