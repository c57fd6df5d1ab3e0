package repository

import (
	"context"
	"errors"

	"holocron/internal/models"
	"holocron/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoritesRepository owns every mutation of Favorites and its link rows.
type FavoritesRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Favorites, error)
	List(ctx context.Context) ([]models.Favorites, error)
	AddPlanet(ctx context.Context, userID, planetID uint) (*models.FavoritesPlanet, error)
	AddCharacter(ctx context.Context, userID, characterID uint) (*models.FavoritesCharacter, error)
	GetPlanetFavorite(ctx context.Context, id uint) (*models.FavoritesPlanet, error)
	GetCharacterFavorite(ctx context.Context, id uint) (*models.FavoritesCharacter, error)
	RemovePlanet(ctx context.Context, id uint) error
	RemoveCharacter(ctx context.Context, id uint) error
	Delete(ctx context.Context, favoritesID uint) error
}

type favoritesRepository struct {
	db *gorm.DB
}

// NewFavoritesRepository returns a new FavoritesRepository implementation.
func NewFavoritesRepository(db *gorm.DB) FavoritesRepository {
	return &favoritesRepository{db: db}
}

// preloadLinks loads the link rows together with the catalog entries they point at.
func preloadLinks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Planets", func(db *gorm.DB) *gorm.DB { return db.Order("favorites_planets.id ASC") }).
		Preload("Planets.Planet").
		Preload("Characters", func(db *gorm.DB) *gorm.DB { return db.Order("favorites_characters.id ASC") }).
		Preload("Characters.Character")
}

// getOrCreate returns the user's Favorites row, inserting it first when
// absent. The unique index on user_id turns a concurrent insert into a no-op,
// so both callers read back the same row.
func getOrCreate(tx *gorm.DB, userID uint) (*models.Favorites, error) {
	fav := models.Favorites{UserID: userID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fav).Error; err != nil {
		return nil, err
	}

	var existing models.Favorites
	if err := tx.Where("user_id = ?", userID).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByUserID returns nil, nil when the user has never added a favorite.
func (r *favoritesRepository) GetByUserID(ctx context.Context, userID uint) (*models.Favorites, error) {
	var fav models.Favorites
	if err := preloadLinks(r.db.WithContext(ctx)).Where("user_id = ?", userID).First(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &fav, nil
}

func (r *favoritesRepository) List(ctx context.Context) ([]models.Favorites, error) {
	var favorites []models.Favorites
	if err := preloadLinks(r.db.WithContext(ctx)).Order("id ASC").Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

// AddPlanet links planetID to the user's Favorites row, creating the row on
// first use. The lookup, duplicate check and insert share one transaction.
func (r *favoritesRepository) AddPlanet(ctx context.Context, userID, planetID uint) (link *models.FavoritesPlanet, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "AddPlanet", "favorites_planets")
	defer func() { observability.EndSpan(span, err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fav, err := getOrCreate(tx, userID)
		if err != nil {
			return models.NewInternalError(err)
		}

		var count int64
		if err := tx.Model(&models.FavoritesPlanet{}).
			Where("favorites_id = ? AND planet_id = ?", fav.ID, planetID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count > 0 {
			return models.NewConflictError("Planet already in favorites")
		}

		link = &models.FavoritesPlanet{FavoritesID: fav.ID, PlanetID: planetID}
		if err := tx.Create(link).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Planet already in favorites")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	return link, nil
}

// AddCharacter is the character counterpart of AddPlanet.
func (r *favoritesRepository) AddCharacter(ctx context.Context, userID, characterID uint) (link *models.FavoritesCharacter, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "AddCharacter", "favorites_characters")
	defer func() { observability.EndSpan(span, err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fav, err := getOrCreate(tx, userID)
		if err != nil {
			return models.NewInternalError(err)
		}

		var count int64
		if err := tx.Model(&models.FavoritesCharacter{}).
			Where("favorites_id = ? AND character_id = ?", fav.ID, characterID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count > 0 {
			return models.NewConflictError("Character already in favorites")
		}

		link = &models.FavoritesCharacter{FavoritesID: fav.ID, CharacterID: characterID}
		if err := tx.Create(link).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Character already in favorites")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	return link, nil
}

func (r *favoritesRepository) GetPlanetFavorite(ctx context.Context, id uint) (*models.FavoritesPlanet, error) {
	var link models.FavoritesPlanet
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Favorite planet", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

func (r *favoritesRepository) GetCharacterFavorite(ctx context.Context, id uint) (*models.FavoritesCharacter, error) {
	var link models.FavoritesCharacter
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Favorite character", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

func (r *favoritesRepository) RemovePlanet(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.FavoritesPlanet{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Favorite planet", id)
	}
	return nil
}

func (r *favoritesRepository) RemoveCharacter(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.FavoritesCharacter{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Favorite character", id)
	}
	return nil
}

// Delete removes a Favorites row together with its links. The links are
// deleted explicitly as well so stores without enforced foreign keys stay clean.
func (r *favoritesRepository) Delete(ctx context.Context, favoritesID uint) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("favorites_id = ?", favoritesID).Delete(&models.FavoritesPlanet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("favorites_id = ?", favoritesID).Delete(&models.FavoritesCharacter{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Favorites{}, favoritesID)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	if affected == 0 {
		return models.NewNotFoundError("Favorites", favoritesID)
	}
	return nil
}

// asAppError passes AppErrors through and wraps anything else as internal.
func asAppError(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return models.NewInternalError(err)
}
