package service

import (
	"context"

	"holocron/internal/models"
	"holocron/internal/observability"
	"holocron/internal/repository"
)

// FavoritesService enforces one Favorites row per user and no duplicate
// links within it. All favorite mutations go through here.
type FavoritesService struct {
	favRepo       repository.FavoritesRepository
	userRepo      repository.UserRepository
	planetRepo    repository.PlanetRepository
	characterRepo repository.CharacterRepository
}

func NewFavoritesService(
	favRepo repository.FavoritesRepository,
	userRepo repository.UserRepository,
	planetRepo repository.PlanetRepository,
	characterRepo repository.CharacterRepository,
) *FavoritesService {
	return &FavoritesService{
		favRepo:       favRepo,
		userRepo:      userRepo,
		planetRepo:    planetRepo,
		characterRepo: characterRepo,
	}
}

// AddFavoritePlanet links planetID to the user's favorites. The user is
// checked before the planet so a bad user id always reports the user.
func (s *FavoritesService) AddFavoritePlanet(ctx context.Context, userID, planetID uint) (link *models.FavoritesPlanet, err error) {
	defer func() { recordFavorite(observability.KindPlanet, observability.ActionAdd, err) }()

	if userID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	planet, err := s.planetRepo.GetByID(ctx, planetID)
	if err != nil {
		return nil, err
	}

	link, err = s.favRepo.AddPlanet(ctx, userID, planetID)
	if err != nil {
		return nil, err
	}
	link.Planet = planet
	return link, nil
}

// AddFavoriteCharacter is the character counterpart of AddFavoritePlanet.
func (s *FavoritesService) AddFavoriteCharacter(ctx context.Context, userID, characterID uint) (link *models.FavoritesCharacter, err error) {
	defer func() { recordFavorite(observability.KindCharacter, observability.ActionAdd, err) }()

	if userID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, err
	}

	link, err = s.favRepo.AddCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	link.Character = character
	return link, nil
}

// RemoveFavoritePlanet deletes the link row favID and returns it as it was
// before deletion.
func (s *FavoritesService) RemoveFavoritePlanet(ctx context.Context, favID uint) (link *models.FavoritesPlanet, err error) {
	defer func() { recordFavorite(observability.KindPlanet, observability.ActionRemove, err) }()

	link, err = s.favRepo.GetPlanetFavorite(ctx, favID)
	if err != nil {
		return nil, err
	}
	if err = s.favRepo.RemovePlanet(ctx, link.ID); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *FavoritesService) RemoveFavoriteCharacter(ctx context.Context, favID uint) (link *models.FavoritesCharacter, err error) {
	defer func() { recordFavorite(observability.KindCharacter, observability.ActionRemove, err) }()

	link, err = s.favRepo.GetCharacterFavorite(ctx, favID)
	if err != nil {
		return nil, err
	}
	if err = s.favRepo.RemoveCharacter(ctx, link.ID); err != nil {
		return nil, err
	}
	return link, nil
}

// ListAllFavorites returns every Favorites row. An empty store yields an
// empty slice, not an error.
func (s *FavoritesService) ListAllFavorites(ctx context.Context) ([]models.Favorites, error) {
	favorites, err := s.favRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorites{}
	}
	return favorites, nil
}

// GetUserFavorites returns the user's favorites. A user who never added one
// gets an unsaved, empty Favorites value.
func (s *FavoritesService) GetUserFavorites(ctx context.Context, userID uint) (*models.Favorites, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	fav, err := s.favRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if fav == nil {
		return &models.Favorites{UserID: userID}, nil
	}
	return fav, nil
}

// ClearUserFavorites deletes the user's Favorites row and all its links.
func (s *FavoritesService) ClearUserFavorites(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	fav, err := s.favRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if fav == nil {
		return models.NewNotFoundError("Favorites for user", userID)
	}
	return s.favRepo.Delete(ctx, fav.ID)
}

func recordFavorite(kind, action string, err error) {
	observability.RecordFavorite(kind, action, outcomeFor(err))
}

func outcomeFor(err error) string {
	if err == nil {
		return observability.OutcomeSuccess
	}
	switch models.ErrorCode(err) {
	case models.CodeNotFound:
		return observability.OutcomeNotFound
	case models.CodeConflict:
		return observability.OutcomeConflict
	case models.CodeValidation:
		return observability.OutcomeInvalid
	default:
		return observability.OutcomeError
	}
}
