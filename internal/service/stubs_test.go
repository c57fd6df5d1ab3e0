package service

import (
	"context"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context) ([]models.User, error) { return nil, nil },
	}
}

type planetRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Planet, error)
	listFn    func(context.Context) ([]models.Planet, error)
	createFn  func(context.Context, *models.Planet) error
}

func (s *planetRepoStub) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *planetRepoStub) List(ctx context.Context) ([]models.Planet, error) { return s.listFn(ctx) }
func (s *planetRepoStub) Create(ctx context.Context, p *models.Planet) error {
	return s.createFn(ctx, p)
}

func noopPlanetRepo() *planetRepoStub {
	return &planetRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Planet, error) { return &models.Planet{ID: id}, nil },
		listFn:    func(context.Context) ([]models.Planet, error) { return nil, nil },
		createFn:  func(context.Context, *models.Planet) error { return nil },
	}
}

type characterRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Character, error)
	listFn    func(context.Context) ([]models.Character, error)
	createFn  func(context.Context, *models.Character) error
}

func (s *characterRepoStub) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	return s.getByIDFn(ctx, id)
}
func (s *characterRepoStub) List(ctx context.Context) ([]models.Character, error) {
	return s.listFn(ctx)
}
func (s *characterRepoStub) Create(ctx context.Context, c *models.Character) error {
	return s.createFn(ctx, c)
}

func noopCharacterRepo() *characterRepoStub {
	return &characterRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Character, error) { return &models.Character{ID: id}, nil },
		listFn:    func(context.Context) ([]models.Character, error) { return nil, nil },
		createFn:  func(context.Context, *models.Character) error { return nil },
	}
}

type favRepoStub struct {
	getByUserIDFn          func(context.Context, uint) (*models.Favorites, error)
	listFn                 func(context.Context) ([]models.Favorites, error)
	addPlanetFn            func(context.Context, uint, uint) (*models.FavoritesPlanet, error)
	addCharacterFn         func(context.Context, uint, uint) (*models.FavoritesCharacter, error)
	getPlanetFavoriteFn    func(context.Context, uint) (*models.FavoritesPlanet, error)
	getCharacterFavoriteFn func(context.Context, uint) (*models.FavoritesCharacter, error)
	removePlanetFn         func(context.Context, uint) error
	removeCharacterFn      func(context.Context, uint) error
	deleteFn               func(context.Context, uint) error
}

func (s *favRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Favorites, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *favRepoStub) List(ctx context.Context) ([]models.Favorites, error) { return s.listFn(ctx) }
func (s *favRepoStub) AddPlanet(ctx context.Context, userID, planetID uint) (*models.FavoritesPlanet, error) {
	return s.addPlanetFn(ctx, userID, planetID)
}
func (s *favRepoStub) AddCharacter(ctx context.Context, userID, characterID uint) (*models.FavoritesCharacter, error) {
	return s.addCharacterFn(ctx, userID, characterID)
}
func (s *favRepoStub) GetPlanetFavorite(ctx context.Context, id uint) (*models.FavoritesPlanet, error) {
	return s.getPlanetFavoriteFn(ctx, id)
}
func (s *favRepoStub) GetCharacterFavorite(ctx context.Context, id uint) (*models.FavoritesCharacter, error) {
	return s.getCharacterFavoriteFn(ctx, id)
}
func (s *favRepoStub) RemovePlanet(ctx context.Context, id uint) error { return s.removePlanetFn(ctx, id) }
func (s *favRepoStub) RemoveCharacter(ctx context.Context, id uint) error {
	return s.removeCharacterFn(ctx, id)
}
func (s *favRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopFavRepo() *favRepoStub {
	return &favRepoStub{
		getByUserIDFn: func(context.Context, uint) (*models.Favorites, error) { return nil, nil },
		listFn:        func(context.Context) ([]models.Favorites, error) { return nil, nil },
		addPlanetFn: func(_ context.Context, _, planetID uint) (*models.FavoritesPlanet, error) {
			return &models.FavoritesPlanet{ID: 10, FavoritesID: 1, PlanetID: planetID}, nil
		},
		addCharacterFn: func(_ context.Context, _, characterID uint) (*models.FavoritesCharacter, error) {
			return &models.FavoritesCharacter{ID: 20, FavoritesID: 1, CharacterID: characterID}, nil
		},
		getPlanetFavoriteFn:    func(_ context.Context, id uint) (*models.FavoritesPlanet, error) { return &models.FavoritesPlanet{ID: id}, nil },
		getCharacterFavoriteFn: func(_ context.Context, id uint) (*models.FavoritesCharacter, error) { return &models.FavoritesCharacter{ID: id}, nil },
		removePlanetFn:         func(context.Context, uint) error { return nil },
		removeCharacterFn:      func(context.Context, uint) error { return nil },
		deleteFn:               func(context.Context, uint) error { return nil },
	}
}

func assertCode(t *testing.T, code string, err error) {
	t.Helper()
	assert.Error(t, err)
	assert.Equal(t, code, models.ErrorCode(err), "unexpected error: %v", err)
}
