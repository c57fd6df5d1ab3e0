package server

import (
	"holocron/internal/dto"
	"holocron/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddFavoritePlanet handles POST /favorite/planet/:planetId
// @Summary Add favorite planet
// @Description Adds a planet to the favorites of body.user_id, creating the favorites list on first use.
// @Tags favorites
// @Accept json
// @Produce json
// @Param planetId path int true "Planet ID"
// @Param request body dto.AddFavoriteRequest true "Owner"
// @Success 201 {object} object{message=string,favorite=dto.FavoritePlanetRecord}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /favorite/planet/{planetId} [post]
func (s *Server) AddFavoritePlanet(c *fiber.Ctx) error {
	planetID, err := s.parseID(c, "planetId")
	if err != nil {
		return nil
	}
	var req dto.AddFavoriteRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	link, err := s.favoritesService.AddFavoritePlanet(c.UserContext(), req.UserID, planetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Planet added to favorites",
		"favorite": dto.NewFavoritePlanetRecord(req.UserID, link),
	})
}

// RemoveFavoritePlanet handles DELETE /favorite/planet/:favId
// @Summary Remove favorite planet
// @Tags favorites
// @Produce json
// @Param favId path int true "Favorite planet link ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /favorite/planet/{favId} [delete]
func (s *Server) RemoveFavoritePlanet(c *fiber.Ctx) error {
	favID, err := s.parseID(c, "favId")
	if err != nil {
		return nil
	}

	link, err := s.favoritesService.RemoveFavoritePlanet(c.UserContext(), favID)
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.Logger.InfoContext(c.UserContext(), "favorite planet removed",
		"favorite_id", link.ID, "favorites_id", link.FavoritesID, "planet_id", link.PlanetID)
	return c.JSON(fiber.Map{"message": "Favorite planet deleted"})
}

// AddFavoriteCharacter handles POST /favorite/character/:characterId
// @Summary Add favorite character
// @Tags favorites
// @Accept json
// @Produce json
// @Param characterId path int true "Character ID"
// @Param request body dto.AddFavoriteRequest true "Owner"
// @Success 201 {object} object{message=string,favorite=dto.FavoriteCharacterRecord}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /favorite/character/{characterId} [post]
func (s *Server) AddFavoriteCharacter(c *fiber.Ctx) error {
	characterID, err := s.parseID(c, "characterId")
	if err != nil {
		return nil
	}
	var req dto.AddFavoriteRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	link, err := s.favoritesService.AddFavoriteCharacter(c.UserContext(), req.UserID, characterID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Character added to favorites",
		"favorite": dto.NewFavoriteCharacterRecord(req.UserID, link),
	})
}

// RemoveFavoriteCharacter handles DELETE /favorite/character/:favId
// @Summary Remove favorite character
// @Tags favorites
// @Produce json
// @Param favId path int true "Favorite character link ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /favorite/character/{favId} [delete]
func (s *Server) RemoveFavoriteCharacter(c *fiber.Ctx) error {
	favID, err := s.parseID(c, "favId")
	if err != nil {
		return nil
	}

	link, err := s.favoritesService.RemoveFavoriteCharacter(c.UserContext(), favID)
	if err != nil {
		return respondServiceError(c, err)
	}
	middleware.Logger.InfoContext(c.UserContext(), "favorite character removed",
		"favorite_id", link.ID, "favorites_id", link.FavoritesID, "character_id", link.CharacterID)
	return c.JSON(fiber.Map{"message": "Favorite character deleted"})
}

// GetAllFavorites handles GET /user/favorites
// @Summary List all favorites
// @Description Every user's favorites list. An empty store returns an empty list.
// @Tags favorites
// @Produce json
// @Success 200 {object} object{favorites=[]dto.FavoritesRecord}
// @Router /user/favorites [get]
func (s *Server) GetAllFavorites(c *fiber.Ctx) error {
	favorites, err := s.favoritesService.ListAllFavorites(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorites": dto.FavoritesRecords(favorites)})
}

// GetUserFavorites handles GET /user/:id/favorites
// @Summary Get a user's favorites
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.FavoritesRecord
// @Failure 404 {object} models.ErrorResponse
// @Router /user/{id}/favorites [get]
func (s *Server) GetUserFavorites(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	fav, err := s.favoritesService.GetUserFavorites(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewFavoritesRecord(fav))
}

// ClearUserFavorites handles DELETE /user/:id/favorites
// @Summary Clear a user's favorites
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /user/{id}/favorites [delete]
func (s *Server) ClearUserFavorites(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.favoritesService.ClearUserFavorites(c.UserContext(), userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Favorites cleared"})
}
