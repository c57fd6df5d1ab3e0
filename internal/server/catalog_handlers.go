package server

import (
	"holocron/internal/dto"
	"holocron/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPlanets handles GET /planet
// @Summary List planets
// @Tags catalog
// @Produce json
// @Success 200 {object} object{planets=[]dto.PlanetRecord}
// @Router /planet [get]
func (s *Server) GetPlanets(c *fiber.Ctx) error {
	planets, err := s.catalogService.ListPlanets(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"planets": dto.PlanetRecords(planets)})
}

// GetPlanet handles GET /planet/:id
// @Summary Get planet
// @Tags catalog
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} dto.PlanetRecord
// @Failure 404 {object} models.ErrorResponse
// @Router /planet/{id} [get]
func (s *Server) GetPlanet(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	planet, err := s.catalogService.GetPlanet(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewPlanetRecord(planet))
}

// CreatePlanet handles POST /planet
// @Summary Create planet
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanetRequest true "New planet"
// @Success 201 {object} dto.PlanetRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /planet [post]
func (s *Server) CreatePlanet(c *fiber.Ctx) error {
	var req dto.CreatePlanetRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	planet, err := s.catalogService.CreatePlanet(c.UserContext(), service.CreatePlanetInput{
		Name:       req.Name,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPlanetRecord(planet))
}

// GetCharacters handles GET /character
// @Summary List characters
// @Tags catalog
// @Produce json
// @Success 200 {object} object{characters=[]dto.CharacterRecord}
// @Router /character [get]
func (s *Server) GetCharacters(c *fiber.Ctx) error {
	characters, err := s.catalogService.ListCharacters(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"characters": dto.CharacterRecords(characters)})
}

// GetCharacter handles GET /character/:id
// @Summary Get character
// @Tags catalog
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} dto.CharacterRecord
// @Failure 404 {object} models.ErrorResponse
// @Router /character/{id} [get]
func (s *Server) GetCharacter(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	character, err := s.catalogService.GetCharacter(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(dto.NewCharacterRecord(character))
}

// CreateCharacter handles POST /character
// @Summary Create character
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCharacterRequest true "New character"
// @Success 201 {object} dto.CharacterRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /character [post]
func (s *Server) CreateCharacter(c *fiber.Ctx) error {
	var req dto.CreateCharacterRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	character, err := s.catalogService.CreateCharacter(c.UserContext(), service.CreateCharacterInput{
		Name:   req.Name,
		Gender: req.Gender,
		Height: req.Height,
		Mass:   req.Mass,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCharacterRecord(character))
}
