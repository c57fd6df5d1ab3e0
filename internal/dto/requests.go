package dto

// CreateUserRequest is the body of POST /user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePlanetRequest is the body of POST /planet.
type CreatePlanetRequest struct {
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population string `json:"population"`
}

// CreateCharacterRequest is the body of POST /character.
type CreateCharacterRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Mass   string `json:"mass"`
}

// AddFavoriteRequest is the body of POST /favorite/{planet,character}/:id.
// A zero UserID means the field was absent.
type AddFavoriteRequest struct {
	UserID uint `json:"user_id"`
}
