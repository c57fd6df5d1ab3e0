package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", NewNotFoundError("Planet", 7), CodeNotFound},
		{"validation", NewValidationError("user_id is required"), CodeValidation},
		{"conflict", NewConflictError("Already in favorites"), CodeConflict},
		{"internal", NewInternalError(errors.New("boom")), CodeInternal},
		{"wrapped", fmt.Errorf("add favorite: %w", NewConflictError("dup")), CodeConflict},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFoundError("Character", 42)
	assert.Equal(t, "Character with ID 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestInternalErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRespondWithError(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusConflict, NewConflictError("Already in favorites"))
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError, NewInternalError(errors.New("dsn leaked")))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Already in favorites", body.Error)
	assert.Equal(t, CodeConflict, body.Code)

	resp2, err := app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	raw, _ = io.ReadAll(resp2.Body)
	assert.NotContains(t, string(raw), "dsn leaked")
}
