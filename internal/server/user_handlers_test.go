package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holocron/internal/models"
	"holocron/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestGetUser(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := &Server{userService: service.NewUserService(mockRepo)}

	app.Get("/user/:id", s.GetUser)

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Username: "luke", Email: "luke@x.com", Password: "hash"}, nil)
	mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User", 99))

	tests := []struct {
		name           string
		userIDParam    string
		expectedStatus int
	}{
		{name: "Success", userIDParam: "1", expectedStatus: http.StatusOK},
		{name: "Invalid ID", userIDParam: "abc", expectedStatus: http.StatusBadRequest},
		{name: "Not Found", userIDParam: "99", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/"+tt.userIDParam, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "luke", body["username"])
				assert.NotContains(t, body, "password")
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("Conflict", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := &Server{userService: service.NewUserService(mockRepo)}
		app.Post("/user", s.CreateUser)

		mockRepo.On("GetByEmail", mock.Anything, "luke@x.com").Return(&models.User{ID: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"username":"luke","email":"luke@x.com","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeConflict, body.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockUserRepository)
		s := &Server{userService: service.NewUserService(mockRepo).WithBcryptCost(bcrypt.MinCost)}
		app.Post("/user", s.CreateUser)

		mockRepo.On("GetByEmail", mock.Anything, "leia@x.com").Return(nil, nil)
		mockRepo.On("GetByUsername", mock.Anything, "leia").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.User).ID = 2 }).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"username":"leia","email":"Leia@X.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Malformed body", func(t *testing.T) {
		app := fiber.New()
		s := &Server{userService: service.NewUserService(new(MockUserRepository))}
		app.Post("/user", s.CreateUser)

		req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"username":`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
