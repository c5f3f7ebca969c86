package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codigofacilito/blog-backend/internal/api/http/httpctx"
	"github.com/codigofacilito/blog-backend/internal/apierrors"
	"github.com/codigofacilito/blog-backend/internal/model"
	"github.com/codigofacilito/blog-backend/internal/service"
	"github.com/codigofacilito/blog-backend/internal/testutil"
)

func newUserRouter(t *testing.T, svc UserService, caller *model.User) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	contextManager := httpctx.NewManager()
	h := NewUser(svc, contextManager, testutil.MakeNoopLogger())

	engine := gin.New()
	if caller != nil {
		engine.Use(func(c *gin.Context) {
			contextManager.SetUser(c, *caller)
			c.Next()
		})
	}

	engine.POST("/users", h.Register)
	engine.POST("/users/login", h.Login)
	engine.GET("/users", h.List)
	engine.GET("/users/:id", h.Get)
	engine.PUT("/users/:id", h.Update)
	engine.DELETE("/users/:id", h.Delete)

	return engine
}

func performJSON(engine *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestUser_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockUserService)
		user := model.User{ID: uuid.New(), Username: "writer_01", Email: "writer@example.com", Roles: []string{model.RoleUser}}
		svc.On("Register", mock.Anything, model.CreateUserParams{
			Username: "writer_01",
			Email:    "writer@example.com",
			Password: "secret-pass",
		}).Return(user, nil)

		engine := newUserRouter(t, svc, nil)
		rec := performJSON(engine, http.MethodPost, "/users", gin.H{
			"username": "writer_01",
			"email":    "writer@example.com",
			"password": "secret-pass",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var got model.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, user.ID, got.ID)
		assert.NotContains(t, rec.Body.String(), "password_hash")
		svc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockUserService)
		engine := newUserRouter(t, svc, nil)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(mockUserService)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(model.User{}, apierrors.NewErrEmailIsTaken("taken@example.com"))

		engine := newUserRouter(t, svc, nil)
		rec := performJSON(engine, http.MethodPost, "/users", gin.H{
			"username": "writer_01",
			"email":    "taken@example.com",
			"password": "secret-pass",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUser_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		svc := new(mockUserService)
		svc.On("Get", mock.Anything, id).
			Return(model.User{ID: id, Username: "reader_1"}, nil)

		engine := newUserRouter(t, svc, nil)
		rec := performJSON(engine, http.MethodGet, "/users/"+id.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "reader_1")
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(mockUserService)
		engine := newUserRouter(t, svc, nil)

		rec := performJSON(engine, http.MethodGet, "/users/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		svc := new(mockUserService)
		svc.On("Get", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

		engine := newUserRouter(t, svc, nil)
		rec := performJSON(engine, http.MethodGet, "/users/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUser_List(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		caller := model.User{ID: uuid.New(), Roles: []string{model.RoleAdmin}}
		svc := new(mockUserService)
		svc.On("List", mock.Anything, caller).
			Return([]model.User{{Username: "first_usr"}, {Username: "other_usr"}}, nil)

		engine := newUserRouter(t, svc, &caller)
		rec := performJSON(engine, http.MethodGet, "/users", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "first_usr")
	})

	t.Run("no caller in context", func(t *testing.T) {
		svc := new(mockUserService)
		engine := newUserRouter(t, svc, nil)

		rec := performJSON(engine, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("forbidden", func(t *testing.T) {
		caller := model.User{ID: uuid.New(), Roles: []string{model.RoleUser}}
		svc := new(mockUserService)
		svc.On("List", mock.Anything, caller).
			Return(nil, apierrors.NewErrForbidden())

		engine := newUserRouter(t, svc, &caller)
		rec := performJSON(engine, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUser_Update(t *testing.T) {
	t.Run("owner updates username", func(t *testing.T) {
		id := uuid.New()
		caller := model.User{ID: id, Roles: []string{model.RoleUser}}
		newName := "fresh_name"

		svc := new(mockUserService)
		svc.On("Update", mock.Anything, caller, id, model.UpdateUserParams{Username: &newName}).
			Return(model.User{ID: id, Username: newName}, nil)

		engine := newUserRouter(t, svc, &caller)
		rec := performJSON(engine, http.MethodPut, "/users/"+id.String(), gin.H{"username": newName})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), newName)
	})

	t.Run("forbidden", func(t *testing.T) {
		caller := model.User{ID: uuid.New(), Roles: []string{model.RoleUser}}
		target := uuid.New()

		svc := new(mockUserService)
		svc.On("Update", mock.Anything, caller, target, mock.Anything).
			Return(model.User{}, apierrors.NewErrForbidden())

		engine := newUserRouter(t, svc, &caller)
		rec := performJSON(engine, http.MethodPut, "/users/"+target.String(), gin.H{"username": "whoever_it"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUser_Delete(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		caller := model.User{ID: uuid.New(), Roles: []string{model.RoleAdmin}}
		target := uuid.New()

		svc := new(mockUserService)
		svc.On("Delete", mock.Anything, caller, target).Return(nil)

		engine := newUserRouter(t, svc, &caller)
		rec := performJSON(engine, http.MethodDelete, "/users/"+target.String(), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		caller := model.User{ID: uuid.New(), Roles: []string{model.RoleAdmin}}
		target := uuid.New()

		svc := new(mockUserService)
		svc.On("Delete", mock.Anything, caller, target).Return(apierrors.NewErrNotFound("user"))

		engine := newUserRouter(t, svc, &caller)
		rec := performJSON(engine, http.MethodDelete, "/users/"+target.String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUser_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		user := model.User{ID: uuid.New(), Username: "writer_01", Email: "writer@example.com"}
		svc := new(mockUserService)
		svc.On("Login", mock.Anything, "writer@example.com", "secret-pass").
			Return(service.LoginResult{User: user, AccessToken: "signed.token.value"}, nil)

		engine := newUserRouter(t, svc, nil)
		rec := performJSON(engine, http.MethodPost, "/users/login", gin.H{
			"email":    "writer@example.com",
			"password": "secret-pass",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "access_token")
		assert.Contains(t, rec.Body.String(), "signed.token.value")
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(mockUserService)
		svc.On("Login", mock.Anything, "writer@example.com", "wrong-pass").
			Return(service.LoginResult{}, apierrors.NewErrUnauthenticated("invalid email or password"))

		engine := newUserRouter(t, svc, nil)
		rec := performJSON(engine, http.MethodPost, "/users/login", gin.H{
			"email":    "writer@example.com",
			"password": "wrong-pass",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})
}
