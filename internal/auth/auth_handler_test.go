package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sohan418/leave-management-backend/internal/auth"
	autherrors "github.com/sohan418/leave-management-backend/internal/auth/errors"
	"github.com/sohan418/leave-management-backend/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginFn          func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	registerFn       func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	registerAdminFn  func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	changePasswordFn func(ctx context.Context, actor authz.Actor, req auth.ChangePasswordRequest) error
	getMeFn          func(ctx context.Context, actor authz.Actor) (auth.UserResponse, error)
	resolveActorFn   func(ctx context.Context, email string) (authz.Actor, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return f.loginFn(ctx, req)
}
func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeAuthService) RegisterAdmin(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	return f.registerAdminFn(ctx, req)
}
func (f *fakeAuthService) ChangePassword(ctx context.Context, actor authz.Actor, req auth.ChangePasswordRequest) error {
	return f.changePasswordFn(ctx, actor, req)
}
func (f *fakeAuthService) GetMe(ctx context.Context, actor authz.Actor) (auth.UserResponse, error) {
	return f.getMeFn(ctx, actor)
}
func (f *fakeAuthService) ResolveActor(ctx context.Context, email string) (authz.Actor, error) {
	return f.resolveActorFn(ctx, email)
}

func postJSON(t *testing.T, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
				assert.Equal(t, "alice@example.com", req.Email)
				return auth.TokenResponse{AccessToken: "tok", TokenType: "bearer"}, nil
			},
		}
		h := auth.NewHandler(svc)

		c, w := postJSON(t, "/auth/login", `{"email":"alice@example.com","password":"s3cret"}`)
		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"tok"`)
	})

	t.Run("negative bad credentials map to 401", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
				return auth.TokenResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc)

		c, w := postJSON(t, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`)
		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative malformed email rejected by binding", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
				t.Fatal("service must not be called")
				return auth.TokenResponse{}, nil
			},
		}
		h := auth.NewHandler(svc)

		c, w := postJSON(t, "/auth/login", `{"email":"not-an-email","password":"s3cret"}`)
		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Run("success returns created", func(t *testing.T) {
		svc := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
				return auth.UserResponse{ID: 5, Email: req.Email, Username: "bob"}, nil
			},
		}
		h := auth.NewHandler(svc)

		c, w := postJSON(t, "/auth/register",
			`{"email":"bob@example.com","password":"s3cret","first_name":"Bob","last_name":"Jones"}`)
		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"bob"`)
	})

	t.Run("negative short password rejected by binding", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{})

		c, w := postJSON(t, "/auth/register",
			`{"email":"bob@example.com","password":"abc","first_name":"Bob","last_name":"Jones"}`)
		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ChangePassword(t *testing.T) {
	actor := authz.Actor{UserID: 1, Email: "alice@example.com", IsActive: true}

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			changePasswordFn: func(ctx context.Context, a authz.Actor, req auth.ChangePasswordRequest) error {
				assert.Equal(t, actor.UserID, a.UserID)
				return nil
			},
		}
		h := auth.NewHandler(svc)

		c, w := postJSON(t, "/auth/change-password",
			`{"current_password":"old-pass","new_password":"new-pass"}`)
		c.Set("actor", actor)
		h.ChangePassword(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative wrong current password maps to 400", func(t *testing.T) {
		svc := &fakeAuthService{
			changePasswordFn: func(ctx context.Context, a authz.Actor, req auth.ChangePasswordRequest) error {
				return autherrors.ErrIncorrectPassword
			},
		}
		h := auth.NewHandler(svc)

		c, w := postJSON(t, "/auth/change-password",
			`{"current_password":"guess","new_password":"new-pass"}`)
		c.Set("actor", actor)
		h.ChangePassword(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetMe(t *testing.T) {
	actor := authz.Actor{UserID: 1, Email: "alice@example.com", IsActive: true}

	svc := &fakeAuthService{
		getMeFn: func(ctx context.Context, a authz.Actor) (auth.UserResponse, error) {
			return auth.UserResponse{ID: a.UserID, Email: a.Email}, nil
		},
	}
	h := auth.NewHandler(svc)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Set("actor", actor)
	h.GetMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}
