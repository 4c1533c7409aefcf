package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context, token string) error
	profileFn  func(ctx context.Context, email string) (*domain.User, error)
	updateFn   func(ctx context.Context, email string, update ports.ProfileUpdate) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ValidateToken(ctx context.Context, token string) (string, error) {
	return "", domain.ErrInvalidToken
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	return s.profileFn(ctx, email)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, email string, update ports.ProfileUpdate) (*domain.User, error) {
	return s.updateFn(ctx, email, update)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@bu.edu" || password != "hunter42" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{Token: "token123", Email: "alice@bu.edu"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/register", `{"email":"alice@bu.edu","password":"hunter42"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["email"] != "alice@bu.edu" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_DomainErrorsPassThrough(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/register", `{"email":"alice@bu.edu","password":"hunter42"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to surface, got %v", err)
	}
}

func TestAuthHandler_Register_RejectsMalformedEnvelope(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{`{}`, `{"email":"not-an-email","password":"hunter42"}`} {
		c, _ := newJSONContext(t, http.MethodPost, "/api/register", body)

		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{Token: "token456", Email: "alice@bu.edu"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/login", `{"email":"alice@bu.edu","password":"hunter42"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/login", `{"email":"alice@bu.edu","password":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_NoToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/logout", "")
	if err := h.Logout(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	var gotToken string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			gotToken = token
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/logout", "")
	c.Request().Header.Set("Authorization", "Bearer token123")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotToken != "token123" {
		t.Fatalf("expected token forwarded, got %q", gotToken)
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/verify", "")
	c.Set("email", "alice@bu.edu")
	if err := h.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp verifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Valid || resp.Email != "alice@bu.edu" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_UpdateProfile_PartialFields(t *testing.T) {
	stub := &stubAuthService{
		updateFn: func(ctx context.Context, email string, update ports.ProfileUpdate) (*domain.User, error) {
			if update.Bio == nil || *update.Bio != "new bio" {
				t.Fatalf("expected bio update, got %+v", update)
			}
			if update.Username != nil {
				t.Fatal("username should be nil when absent")
			}
			return &domain.User{Email: email, Username: "alice", Bio: *update.Bio}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/api/profile", `{"bio":"new bio"}`)
	c.Set("email", "alice@bu.edu")
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
