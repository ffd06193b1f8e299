package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/middleware"
)

// withAccountID simulates JWTAuth storing the authenticated account id.
func withAccountID(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, id)
		c.Next()
	}
}

func TestGetProfileEndpoint(t *testing.T) {
	svc := &stubAuthService{
		getProfileFn: func(_ context.Context, accountID int64) (*models.Account, error) {
			return &models.Account{ID: accountID, Name: "Jane Doe", Email: "jane@college.edu", Role: models.RoleStudent}, nil
		},
	}
	controller := NewAccountController(svc, zerolog.Nop())

	router := gin.New()
	router.GET("/profile", withAccountID(7), controller.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data models.Account `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID != 7 {
		t.Errorf("profile id = %d, want 7", resp.Data.ID)
	}
}

func TestGetProfileEndpointUnauthenticated(t *testing.T) {
	svc := &stubAuthService{
		getProfileFn: func(context.Context, int64) (*models.Account, error) {
			t.Fatal("service must not be called without an authenticated id")
			return nil, nil
		},
	}
	controller := NewAccountController(svc, zerolog.Nop())

	router := gin.New()
	router.GET("/profile", controller.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401; body: %s", w.Code, w.Body.String())
	}
}

func TestUpdateProfileEndpointUsesTokenIdentity(t *testing.T) {
	var gotID int64
	svc := &stubAuthService{
		updateProfileFn: func(_ context.Context, accountID int64, req *dto.UpdateProfileRequest) (*models.Account, error) {
			gotID = accountID
			return &models.Account{ID: accountID, Name: "Jane Doe", Phone: req.Phone}, nil
		},
	}
	controller := NewAccountController(svc, zerolog.Nop())

	router := gin.New()
	router.PUT("/profile", withAccountID(7), controller.UpdateProfile)

	// The body carries an id field; it must be ignored in favor of the token.
	payload, _ := json.Marshal(gin.H{"id": 999, "phone": "555-0101"})
	req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if gotID != 7 {
		t.Errorf("service received id %d, want the token's 7", gotID)
	}
}

func TestDeleteAccountEndpoint(t *testing.T) {
	var gotID int64
	svc := &stubAuthService{
		deleteAccountFn: func(_ context.Context, accountID int64) error {
			gotID = accountID
			return nil
		},
	}
	controller := NewAccountController(svc, zerolog.Nop())

	router := gin.New()
	router.DELETE("/profile", withAccountID(7), controller.DeleteAccount)

	req := httptest.NewRequest(http.MethodDelete, "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if gotID != 7 {
		t.Errorf("service received id %d, want 7", gotID)
	}
}
