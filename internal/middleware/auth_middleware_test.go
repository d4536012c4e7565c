package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/pkg/apperrors"
	"github.com/shs-edu/campus-portal/internal/pkg/auth"
)

type fakeUserRepo struct {
	users map[int64]*models.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return 0, apperrors.ErrBadRequest
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "campus-portal-test",
	})
}

func performRequest(t *testing.T, handlers []gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	invoked := false
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		invoked = true
		c.Status(http.StatusOK)
	})
	router.GET("/protected", chain...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, invoked
}

func TestRequireAuthMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(time.Hour), &fakeUserRepo{})

	rec, invoked := performRequest(t, []gin.HandlerFunc{m.RequireAuth()}, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if invoked {
		t.Error("handler ran despite missing Authorization header")
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(time.Hour), &fakeUserRepo{})

	rec, _ := performRequest(t, []gin.HandlerFunc{m.RequireAuth()}, "Token abc123")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(time.Hour), &fakeUserRepo{})

	rec, invoked := performRequest(t, []gin.HandlerFunc{m.RequireAuth()}, "Bearer not-a-jwt")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if invoked {
		t.Error("handler ran with an invalid token")
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)
	token, err := svc.Generate(1)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	m := NewAuthMiddleware(svc, &fakeUserRepo{users: map[int64]*models.User{1: {ID: 1}}})

	rec, invoked := performRequest(t, []gin.HandlerFunc{m.RequireAuth()}, "Bearer "+token)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if invoked {
		t.Error("handler ran with an expired token")
	}
}

func TestRequireAuthDeletedUser(t *testing.T) {
	svc := testJWTService(time.Hour)
	token, err := svc.Generate(99)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	// Valid token, but no such user anymore.
	m := NewAuthMiddleware(svc, &fakeUserRepo{users: map[int64]*models.User{}})

	rec, invoked := performRequest(t, []gin.HandlerFunc{m.RequireAuth()}, "Bearer "+token)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if invoked {
		t.Error("handler ran for a deleted user")
	}
}

func TestRequireAuthRepositoryFailure(t *testing.T) {
	svc := testJWTService(time.Hour)
	token, err := svc.Generate(7)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	m := NewAuthMiddleware(svc, &fakeUserRepo{err: context.DeadlineExceeded})

	rec, _ := performRequest(t, []gin.HandlerFunc{m.RequireAuth()}, "Bearer "+token)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRequireAuthAttachesUser(t *testing.T) {
	svc := testJWTService(time.Hour)
	token, err := svc.Generate(5)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	stored := &models.User{ID: 5, Name: "Asha Verma", Role: models.RoleFaculty}
	m := NewAuthMiddleware(svc, &fakeUserRepo{users: map[int64]*models.User{5: stored}})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	var resolved *models.User
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			t.Error("CurrentUser() returned no user inside protected handler")
		}
		resolved = user
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resolved == nil || resolved.ID != 5 || resolved.Role != models.RoleFaculty {
		t.Errorf("resolved user = %+v, want the stored record", resolved)
	}
}

func TestRequireRoles(t *testing.T) {
	svc := testJWTService(time.Hour)

	tests := []struct {
		name       string
		role       models.Role
		wantStatus int
	}{
		{"student is rejected", models.RoleStudent, http.StatusForbidden},
		{"faculty passes", models.RoleFaculty, http.StatusOK},
		{"admin passes", models.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Generate(1)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			repo := &fakeUserRepo{users: map[int64]*models.User{1: {ID: 1, Role: tt.role}}}
			m := NewAuthMiddleware(svc, repo)

			rec, invoked := performRequest(t,
				[]gin.HandlerFunc{m.RequireAuth(), m.RequireRoles(models.RoleFaculty, models.RoleAdmin)},
				"Bearer "+token)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if wantInvoked := tt.wantStatus == http.StatusOK; invoked != wantInvoked {
				t.Errorf("handler invoked = %v, want %v", invoked, wantInvoked)
			}
		})
	}
}

func TestRequireRolesWithoutAuth(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(time.Hour), &fakeUserRepo{})

	// RequireRoles alone, no RequireAuth: nothing on the context.
	rec, invoked := performRequest(t, []gin.HandlerFunc{m.RequireRoles(models.RoleAdmin)}, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if invoked {
		t.Error("handler ran without an authenticated user")
	}
}
