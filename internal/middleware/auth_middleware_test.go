package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
	"github.com/mrmarton/REST-API/internal/pkg/auth"
)

type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.user != nil && f.user.EmailAddress == email {
		return f.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.user != nil && f.user.EmailAddress == email, nil
}

func authTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("joepassword")
	require.NoError(t, err)

	repo := &fakeUserRepo{user: &models.User{
		ID:           1,
		EmailAddress: "joe@smith.com",
		Password:     hash,
	}}

	router := gin.New()
	mw := NewAuthMiddleware(repo, zerolog.Nop())
	router.GET("/protected", mw.BasicAuth(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func TestBasicAuth_Success(t *testing.T) {
	router := authTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.SetBasicAuth("joe@smith.com", "joepassword")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBasicAuth_FailuresShareGenericBody(t *testing.T) {
	router := authTestRouter(t)

	// Missing header, unknown identifier and bad secret must be
	// indistinguishable to the client
	build := []func(r *http.Request){
		func(r *http.Request) {},
		func(r *http.Request) { r.SetBasicAuth("nobody@example.com", "joepassword") },
		func(r *http.Request) { r.SetBasicAuth("joe@smith.com", "wrongpassword") },
	}

	var bodies []string
	for _, setup := range build {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		setup(req)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &body))
	assert.Equal(t, "access denied", body["message"])
}
