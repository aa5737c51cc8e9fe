package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/models"
)

func contextWithRole(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/categories/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	c, rec := contextWithRole(models.RoleAdmin)
	handler := RequireRole(models.RoleAdmin)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	c, rec := contextWithRole(models.RoleStaff)
	handler := RequireRole(models.RoleAdmin)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	c, rec := contextWithRole("")
	handler := RequireRole(models.RoleAdmin)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Admin User",
		Email: "admin@flowventory.test",
		Role:  models.RoleAdmin,
	}
	signed, err := GenerateJWT(user)
	require.NoError(t, err)

	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestExtractActorFromValidatedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	id := primitive.NewObjectID()
	c.Set("user", &jwt.Token{Claims: &JwtCustomClaims{
		UserID: id.Hex(),
		Name:   "Staff User",
		Role:   models.RoleStaff,
	}})

	actor, err := ExtractActor(c)
	require.NoError(t, err)
	assert.Equal(t, id, actor.ID)
	assert.Equal(t, "Staff User", actor.Name)
}

func TestExtractActorWithoutTokenFails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := ExtractActor(c)
	assert.Error(t, err)
}
