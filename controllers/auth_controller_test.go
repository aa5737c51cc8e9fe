package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowventory/backend/models"
)

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	f := newAPIFixture(t)
	f.seedUser(t, "Admin User", "admin@flowventory.test", "hunter22", models.RoleAdmin, true)

	c, rec := f.request(http.MethodPost, "/api/auth/login",
		`{"email":"admin@flowventory.test","password":"hunter22"}`, nil)

	require.NoError(t, f.auth.Login(c))
	requireStatus(t, rec, http.StatusOK)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@flowventory.test", resp.User.Email)
	// The password hash must never serialize
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	f := newAPIFixture(t)
	f.seedUser(t, "Admin User", "admin@flowventory.test", "hunter22", models.RoleAdmin, true)

	c, rec := f.request(http.MethodPost, "/api/auth/login",
		`{"email":"admin@flowventory.test","password":"wrong"}`, nil)

	require.NoError(t, f.auth.Login(c))
	requireStatus(t, rec, http.StatusUnauthorized)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestLoginRejectsUnknownEmailWithSameMessage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	f := newAPIFixture(t)

	c, rec := f.request(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@flowventory.test","password":"whatever"}`, nil)

	require.NoError(t, f.auth.Login(c))
	requireStatus(t, rec, http.StatusUnauthorized)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	f := newAPIFixture(t)
	f.seedUser(t, "Former Staff", "gone@flowventory.test", "hunter22", models.RoleStaff, false)

	c, rec := f.request(http.MethodPost, "/api/auth/login",
		`{"email":"gone@flowventory.test","password":"hunter22"}`, nil)

	require.NoError(t, f.auth.Login(c))
	requireStatus(t, rec, http.StatusForbidden)
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	f := newAPIFixture(t)
	user := f.seedUser(t, "Admin User", "admin@flowventory.test", "hunter22", models.RoleAdmin, true)

	actor := models.Actor{ID: user.ID, Name: user.Name}
	c, rec := f.request(http.MethodGet, "/api/auth/me", "", &actor)

	require.NoError(t, f.auth.Me(c))
	requireStatus(t, rec, http.StatusOK)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "admin@flowventory.test", got.Email)
}
