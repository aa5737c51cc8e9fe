package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowventory/backend/models"
)

func TestCreateItemReturnsPopulatedItem(t *testing.T) {
	f := newAPIFixture(t)
	electronics := f.seedCategory(t, "Electronics")
	tech := f.seedBrand(t, "TechCorp")

	body := fmt.Sprintf(`{"name":"Mouse","sku":"EL-TC-0001","quantity":25,"price":19.99,"category":%q,"brand":%q}`,
		electronics.ID.Hex(), tech.ID.Hex())
	c, rec := f.request(http.MethodPost, "/api/items", body, &f.admin)

	require.NoError(t, f.itemCtrl.CreateItem(c))
	requireStatus(t, rec, http.StatusCreated)

	var created models.PopulatedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Mouse", created.Name)
	assert.Equal(t, models.StatusInStock, created.Status)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Electronics", created.Category.Name)
}

func TestCreateItemWithDuplicateSKUConflicts(t *testing.T) {
	f := newAPIFixture(t)
	electronics := f.seedCategory(t, "Electronics")
	tech := f.seedBrand(t, "TechCorp")
	f.seedItem(t, "Mouse", "EL-TC-0001", electronics.ID, tech.ID)

	body := fmt.Sprintf(`{"name":"Trackball","sku":"EL-TC-0001","quantity":5,"category":%q,"brand":%q}`,
		electronics.ID.Hex(), tech.ID.Hex())
	c, rec := f.request(http.MethodPost, "/api/items", body, &f.admin)

	require.NoError(t, f.itemCtrl.CreateItem(c))
	requireStatus(t, rec, http.StatusConflict)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sku already exists", resp.Message)
}

func TestCreateItemWithUnknownCategoryFails(t *testing.T) {
	f := newAPIFixture(t)
	tech := f.seedBrand(t, "TechCorp")

	body := fmt.Sprintf(`{"name":"Mouse","sku":"EL-TC-0001","quantity":5,"category":"64b000000000000000000000","brand":%q}`,
		tech.ID.Hex())
	c, rec := f.request(http.MethodPost, "/api/items", body, &f.admin)

	require.NoError(t, f.itemCtrl.CreateItem(c))
	requireStatus(t, rec, http.StatusBadRequest)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "category does not exist", resp.Message)
}

func TestDeleteItemRespondsOKForMissingItem(t *testing.T) {
	f := newAPIFixture(t)

	missing := "64b000000000000000000000"
	c, rec := f.request(http.MethodDelete, "/api/items/"+missing, "", &f.admin)
	c.SetParamNames("id")
	c.SetParamValues(missing)

	require.NoError(t, f.itemCtrl.DeleteItem(c))
	requireStatus(t, rec, http.StatusOK)

	var resp models.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
}

func TestGetRecentLogsNewestFirst(t *testing.T) {
	f := newAPIFixture(t)
	electronics := f.seedCategory(t, "Electronics")
	tech := f.seedBrand(t, "TechCorp")

	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"name":"Item %d","sku":"EL-TC-%04d","quantity":5,"category":%q,"brand":%q}`,
			i, i, electronics.ID.Hex(), tech.ID.Hex())
		c, rec := f.request(http.MethodPost, "/api/items", body, &f.admin)
		require.NoError(t, f.itemCtrl.CreateItem(c))
		requireStatus(t, rec, http.StatusCreated)
	}

	c, rec := f.request(http.MethodGet, "/api/logs", "", &f.admin)
	require.NoError(t, f.logCtrl.GetRecentLogs(c))
	requireStatus(t, rec, http.StatusOK)

	var logs []models.Log
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs, 3)
	assert.Equal(t, "Item 3", logs[0].ItemName)
	assert.Equal(t, "Item 1", logs[2].ItemName)
}
