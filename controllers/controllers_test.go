package controllers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
	"github.com/flowventory/backend/services"
	"github.com/flowventory/backend/utils"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// apiFixture wires the controllers over in-memory repositories, the same
// shape main.go builds over MongoDB.
type apiFixture struct {
	echo       *echo.Echo
	categories repositories.CategoryRepository
	brands     repositories.BrandRepository
	items      repositories.ItemRepository
	logs       repositories.LogRepository
	users      repositories.UserRepository

	auth         *AuthController
	categoryCtrl *CategoryController
	brandCtrl    *BrandController
	itemCtrl     *ItemController
	logCtrl      *LogController
	userCtrl     *UserController

	admin models.Actor
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		echo:       echo.New(),
		categories: repositories.NewMemoryCategoryRepository(),
		brands:     repositories.NewMemoryBrandRepository(),
		items:      repositories.NewMemoryItemRepository(),
		logs:       repositories.NewMemoryLogRepository(),
		users:      repositories.NewMemoryUserRepository(),
	}
	f.echo.Validator = &testValidator{validator: validator.New()}

	cascade := services.NewCascadeService(f.categories, f.brands, f.items, f.logs)
	itemService := services.NewItemService(f.items, f.categories, f.brands, f.logs)

	f.auth = NewAuthController(f.users)
	f.categoryCtrl = NewCategoryController(f.categories, cascade)
	f.brandCtrl = NewBrandController(f.brands, cascade)
	f.itemCtrl = NewItemController(itemService)
	f.logCtrl = NewLogController(f.logs)
	f.userCtrl = NewUserController(f.users)

	f.admin = models.Actor{ID: primitive.NewObjectID(), Name: "Admin User"}
	return f
}

// request builds an echo context carrying the given JSON body and, when actor
// is non-zero, a validated token the way the JWT middleware leaves it.
func (f *apiFixture) request(method, target, body string, actor *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	if actor != nil {
		c.Set("user", &jwt.Token{Claims: &middleware.JwtCustomClaims{
			UserID: actor.ID.Hex(),
			Name:   actor.Name,
			Role:   models.RoleAdmin,
		}})
	}
	return c, rec
}

func (f *apiFixture) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, f.categories.Insert(context.Background(), category))
	return category
}

func (f *apiFixture) seedBrand(t *testing.T, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{Name: name}
	require.NoError(t, f.brands.Insert(context.Background(), brand))
	return brand
}

func (f *apiFixture) seedItem(t *testing.T, name, sku string, categoryID, brandID primitive.ObjectID) *models.Item {
	t.Helper()
	item := &models.Item{
		Name:     name,
		SKU:      sku,
		Quantity: 5,
		Status:   models.StatusLowStock,
		Category: categoryID,
		Brand:    brandID,
	}
	require.NoError(t, f.items.Insert(context.Background(), item))
	return item
}

func (f *apiFixture) seedUser(t *testing.T, name, email, password, role string, active bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, f.users.Insert(context.Background(), user))
	return user
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
