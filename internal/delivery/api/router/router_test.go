package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/metrics"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken    = "admin-token"
	customerToken = "customer-token"
)

type testRouter struct {
	echo      *echo.Echo
	catalogUC *mockUsecase.MockCatalogUsecase
	authUC    *mockUsecase.MockAuthUsecase
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().Validate(adminToken).Return(&entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdministrator}}, nil).Maybe()
	tokens.EXPECT().Validate(customerToken).Return(&entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}, nil).Maybe()
	tokens.EXPECT().Validate(mock.Anything).Return(nil, domainerrors.ErrUnauthorized).Maybe()

	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)

	m := metrics.New(metrics.Params{
		Config: &config.Config{Metrics: &config.MetricsConfig{Enabled: true}},
		Logger: logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(m.Middleware)

	NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		CatalogHandler:      handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		AdminCatalogHandler: handler.NewAdminCatalogHandler(handler.AdminCatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		AdminUserHandler:    handler.NewAdminUserHandler(handler.AdminUserHandlerParams{AuthUC: authUC, Logger: logger}),
		ImageHandler:        handler.NewImageHandler(handler.ImageHandlerParams{Images: mockService.NewMockImageStore(t), Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokens,
			Gate:         impl.NewAuthorizationGate(),
		}),
		Metrics: m,
	}).RegisterRoutes(e)

	return &testRouter{echo: e, catalogUC: catalogUC, authUC: authUC}
}

func (r *testRouter) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_AdminRoutesRequireAdministrator(t *testing.T) {
	routes := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/api/v1/admin/categories", `{"name":"Mugs"}`},
		{http.MethodPut, "/api/v1/admin/categories/1", `{"name":"Mugs"}`},
		{http.MethodDelete, "/api/v1/admin/categories/1", ""},
		{http.MethodPost, "/api/v1/admin/products", `{"category_id":1,"name":"Grinder"}`},
		{http.MethodPut, "/api/v1/admin/products/1", `{"category_id":1,"name":"Grinder"}`},
		{http.MethodDelete, "/api/v1/admin/products/1", ""},
		{http.MethodGet, "/api/v1/admin/products/1/label", ""},
		{http.MethodGet, "/api/v1/admin/users/" + uuid.NewString(), ""},
		{http.MethodPut, "/api/v1/admin/users/" + uuid.NewString() + "/lockout", `{"locked":true}`},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			r := newTestRouter(t)

			rec := r.do(route.method, route.target, "", route.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = r.do(route.method, route.target, "expired", route.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = r.do(route.method, route.target, customerToken, route.body)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
		})
	}
}

func TestRouter_AdministratorReachesCatalogMutations(t *testing.T) {
	r := newTestRouter(t)
	r.catalogUC.EXPECT().
		CreateCategory(mock.Anything, &usecase.CategoryInput{Name: "Mugs"}, (*entity.ImageUpload)(nil)).
		Return(&usecase.MutationOutput[*entity.Category]{Entity: &entity.Category{ID: 3, Name: "Mugs"}}, nil).
		Once()

	rec := r.do(http.MethodPost, "/api/v1/admin/categories", adminToken, `{"name":"Mugs"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := newTestRouter(t)
	r.catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{}, nil).Once()
	r.catalogUC.EXPECT().ListProducts(mock.Anything, entity.ProductFilter{}).Return([]*entity.Product{}, nil).Once()

	assert.Equal(t, http.StatusOK, r.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, r.do(http.MethodGet, "/api/v1/categories", "", "").Code)
	assert.Equal(t, http.StatusOK, r.do(http.MethodGet, "/api/v1/products", "", "").Code)
}

func TestRouter_MeRequiresAuthentication(t *testing.T) {
	r := newTestRouter(t)
	r.authUC.EXPECT().
		GetUserByID(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&usecase.UserSummary{Email: "a@x.com", Roles: entity.Roles{entity.RoleCustomer}}, nil).
		Once()

	assert.Equal(t, http.StatusUnauthorized, r.do(http.MethodGet, "/auth/me", "", "").Code)
	assert.Equal(t, http.StatusOK, r.do(http.MethodGet, "/auth/me", customerToken, "").Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	r.do(http.MethodGet, "/health", "", "")
	rec := r.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
