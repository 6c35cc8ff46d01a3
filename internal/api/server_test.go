package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dre-api/internal/config"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/metrics"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/authenticating"
)

type stubReporter struct{}

func (stubReporter) GetDRE(_ context.Context, id string, f *domain.ReportFilters) (*domain.DREReport, error) {
	return &domain.DREReport{RestaurantID: id, Filters: f}, nil
}

func (stubReporter) GetBreakeven(context.Context, string, *domain.ReportFilters) (*domain.BreakevenResult, error) {
	return &domain.BreakevenResult{}, nil
}

func (stubReporter) ExportText(context.Context, string, *domain.ReportFilters) (*domain.ExportFile, error) {
	return &domain.ExportFile{FileName: "dre.txt", Content: []byte("ok")}, nil
}

func (stubReporter) ExportPDF(context.Context, string, *domain.ReportFilters) (*domain.ExportFile, error) {
	return &domain.ExportFile{FileName: "dre.pdf", Content: []byte("%PDF")}, nil
}

func newTestHandler(t *testing.T) (http.Handler, authenticating.Authenticator) {
	t.Helper()

	auth := authenticating.NewService("segredo-de-teste")
	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "8080"}}

	return NewHandler(cfg, Services{
		Reporter:      stubReporter{},
		Authenticator: auth,
		Metrics:       metrics.New(),
	}), auth
}

func TestNewHandler(t *testing.T) {
	h, auth := newTestHandler(t)

	ownerToken, err := auth.IssueToken(domain.Claims{UserID: 3, UserRoleID: domain.RoleOwner, UserRestaurants: []string{"R1"}}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		url          string
		token        string
		expectedCode int
	}{
		{
			name:         "Healthcheck é público",
			method:       http.MethodGet,
			url:          "/healthcheck",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Métricas são públicas",
			method:       http.MethodGet,
			url:          "/metrics",
			expectedCode: http.StatusOK,
		},
		{
			name:         "DRE sem token",
			method:       http.MethodGet,
			url:          "/v1/restaurants/R1/dre?start_date=2024-01-01&end_date=2024-01-31",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "DRE com token inválido",
			method:       http.MethodGet,
			url:          "/v1/restaurants/R1/dre?start_date=2024-01-01&end_date=2024-01-31",
			token:        "abc.def.ghi",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "DRE do restaurante vinculado",
			method:       http.MethodGet,
			url:          "/v1/restaurants/R1/dre?start_date=2024-01-01&end_date=2024-01-31",
			token:        ownerToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "DRE de restaurante não vinculado",
			method:       http.MethodGet,
			url:          "/v1/restaurants/R2/dre?start_date=2024-01-01&end_date=2024-01-31",
			token:        ownerToken,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Preflight CORS não exige token",
			method:       http.MethodOptions,
			url:          "/v1/restaurants/R1/dre",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Rota inexistente",
			method:       http.MethodGet,
			url:          "/v1/inexistente",
			token:        ownerToken,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestNewHandler_ContaRequisicoes(t *testing.T) {
	h, _ := newTestHandler(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), `restaurant_dre_http_requests_total{method="GET",status="200"}`)
}

func TestNew_ExigeServicos(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
