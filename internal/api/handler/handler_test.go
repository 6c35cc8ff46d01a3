package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dre-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-dre-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dre-api/pkg/middleware"
)

type fakeReporter struct {
	err          error
	restaurantID string
	filters      *domain.ReportFilters
	exported     string
}

func (f *fakeReporter) GetDRE(_ context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.DREReport, error) {
	f.restaurantID, f.filters = restaurantID, filters
	if f.err != nil {
		return nil, f.err
	}
	return &domain.DREReport{
		RestaurantID: restaurantID,
		Filters:      filters,
		DRE:          &domain.DREResult{Revenue: decimal.NewFromInt(1500)},
	}, nil
}

func (f *fakeReporter) GetBreakeven(_ context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.BreakevenResult, error) {
	f.restaurantID, f.filters = restaurantID, filters
	if f.err != nil {
		return nil, f.err
	}
	return &domain.BreakevenResult{Revenue: decimal.NewFromInt(250), Orders: 13, Reachable: true}, nil
}

func (f *fakeReporter) ExportText(_ context.Context, restaurantID string, _ *domain.ReportFilters) (*domain.ExportFile, error) {
	f.restaurantID, f.exported = restaurantID, "txt"
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ExportFile{FileName: "dre.txt", ContentType: "text/plain; charset=utf-8", Content: []byte("RECEITA BRUTA")}, nil
}

func (f *fakeReporter) ExportPDF(_ context.Context, restaurantID string, _ *domain.ReportFilters) (*domain.ExportFile, error) {
	f.restaurantID, f.exported = restaurantID, "pdf"
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ExportFile{FileName: "dre.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")}, nil
}

type fakeRanking struct {
	month string
	err   error
}

func (f *fakeRanking) GetRanking(context.Context) (*domain.RestaurantRankingResponse, error) {
	f.month = "current"
	return &domain.RestaurantRankingResponse{Ranking: []domain.RestaurantRankingItem{{RestaurantID: "R1", Position: 1}}}, f.err
}

func (f *fakeRanking) GetRankingByMonth(_ context.Context, month string) (*domain.RestaurantRankingResponse, error) {
	f.month = month
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RestaurantRankingResponse{}, nil
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync()        { f.triggered++ }
func (f *fakeCronJob) GetStatus() map[string]any { return map[string]any{"sync_running": false} }

// withUser simula o middleware de autenticação injetando as claims no contexto
func withUser(claims *domain.Claims, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

var admin = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

func TestReports(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		claims       *domain.Claims
		reporterErr  error
		expectedCode int
		expectedErr  string
		validate     func(t *testing.T, rec *httptest.ResponseRecorder, reporter *fakeReporter)
	}{
		{
			name:         "DRE com período válido",
			url:          "/v1/restaurants/R1/dre?start_date=2024-01-01&end_date=2024-01-31",
			claims:       admin,
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reporter *fakeReporter) {
				assert.Equal(t, "R1", reporter.restaurantID)
				assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *reporter.filters.EndDate)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var report domain.DREReport
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
				assert.True(t, decimal.NewFromInt(1500).Equal(report.DRE.Revenue))
			},
		},
		{
			name:         "Data em formato inválido",
			url:          "/v1/restaurants/R1/dre?start_date=01/01/2024&end_date=2024-01-31",
			claims:       admin,
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Datas ausentes",
			url:          "/v1/restaurants/R1/dre",
			claims:       admin,
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Período invertido",
			url:          "/v1/restaurants/R1/dre?start_date=2024-02-01&end_date=2024-01-01",
			claims:       admin,
			reporterErr:  reporting.ErrInvalidPeriod,
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidPeriod,
		},
		{
			name:         "Restaurante inexistente",
			url:          "/v1/restaurants/R9/dre?start_date=2024-01-01&end_date=2024-01-31",
			claims:       admin,
			reporterErr:  reporting.ErrRestaurantNotFound,
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrRestaurantNotFound,
		},
		{
			name:         "Falha no banco",
			url:          "/v1/restaurants/R1/dre?start_date=2024-01-01&end_date=2024-01-31",
			claims:       admin,
			reporterErr:  errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedErr:  apiErrors.ErrDatabaseOperation,
		},
		{
			name:         "Dono sem vínculo com o restaurante",
			url:          "/v1/restaurants/R2/dre?start_date=2024-01-01&end_date=2024-01-31",
			claims:       &domain.Claims{UserID: 3, UserRoleID: domain.RoleOwner, UserRestaurants: []string{"R1"}},
			expectedCode: http.StatusForbidden,
			expectedErr:  apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:         "Dono vinculado ao restaurante",
			url:          "/v1/restaurants/R1/breakeven?start_date=2024-01-01&end_date=2024-01-31",
			claims:       &domain.Claims{UserID: 3, UserRoleID: domain.RoleOwner, UserRestaurants: []string{"R1"}},
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, _ *fakeReporter) {
				var result domain.BreakevenResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.Equal(t, int64(13), result.Orders)
				assert.True(t, result.Reachable)
			},
		},
		{
			name:         "Exportação em texto é o padrão",
			url:          "/v1/restaurants/R1/dre/export?start_date=2024-01-01&end_date=2024-01-31",
			claims:       admin,
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reporter *fakeReporter) {
				assert.Equal(t, "txt", reporter.exported)
				assert.Equal(t, `attachment; filename="dre.txt"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "RECEITA BRUTA", rec.Body.String())
			},
		},
		{
			name:         "Exportação em PDF",
			url:          "/v1/restaurants/R1/dre/export?start_date=2024-01-01&end_date=2024-01-31&format=pdf",
			claims:       admin,
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reporter *fakeReporter) {
				assert.Equal(t, "pdf", reporter.exported)
				assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
				assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
			},
		},
		{
			name:         "Formato de exportação desconhecido",
			url:          "/v1/restaurants/R1/dre/export?start_date=2024-01-01&end_date=2024-01-31&format=xlsx",
			claims:       admin,
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Falha na exportação",
			url:          "/v1/restaurants/R1/dre/export?start_date=2024-01-01&end_date=2024-01-31&format=pdf",
			claims:       admin,
			reporterErr:  errors.New("fonte não encontrada"),
			expectedCode: http.StatusInternalServerError,
			expectedErr:  apiErrors.ErrExportFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &fakeReporter{err: tt.reporterErr}
			rt := router.New(router.WithRoutes(Reports(reporter)...))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			withUser(tt.claims, rt).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rec).Code)
			}
			if tt.validate != nil {
				tt.validate(t, rec, reporter)
			}
		})
	}
}

func TestRestaurantRanking(t *testing.T) {
	t.Run("Sem mês usa o ranking corrente", func(t *testing.T) {
		service := &fakeRanking{}
		rt := router.New(router.WithRoutes(RestaurantRanking(service)...))

		rec := httptest.NewRecorder()
		withUser(admin, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ranking/restaurants", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "current", service.month)
		assert.Contains(t, rec.Body.String(), `"restaurant_id":"R1"`)
	})

	t.Run("Mês informado", func(t *testing.T) {
		service := &fakeRanking{}
		rt := router.New(router.WithRoutes(RestaurantRanking(service)...))

		rec := httptest.NewRecorder()
		withUser(admin, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ranking/restaurants?month=02-2024", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "02-2024", service.month)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		service := &fakeRanking{err: ranking.ErrInvalidMonth}
		rt := router.New(router.WithRoutes(RestaurantRanking(service)...))

		rec := httptest.NewRecorder()
		withUser(admin, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ranking/restaurants?month=2024-02", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Dono não acessa o ranking", func(t *testing.T) {
		rt := router.New(router.WithRoutes(RestaurantRanking(&fakeRanking{})...))

		rec := httptest.NewRecorder()
		owner := &domain.Claims{UserID: 3, UserRoleID: domain.RoleOwner}
		withUser(owner, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ranking/restaurants", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name              string
		method            string
		url               string
		claims            *domain.Claims
		expectedCode      int
		expectedTriggered int
	}{
		{
			name:              "Executa o ranking de restaurantes",
			method:            http.MethodPost,
			url:               "/v1/cron/restaurant-ranking/run",
			claims:            admin,
			expectedCode:      http.StatusAccepted,
			expectedTriggered: 1,
		},
		{
			name:              "Executa todas as crons",
			method:            http.MethodPost,
			url:               "/v1/cron/all/run",
			claims:            admin,
			expectedCode:      http.StatusAccepted,
			expectedTriggered: 1,
		},
		{
			name:         "Tipo desconhecido",
			method:       http.MethodPost,
			url:          "/v1/cron/meta/run",
			claims:       admin,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Supervisor não executa crons",
			method:       http.MethodPost,
			url:          "/v1/cron/all/run",
			claims:       &domain.Claims{UserID: 2, UserRoleID: domain.RoleSupervisor},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Status de todas as crons",
			method:       http.MethodGet,
			url:          "/v1/cron/all/status",
			claims:       admin,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Status de tipo desconhecido",
			method:       http.MethodGet,
			url:          "/v1/cron/meta/status",
			claims:       admin,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{}
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{RestaurantRanking: job})...))

			rec := httptest.NewRecorder()
			withUser(tt.claims, rt).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedTriggered, job.triggered)
		})
	}

	t.Run("Status traz o ranking de restaurantes", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{RestaurantRanking: &fakeCronJob{}})...))

		rec := httptest.NewRecorder()
		withUser(admin, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/all/status", nil))

		assert.Contains(t, rec.Body.String(), `"restaurant-ranking":{"sync_running":false}`)
	})
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	t.Run("Banco disponível", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthcheckHandler(fakePinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Banco indisponível", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthcheckHandler(fakePinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
	})
}

func TestRouterNotFound(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(nil)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthcheck", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decodeError(t, rec).Code)
}
