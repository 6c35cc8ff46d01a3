package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-dre-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
)

const (
	ExportFormatText = "txt"
	ExportFormatPDF  = "pdf"
)

// GetDRE devolve o DRE do restaurante no período informado
func GetDRE(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"restaurant_id": id,
			"start_date":    filters.StartDate.Format(time.DateOnly),
			"end_date":      filters.EndDate.Format(time.DateOnly),
		}).Info("dre: gerando relatório")

		report, err := service.GetDRE(r.Context(), id, filters)
		if err != nil {
			writeReportError(w, r, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetBreakeven devolve apenas o ponto de equilíbrio do período
func GetBreakeven(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		result, err := service.GetBreakeven(r.Context(), id, filters)
		if err != nil {
			writeReportError(w, r, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// ExportDRE gera o arquivo do DRE em texto (padrão) ou PDF
func ExportDRE(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		format := r.URL.Query().Get("format")
		if format == "" {
			format = ExportFormatText
		}

		if format != ExportFormatText && format != ExportFormatPDF {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: txt, pdf", nil)
			return
		}

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		var (
			file *domain.ExportFile
			err  error
		)
		if format == ExportFormatPDF {
			file, err = service.ExportPDF(r.Context(), id, filters)
		} else {
			file, err = service.ExportText(r.Context(), id, filters)
		}
		if err != nil {
			writeReportError(w, r, err, apiErrors.ErrExportFailed)
			return
		}

		logger.WithFields(log.Fields{
			"restaurant_id": id,
			"format":        format,
			"file_name":     file.FileName,
		}).Info("dre: arquivo exportado")

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(file.Content); err != nil {
			logger.WithError(err).Warn("dre: erro ao escrever arquivo exportado")
		}
	})
}

// parseReportFilters lê start_date e end_date (YYYY-MM-DD). Ambos são obrigatórios.
func parseReportFilters(w http.ResponseWriter, r *http.Request) (*domain.ReportFilters, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"param": "start_date"})
		return nil, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"param": "end_date"})
		return nil, false
	}

	if startDate == nil || endDate == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
		return nil, false
	}

	return &domain.ReportFilters{StartDate: startDate, EndDate: endDate}, true
}

func writeReportError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.Is(err, reporting.ErrRestaurantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRestaurantNotFound, "Restaurante não encontrado", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("dre: erro ao gerar relatório")
		apiErrors.WriteError(w, fallback, "Erro ao gerar relatório", nil)
	}
}
