package httpapi

import (
	"errors"
	"net/http"

	"status-report-server/internal/infra/auth"
	"status-report-server/internal/infra/httpserver"
	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/httpapi/internal"
	"status-report-server/internal/status_report/usecases"
)

func NewReportController(
	reports usecases.ReportService,
	indicators usecases.IndicatorService,
	values usecases.ValueService,
	projects usecases.ProjectReader,
) *ReportController {
	return &ReportController{
		reports:    reports,
		indicators: indicators,
		values:     values,
		projects:   projects,
	}
}

var _ httpserver.Controller = &ReportController{}

type ReportController struct {
	reports    usecases.ReportService
	indicators usecases.IndicatorService
	values     usecases.ValueService
	projects   usecases.ProjectReader
}

func (c *ReportController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/status-reports", c.createReport())
	router.Handle("GET /v1/status-reports/{id}", c.getReport())
	router.Handle("PUT /v1/status-reports/{id}", c.updateReport())
	router.Handle("DELETE /v1/status-reports/{id}", c.deleteReport())
	router.Handle("GET /v1/status-reports/{id}/values", c.listValues())
	router.Handle("POST /v1/status-reports/{id}/indicators/{indicator_id}/compute", c.computeValue())
}

func (c *ReportController) createReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReportCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		report, err := body.ToDomain()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := c.reports.CreateReport(r.Context(), report, body.InstallCatalog)
		if err != nil {
			replyWithError(w, err, createReportErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToReportResponse(created))
	}
}

func (c *ReportController) getReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := c.reports.GetReport(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, getReportErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToReportResponse(report))
	}
}

func (c *ReportController) updateReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReportUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		projectID, date, err := body.Target()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		report, err := c.reports.UpdateReport(r.Context(), shareddomain.ID(r.PathValue("id")), projectID, date)
		if err != nil {
			replyWithError(w, err, updateReportErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToReportResponse(report))
	}
}

func (c *ReportController) deleteReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.reports.DeleteReport(r.Context(), shareddomain.ID(r.PathValue("id"))); err != nil {
			replyWithError(w, err, deleteReportErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *ReportController) listValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := c.values.ListByReport(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, listValuesErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		data := make([]internal.ValueResponse, 0, len(values))
		for _, value := range httpserver.Page(values, params) {
			data = append(data, internal.ToValueResponse(value))
		}
		httpserver.ReplyWithPaginatedData(w, http.StatusOK, data, len(values), params)
	}
}

// computeValue runs as part of report generation, so the request carries
// the status report creation grant.
func (c *ReportController) computeValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ComputeRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil && !errors.Is(err, httpserver.ErrEmptyBody) {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		report, err := c.reports.GetReport(ctx, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, computeValueErrMessage)
			return
		}

		indicator, err := c.indicators.GetIndicator(ctx, shareddomain.ID(r.PathValue("indicator_id")))
		if err != nil {
			replyWithError(w, err, computeValueErrMessage)
			return
		}
		if !belongsTo(indicator, report) {
			http.Error(w, indicatorOutsideErrMessage, http.StatusBadRequest)
			return
		}

		date := report.Date
		if body.Date != "" {
			parsed, err := utils.ParseDate(body.Date)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			date = parsed
		}

		project, err := c.projects.GetProject(ctx, report.ProjectID)
		if err != nil {
			replyWithError(w, err, computeValueErrMessage)
			return
		}

		value, err := c.indicators.ComputeValue(
			usecases.WithStatusReportCreation(ctx),
			auth.ActorFromContext(ctx),
			indicator,
			project,
			date,
			body.Bindings,
		)
		if err != nil {
			replyWithError(w, err, computeValueErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToValueResponse(value))
	}
}

func belongsTo(indicator domain.Indicator, report domain.Report) bool {
	return indicator.ReportID != nil && *indicator.ReportID == report.ID
}
