package httpapi

import (
	"errors"
	"net/http"

	"status-report-server/internal/infra/httpserver"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/httpapi/internal"
	"status-report-server/internal/status_report/usecases"
)

func NewIndicatorController(service usecases.IndicatorService) *IndicatorController {
	return &IndicatorController{
		service: service,
	}
}

var _ httpserver.Controller = &IndicatorController{}

type IndicatorController struct {
	service usecases.IndicatorService
}

func (c *IndicatorController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/status-reports/{id}/indicators", c.createReportIndicator())
	router.Handle("GET /v1/status-reports/{id}/indicators", c.listIndicators())
	router.Handle("POST /v1/indicators", c.createIndicator())
	router.Handle("POST /v1/indicators/validate", c.validateFormula())
	router.Handle("GET /v1/indicators/{id}", c.getIndicator())
	router.Handle("PUT /v1/indicators/{id}", c.updateIndicator())
	router.Handle("DELETE /v1/indicators/{id}", c.deleteIndicator())
}

func (c *IndicatorController) createReportIndicator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.IndicatorRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		reportID := r.PathValue("id")
		body.ReportID = &reportID
		c.create(w, r, body)
	}
}

func (c *IndicatorController) createIndicator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.IndicatorRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		c.create(w, r, body)
	}
}

func (c *IndicatorController) create(w http.ResponseWriter, r *http.Request, body internal.IndicatorRequest) {
	indicator, err := body.ToDomain()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := c.service.CreateIndicator(r.Context(), indicator)
	if err != nil {
		replyWithError(w, err, createIndicatorErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToIndicatorResponse(created))
}

func (c *IndicatorController) listIndicators() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		indicators, err := c.service.ListIndicatorsByReport(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, listIndicatorsErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		data := make([]internal.IndicatorResponse, 0, len(indicators))
		for _, indicator := range httpserver.Page(indicators, params) {
			data = append(data, internal.ToIndicatorResponse(indicator))
		}
		httpserver.ReplyWithPaginatedData(w, http.StatusOK, data, len(indicators), params)
	}
}

func (c *IndicatorController) getIndicator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		indicator, err := c.service.GetIndicator(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, getIndicatorErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToIndicatorResponse(indicator))
	}
}

func (c *IndicatorController) updateIndicator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.IndicatorRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		indicator, err := body.ToDomain()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		indicator.ID = shareddomain.ID(r.PathValue("id"))

		updated, err := c.service.UpdateIndicator(r.Context(), indicator)
		if err != nil {
			replyWithError(w, err, updateIndicatorErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToIndicatorResponse(updated))
	}
}

func (c *IndicatorController) deleteIndicator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeleteIndicator(r.Context(), shareddomain.ID(r.PathValue("id"))); err != nil {
			replyWithError(w, err, deleteIndicatorErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// validateFormula answers 200 for both outcomes; an invalid formula is
// described in the body.
func (c *IndicatorController) validateFormula() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FormulaValidateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		response := internal.NewFormulaValidationResponse()
		err := c.service.ValidateFormula(r.Context(), body.Name, body.Formula)

		var validation *usecases.ValidationError
		switch {
		case err == nil:
		case errors.As(err, &validation):
			response.Valid = false
			response.Indicator = validation.IndicatorName
			response.Line = validation.Line
			response.Column = validation.Column
			response.Message = validation.Error()
		default:
			replyWithError(w, err, validateFormulaErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
