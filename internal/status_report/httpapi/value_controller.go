package httpapi

import (
	"net/http"

	"status-report-server/internal/infra/auth"
	"status-report-server/internal/infra/httpserver"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/httpapi/internal"
	"status-report-server/internal/status_report/usecases"
)

func NewValueController(values usecases.ValueService, indicators usecases.IndicatorService) *ValueController {
	return &ValueController{
		values:     values,
		indicators: indicators,
	}
}

var _ httpserver.Controller = &ValueController{}

// ValueController exposes direct edits of stored values. These requests
// never carry the status report creation grant.
type ValueController struct {
	values     usecases.ValueService
	indicators usecases.IndicatorService
}

func (c *ValueController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/indicator-values/{id}", c.getValue())
	router.Handle("PUT /v1/indicator-values/{id}", c.updateValue())
	router.Handle("POST /v1/indicator-values/{id}/recompute", c.recomputeValue())
}

func (c *ValueController) getValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := c.values.Get(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, getValueErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToValueResponse(value))
	}
}

func (c *ValueController) updateValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ValueUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		value, err := c.values.Get(ctx, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, updateValueErrMessage)
			return
		}

		if err := value.SetValue(body.Value); err != nil {
			replyWithError(w, err, updateValueErrMessage)
			return
		}
		if body.Color != "" {
			if err := value.SetColor(body.Color); err != nil {
				replyWithError(w, err, updateValueErrMessage)
				return
			}
		}

		updated, err := c.values.Update(ctx, auth.ActorFromContext(ctx), value)
		if err != nil {
			replyWithError(w, err, updateValueErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToValueResponse(updated))
	}
}

func (c *ValueController) recomputeValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		value, err := c.indicators.RecomputeValue(ctx, auth.ActorFromContext(ctx), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithError(w, err, recomputeValueErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToValueResponse(value))
	}
}
