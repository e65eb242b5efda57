package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"status-report-server/internal/infra/httpserver"
	projectDomain "status-report-server/internal/project/domain"
	"status-report-server/internal/project/httpapi/internal"
	"status-report-server/internal/project/usecases"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

const (
	createProjectErrMessage      = "failed to create project"
	getProjectErrMessage         = "failed to get project"
	projectNotFoundErrMessage    = "project not found"
	noAnalyticAccountErrMessage  = "project has no analytic account"
	createSaleOrderErrMessage    = "failed to create sale order"
	createInvoiceErrMessage      = "failed to create invoice"
	createAnalyticLineErrMessage = "failed to create analytic line"
)

func NewProjectController(service usecases.ProjectService) *ProjectController {
	return &ProjectController{
		service: service,
	}
}

var _ httpserver.Controller = &ProjectController{}

type ProjectController struct {
	service usecases.ProjectService
}

func (c *ProjectController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/projects", c.createProject())
	router.Handle("GET /v1/projects/{id}", c.getProject())
	router.Handle("POST /v1/projects/{id}/sale-orders", c.createSaleOrder())
	router.Handle("POST /v1/projects/{id}/invoices", c.createInvoice())
	router.Handle("POST /v1/projects/{id}/analytic-lines", c.createAnalyticLine())
}

func (c *ProjectController) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ProjectCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, createProjectErrMessage, http.StatusBadRequest)
			return
		}

		project, err := projectDomain.NewProjectBuilder().
			WithName(body.Name).
			WithAnalyticAccountID(shareddomain.ID(body.AnalyticAccountID)).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := c.service.CreateProject(r.Context(), project); err != nil {
			slog.Error("creating project", slog.String("error", err.Error()))
			http.Error(w, createProjectErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToProjectResponse(project))
	}
}

func (c *ProjectController) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := c.service.GetProject(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			c.replyWithError(w, err, getProjectErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToProjectResponse(project))
	}
}

func (c *ProjectController) createSaleOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SaleOrderCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, createSaleOrderErrMessage, http.StatusBadRequest)
			return
		}

		order, err := body.ToDomain()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := c.service.AddSaleOrder(r.Context(), shareddomain.ID(r.PathValue("id")), order)
		if err != nil {
			c.replyWithError(w, err, createSaleOrderErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSaleOrderResponse(created))
	}
}

func (c *ProjectController) createInvoice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.InvoiceCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, createInvoiceErrMessage, http.StatusBadRequest)
			return
		}

		invoice, err := body.ToDomain()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := c.service.AddInvoice(r.Context(), shareddomain.ID(r.PathValue("id")), invoice)
		if err != nil {
			c.replyWithError(w, err, createInvoiceErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToInvoiceResponse(created))
	}
}

func (c *ProjectController) createAnalyticLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.AnalyticLineCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, createAnalyticLineErrMessage, http.StatusBadRequest)
			return
		}

		line, err := body.ToDomain()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := c.service.AddAnalyticLine(r.Context(), shareddomain.ID(r.PathValue("id")), line)
		if err != nil {
			c.replyWithError(w, err, createAnalyticLineErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToAnalyticLineResponse(created))
	}
}

func (c *ProjectController) replyWithError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrProjectNotFound):
		http.Error(w, projectNotFoundErrMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrProjectWithoutAnalyticAccount):
		http.Error(w, noAnalyticAccountErrMessage, http.StatusBadRequest)
	case errors.Is(err, projectDomain.ErrInvoiceLinesEmpty),
		errors.Is(err, projectDomain.ErrAnalyticAccountRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
