package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"status-report-server/internal/infra/httpserver"
	projectUsecases "status-report-server/internal/project/usecases"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/httpapi/internal"
	"status-report-server/internal/status_report/usecases"
)

const (
	reportNotFoundErrMessage    = "status report not found"
	indicatorNotFoundErrMessage = "indicator not found"
	valueNotFoundErrMessage     = "indicator value not found"
	projectNotFoundErrMessage   = "project not found"
	permissionDeniedErrMessage  = "permission denied"
	duplicatedValueErrMessage   = "a value already exists for this indicator and report"
	invalidBodyErrMessage       = "invalid request body"
	indicatorOutsideErrMessage  = "indicator does not belong to this status report"
	formulaExecutionErrMessage  = "formula execution failed"
	createReportErrMessage      = "failed to create status report"
	getReportErrMessage         = "failed to get status report"
	updateReportErrMessage      = "failed to update status report"
	deleteReportErrMessage      = "failed to delete status report"
	listValuesErrMessage        = "failed to list indicator values"
	computeValueErrMessage      = "failed to compute indicator value"
	createIndicatorErrMessage   = "failed to create indicator"
	getIndicatorErrMessage      = "failed to get indicator"
	listIndicatorsErrMessage    = "failed to list indicators"
	updateIndicatorErrMessage   = "failed to update indicator"
	deleteIndicatorErrMessage   = "failed to delete indicator"
	validateFormulaErrMessage   = "failed to validate formula"
	getValueErrMessage          = "failed to get indicator value"
	updateValueErrMessage       = "failed to update indicator value"
	recomputeValueErrMessage    = "failed to recompute indicator value"
)

// replyWithError maps usecase and domain errors to status codes. Errors
// that are not recognised are logged and answered with fallback.
func replyWithError(w http.ResponseWriter, err error, fallback string) {
	var validation *usecases.ValidationError
	switch {
	case errors.As(err, &validation):
		response := internal.NewFormulaValidationResponse()
		response.Valid = false
		response.Indicator = validation.IndicatorName
		response.Line = validation.Line
		response.Column = validation.Column
		response.Message = validation.Error()
		httpserver.ReplyJSONResponse(w, http.StatusBadRequest, response)
	case errors.Is(err, usecases.ErrReportNotFound):
		http.Error(w, reportNotFoundErrMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrIndicatorNotFound):
		http.Error(w, indicatorNotFoundErrMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrValueNotFound):
		http.Error(w, valueNotFoundErrMessage, http.StatusNotFound)
	case errors.Is(err, projectUsecases.ErrProjectNotFound):
		http.Error(w, projectNotFoundErrMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrPermissionDenied):
		http.Error(w, permissionDeniedErrMessage, http.StatusForbidden)
	case errors.Is(err, usecases.ErrDuplicatedValue):
		http.Error(w, duplicatedValueErrMessage, http.StatusConflict)
	case errors.Is(err, usecases.ErrFormulaExecution):
		slog.Warn(formulaExecutionErrMessage, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrIndicatorNameRequired),
		errors.Is(err, domain.ErrIndicatorRequired),
		errors.Is(err, domain.ErrInvalidValueKind),
		errors.Is(err, domain.ErrValueKindMismatch),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrReportProjectRequired),
		errors.Is(err, domain.ErrReportDateRequired),
		errors.Is(err, projectUsecases.ErrProjectWithoutAnalyticAccount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
