package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"status-report-server/internal/infra/httpserver"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/formula"
	"status-report-server/internal/status_report/httpapi"
	"status-report-server/internal/status_report/httpapi/internal"
	"status-report-server/internal/status_report/usecases"
	mockusecases "status-report-server/test/unit/doubles/status_report/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("IndicatorController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockIndicatorService
		recorder *httptest.ResponseRecorder
		router   *http.ServeMux
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockIndicatorService(ctrl)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		httpapi.NewIndicatorController(service).AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	jsonRequest := func(method, target string, body any) *http.Request {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		return httptest.NewRequest(method, target, bytes.NewReader(payload))
	}

	Context("createReportIndicator", func() {
		It("should attach the indicator to the report in the path", func() {
			service.EXPECT().
				CreateIndicator(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, indicator domain.Indicator) (domain.Indicator, error) {
					Expect(*indicator.ReportID).To(Equal(shareddomain.ID("rep-1")))
					Expect(indicator.Sequence).To(Equal(domain.DefaultSequence))
					Expect(indicator.Formula).To(Equal(domain.DefaultFormula))
					indicator.ID = "ind-1"
					return indicator, nil
				})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators", internal.IndicatorRequest{
				Name:      "Revenue",
				ValueKind: "numeric",
			}))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response internal.IndicatorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.ID).To(Equal("ind-1"))
			Expect(*response.ReportID).To(Equal("rep-1"))
			Expect(response.Version).To(Equal(1))
		})

		It("should reject an unknown value kind", func() {
			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators", internal.IndicatorRequest{
				Name:      "Revenue",
				ValueKind: "currency",
			}))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer with the formula position when it does not compile", func() {
			service.EXPECT().CreateIndicator(gomock.Any(), gomock.Any()).
				Return(domain.Indicator{}, &usecases.ValidationError{IndicatorName: "Revenue", Line: 1, Column: 9, Message: "unexpected token"})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators", internal.IndicatorRequest{
				Name:      "Revenue",
				ValueKind: "numeric",
				Formula:   "value = (",
			}))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			var response internal.FormulaValidationResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Column).To(Equal(9))
		})
	})

	Context("createIndicator", func() {
		It("should create a standalone indicator", func() {
			sequence := 3
			service.EXPECT().
				CreateIndicator(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, indicator domain.Indicator) (domain.Indicator, error) {
					Expect(indicator.ReportID).To(BeNil())
					Expect(indicator.Sequence).To(Equal(3))
					return indicator, nil
				})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/indicators", internal.IndicatorRequest{
				Name:      "On budget",
				ValueKind: "boolean",
				Sequence:  &sequence,
			}))
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})
	})

	Context("listIndicators", func() {
		It("should list the indicators of a report", func() {
			service.EXPECT().ListIndicatorsByReport(gomock.Any(), shareddomain.ID("rep-1")).Return([]domain.Indicator{
				{ID: "ind-1", Name: "Revenue", Sequence: 10, ValueKind: domain.ValueKindNumeric},
				{ID: "ind-2", Name: "Summary", Sequence: 20, ValueKind: domain.ValueKindText},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/rep-1/indicators", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse[internal.IndicatorResponse]
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(2))
			Expect(response.Data[1].ValueKind).To(Equal("text"))
			Expect(response.Total).To(Equal(2))
		})

		It("should page through the indicators", func() {
			service.EXPECT().ListIndicatorsByReport(gomock.Any(), shareddomain.ID("rep-1")).Return([]domain.Indicator{
				{ID: "ind-1", Name: "Revenue", Sequence: 10, ValueKind: domain.ValueKindNumeric},
				{ID: "ind-2", Name: "Summary", Sequence: 20, ValueKind: domain.ValueKindText},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/rep-1/indicators?page=2&limit=1", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse[internal.IndicatorResponse]
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].ID).To(Equal("ind-2"))
			Expect(response.TotalPages).To(Equal(2))
		})

		It("should answer not found for an unknown report", func() {
			service.EXPECT().ListIndicatorsByReport(gomock.Any(), gomock.Any()).Return(nil, usecases.ErrReportNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/nope/indicators", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("getIndicator", func() {
		It("should answer not found", func() {
			service.EXPECT().GetIndicator(gomock.Any(), shareddomain.ID("ind-9")).Return(domain.Indicator{}, usecases.ErrIndicatorNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/indicators/ind-9", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("updateIndicator", func() {
		It("should update the indicator named in the path", func() {
			service.EXPECT().
				UpdateIndicator(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, indicator domain.Indicator) (domain.Indicator, error) {
					Expect(indicator.ID).To(Equal(shareddomain.ID("ind-1")))
					Expect(indicator.Formula).To(Equal("value = 42"))
					indicator.Version = 2
					return indicator, nil
				})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPut, "/v1/indicators/ind-1", internal.IndicatorRequest{
				Name:      "Revenue",
				ValueKind: "numeric",
				Formula:   "value = 42",
			}))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.IndicatorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Version).To(Equal(2))
		})
	})

	Context("deleteIndicator", func() {
		It("should answer no content", func() {
			service.EXPECT().DeleteIndicator(gomock.Any(), shareddomain.ID("ind-1")).Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/indicators/ind-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("validateFormula", func() {
		It("should report a valid formula", func() {
			service.EXPECT().ValidateFormula(gomock.Any(), "Revenue", "value = 1").Return(nil)

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/indicators/validate", internal.FormulaValidateRequest{
				Name:    "Revenue",
				Formula: "value = 1",
			}))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.FormulaValidationResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Valid).To(BeTrue())
			Expect(response.BindingsVersion).To(Equal(formula.BindingsVersion))
		})

		It("should describe an invalid formula with its position", func() {
			service.EXPECT().ValidateFormula(gomock.Any(), "Revenue", "self = 1").
				Return(&usecases.ValidationError{IndicatorName: "Revenue", Line: 1, Column: 1, Message: "read-only binding"})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/indicators/validate", internal.FormulaValidateRequest{
				Name:    "Revenue",
				Formula: "self = 1",
			}))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.FormulaValidationResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Valid).To(BeFalse())
			Expect(response.Line).To(Equal(1))
			Expect(response.Message).To(ContainSubstring("read-only binding"))
		})

		It("should fail on unexpected errors", func() {
			service.EXPECT().ValidateFormula(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache unavailable"))

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/indicators/validate", internal.FormulaValidateRequest{Formula: "value = 1"}))
			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
