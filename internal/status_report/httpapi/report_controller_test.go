package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"status-report-server/internal/infra/auth"
	"status-report-server/internal/infra/httpserver"
	projectDomain "status-report-server/internal/project/domain"
	projectUsecases "status-report-server/internal/project/usecases"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/httpapi"
	"status-report-server/internal/status_report/httpapi/internal"
	"status-report-server/internal/status_report/usecases"
	mockproject "status-report-server/test/unit/doubles/project/usecases"
	mockusecases "status-report-server/test/unit/doubles/status_report/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ReportController", func() {
	var (
		ctrl           *gomock.Controller
		reports        *mockusecases.MockReportService
		indicators     *mockusecases.MockIndicatorService
		values         *mockusecases.MockValueService
		projects       *mockproject.MockProjectService
		recorder       *httptest.ResponseRecorder
		router         *http.ServeMux
		reportDate     time.Time
		existingReport domain.Report
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		reports = mockusecases.NewMockReportService(ctrl)
		indicators = mockusecases.NewMockIndicatorService(ctrl)
		values = mockusecases.NewMockValueService(ctrl)
		projects = mockproject.NewMockProjectService(ctrl)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		httpapi.NewReportController(reports, indicators, values, projects).AddRoutes(router)

		reportDate = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		existingReport = domain.Report{ID: "rep-1", ProjectID: "prj-1", Date: reportDate, Name: "March"}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	jsonRequest := func(method, target string, body any) *http.Request {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		return httptest.NewRequest(method, target, bytes.NewReader(payload))
	}

	Context("createReport", func() {
		It("should create the report and install the catalog when asked", func() {
			reports.EXPECT().
				CreateReport(gomock.Any(), gomock.Any(), true).
				DoAndReturn(func(_ any, report domain.Report, _ bool) (domain.Report, error) {
					Expect(report.ProjectID).To(Equal(shareddomain.ID("prj-1")))
					Expect(report.Date).To(Equal(reportDate))
					report.ID = "rep-1"
					return report, nil
				})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports", internal.ReportCreateRequest{
				ProjectID:      "prj-1",
				Date:           "2024-03-31",
				InstallCatalog: true,
			}))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response internal.ReportResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.ID).To(Equal("rep-1"))
			Expect(response.Date).To(Equal("2024-03-31"))
			Expect(response.Name).To(Equal("Status report 2024-03-31"))
		})

		It("should reject a malformed date", func() {
			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports", internal.ReportCreateRequest{
				ProjectID: "prj-1",
				Date:      "31/03/2024",
			}))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a report without a project", func() {
			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports", internal.ReportCreateRequest{
				Date: "2024-03-31",
			}))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map a missing project to not found", func() {
			reports.EXPECT().CreateReport(gomock.Any(), gomock.Any(), false).
				Return(domain.Report{}, fmt.Errorf("loading project: %w", projectUsecases.ErrProjectNotFound))

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports", internal.ReportCreateRequest{
				ProjectID: "prj-404",
				Date:      "2024-03-31",
			}))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should describe the failing formula of a catalog indicator", func() {
			reports.EXPECT().CreateReport(gomock.Any(), gomock.Any(), true).
				Return(domain.Report{}, &usecases.ValidationError{IndicatorName: "Margin", Line: 2, Column: 5, Message: "unexpected token"})

			router.ServeHTTP(recorder, jsonRequest(http.MethodPost, "/v1/status-reports", internal.ReportCreateRequest{
				ProjectID:      "prj-1",
				Date:           "2024-03-31",
				InstallCatalog: true,
			}))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			var response internal.FormulaValidationResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Valid).To(BeFalse())
			Expect(response.Indicator).To(Equal("Margin"))
			Expect(response.Line).To(Equal(2))
			Expect(response.Column).To(Equal(5))
		})
	})

	Context("getReport", func() {
		It("should return the report", func() {
			reports.EXPECT().GetReport(gomock.Any(), shareddomain.ID("rep-1")).Return(existingReport, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/rep-1", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.ReportResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.ProjectID).To(Equal("prj-1"))
		})

		It("should answer not found", func() {
			reports.EXPECT().GetReport(gomock.Any(), shareddomain.ID("missing")).Return(domain.Report{}, usecases.ErrReportNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/missing", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should hide unexpected errors", func() {
			reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Return(domain.Report{}, errors.New("connection reset"))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/rep-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})

	Context("updateReport", func() {
		It("should pass the new date and keep the project", func() {
			newDate := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
			reports.EXPECT().
				UpdateReport(gomock.Any(), shareddomain.ID("rep-1"), shareddomain.ID(""), newDate).
				Return(domain.Report{ID: "rep-1", ProjectID: "prj-1", Date: newDate}, nil)

			router.ServeHTTP(recorder, jsonRequest(http.MethodPut, "/v1/status-reports/rep-1", internal.ReportUpdateRequest{Date: "2024-04-30"}))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.ReportResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Date).To(Equal("2024-04-30"))
		})
	})

	Context("deleteReport", func() {
		It("should answer no content", func() {
			reports.EXPECT().DeleteReport(gomock.Any(), shareddomain.ID("rep-1")).Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/status-reports/rep-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("listValues", func() {
		It("should render every value of the report", func() {
			amount := 1250.5
			values.EXPECT().ListByReport(gomock.Any(), shareddomain.ID("rep-1")).Return([]domain.IndicatorValue{
				{ID: "val-1", IndicatorID: "ind-1", Name: "Revenue", ValueKind: domain.ValueKindNumeric, Numeric: &amount, Color: domain.ColorGreen},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status-reports/rep-1/values", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse[internal.ValueResponse]
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].DisplayValue).To(Equal("1250.5"))
			Expect(response.Data[0].Color).To(Equal("#00FF00"))
		})
	})

	Context("computeValue", func() {
		var indicator domain.Indicator

		BeforeEach(func() {
			reportID := shareddomain.ID("rep-1")
			indicator = domain.Indicator{ID: "ind-1", Name: "Revenue", ReportID: &reportID, ValueKind: domain.ValueKindNumeric}
		})

		It("should compute under the report creation grant with the caller as actor", func() {
			caller := shareddomain.Actor{ID: "u-1", Role: shareddomain.RoleUser}
			project := projectDomain.Project{ID: "prj-1", Name: "Website"}

			reports.EXPECT().GetReport(gomock.Any(), shareddomain.ID("rep-1")).Return(existingReport, nil)
			indicators.EXPECT().GetIndicator(gomock.Any(), shareddomain.ID("ind-1")).Return(indicator, nil)
			projects.EXPECT().GetProject(gomock.Any(), shareddomain.ID("prj-1")).Return(project, nil)
			indicators.EXPECT().
				ComputeValue(gomock.Any(), caller, indicator, project, reportDate, map[string]any{"target": 1000.0}).
				DoAndReturn(func(ctx context.Context, _ shareddomain.Actor, _ domain.Indicator, _ projectDomain.Project, _ time.Time, _ map[string]any) (domain.IndicatorValue, error) {
					Expect(usecases.IsStatusReportCreation(ctx)).To(BeTrue())
					return domain.IndicatorValue{ID: "val-1", IndicatorID: "ind-1", Color: domain.ColorGreen}, nil
				})

			req := jsonRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators/ind-1/compute", internal.ComputeRequest{
				Bindings: map[string]any{"target": 1000.0},
			})
			req = req.WithContext(auth.WithActor(req.Context(), caller))
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("should accept an empty body", func() {
			reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Return(existingReport, nil)
			indicators.EXPECT().GetIndicator(gomock.Any(), gomock.Any()).Return(indicator, nil)
			projects.EXPECT().GetProject(gomock.Any(), gomock.Any()).Return(projectDomain.Project{ID: "prj-1"}, nil)
			indicators.EXPECT().ComputeValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), reportDate, gomock.Nil()).
				Return(domain.IndicatorValue{ID: "val-1"}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators/ind-1/compute", nil))
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("should refuse an indicator of another report", func() {
			other := shareddomain.ID("rep-2")
			indicator.ReportID = &other
			reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Return(existingReport, nil)
			indicators.EXPECT().GetIndicator(gomock.Any(), gomock.Any()).Return(indicator, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators/ind-1/compute", nil))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer unprocessable when the formula fails", func() {
			reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Return(existingReport, nil)
			indicators.EXPECT().GetIndicator(gomock.Any(), gomock.Any()).Return(indicator, nil)
			projects.EXPECT().GetProject(gomock.Any(), gomock.Any()).Return(projectDomain.Project{ID: "prj-1"}, nil)
			indicators.EXPECT().ComputeValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.IndicatorValue{}, fmt.Errorf("%w: indicator %q: %w", usecases.ErrFormulaExecution, "Revenue", errors.New("division by zero")))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators/ind-1/compute", nil))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring("division by zero"))
		})

		It("should answer conflict when the value already exists", func() {
			reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Return(existingReport, nil)
			indicators.EXPECT().GetIndicator(gomock.Any(), gomock.Any()).Return(indicator, nil)
			projects.EXPECT().GetProject(gomock.Any(), gomock.Any()).Return(projectDomain.Project{ID: "prj-1"}, nil)
			indicators.EXPECT().ComputeValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.IndicatorValue{}, usecases.ErrDuplicatedValue)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/status-reports/rep-1/indicators/ind-1/compute", nil))
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})
})
