//go:build wireinject
// +build wireinject

package wire

import (
	"status-report-server/internal/infra/sql"
	"status-report-server/internal/project/httpapi"
	projectPersistence "status-report-server/internal/project/persistence"
	projectUsecases "status-report-server/internal/project/usecases"
	"status-report-server/internal/status_report/catalog"
	"status-report-server/internal/status_report/formula"
	statusHTTPAPI "status-report-server/internal/status_report/httpapi"
	statusPersistence "status-report-server/internal/status_report/persistence"
	"status-report-server/internal/status_report/usecases"

	"github.com/google/wire"
)

var ProjectServiceSet = wire.NewSet(
	projectPersistence.NewProjectRepository,
	wire.Bind(new(projectUsecases.ProjectRepository), new(*projectPersistence.SimpleProjectRepository)),
	projectUsecases.NewProjectService,
	wire.Bind(new(projectUsecases.ProjectService), new(*projectUsecases.SimpleProjectService)),
	wire.Bind(new(usecases.ProjectReader), new(*projectUsecases.SimpleProjectService)),
)

var RepositorySet = wire.NewSet(
	providePubSubFactory,
	providePublisherFactory,
	statusPersistence.NewReportRepository,
	wire.Bind(new(usecases.ReportRepository), new(*statusPersistence.SimpleReportRepository)),
	statusPersistence.NewIndicatorRepository,
	wire.Bind(new(usecases.IndicatorRepository), new(*statusPersistence.SimpleIndicatorRepository)),
	statusPersistence.NewValueRepository,
	wire.Bind(new(usecases.ValueRepository), new(*statusPersistence.SimpleValueRepository)),
)

var ValueServiceSet = wire.NewSet(
	usecases.NewValueService,
	wire.Bind(new(usecases.ValueService), new(*usecases.SimpleValueService)),
)

var IndicatorServiceSet = wire.NewSet(
	ValueServiceSet,
	provideCache,
	formula.NewCompiler,
	usecases.NewEvaluationContextBuilder,
	wire.Bind(new(usecases.EvaluationContextBuilder), new(*usecases.SimpleEvaluationContextBuilder)),
	usecases.NewIndicatorService,
	wire.Bind(new(usecases.IndicatorService), new(*usecases.SimpleIndicatorService)),
)

var ReportServiceSet = wire.NewSet(
	provideCatalog,
	wire.Bind(new(usecases.IndicatorCatalog), new(*catalog.Catalog)),
	usecases.NewReportService,
	wire.Bind(new(usecases.ReportService), new(*usecases.SimpleReportService)),
)

func InitializeDatabase() (sql.ORM, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
	)
	return nil, nil
}

func InitializeProjectController() (*httpapi.ProjectController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		ProjectServiceSet,
		httpapi.NewProjectController,
	)
	return nil, nil
}

func InitializeReportController() (*statusHTTPAPI.ReportController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		ProjectServiceSet,
		RepositorySet,
		IndicatorServiceSet,
		ReportServiceSet,
		statusHTTPAPI.NewReportController,
	)
	return nil, nil
}

func InitializeIndicatorController() (*statusHTTPAPI.IndicatorController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		ProjectServiceSet,
		RepositorySet,
		IndicatorServiceSet,
		statusHTTPAPI.NewIndicatorController,
	)
	return nil, nil
}

func InitializeValueController() (*statusHTTPAPI.ValueController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		ProjectServiceSet,
		RepositorySet,
		IndicatorServiceSet,
		statusHTTPAPI.NewValueController,
	)
	return nil, nil
}

func InitializeValueEventLog() (*statusPersistence.ValueEventLog, error) {
	wire.Build(
		provideAppConfig,
		providePubSubFactory,
		provideConsumerFactory,
		statusPersistence.NewValueEventLog,
	)
	return nil, nil
}
