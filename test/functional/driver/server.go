package driver

import (
	"fmt"
	"net/http/httptest"

	"status-report-server/internal/infra/auth"
	"status-report-server/internal/infra/cache"
	"status-report-server/internal/infra/httpserver"
	"status-report-server/internal/infra/pubsub"
	"status-report-server/internal/infra/sql"
	projectHTTPAPI "status-report-server/internal/project/httpapi"
	projectPersistence "status-report-server/internal/project/persistence"
	projectUsecases "status-report-server/internal/project/usecases"
	"status-report-server/internal/status_report/catalog"
	"status-report-server/internal/status_report/formula"
	"status-report-server/internal/status_report/httpapi"
	"status-report-server/internal/status_report/persistence"
	"status-report-server/internal/status_report/usecases"
)

const (
	TokenSecret = "functional-secret"
	TokenIssuer = "status-report-server"
)

// Stack is the whole server running in process on an in-memory database
// and broker.
type Stack struct {
	Server        *httptest.Server
	Broker        *pubsub.MemoryBroker
	Authenticator *auth.JWTAuthenticator
}

func StartStack() (*Stack, error) {
	orm, err := sql.NewMemoryORM()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	broker := pubsub.NewMemoryBroker()

	projectRepository, err := projectPersistence.NewProjectRepository(orm)
	if err != nil {
		return nil, err
	}
	reportRepository, err := persistence.NewReportRepository(orm)
	if err != nil {
		return nil, err
	}
	indicatorRepository, err := persistence.NewIndicatorRepository(orm)
	if err != nil {
		return nil, err
	}
	valueRepository, err := persistence.NewValueRepository(pubsub.NewMemoryPublisherFactoryWithBroker(broker), orm)
	if err != nil {
		return nil, err
	}

	valueEventLog, err := persistence.NewValueEventLog(pubsub.NewMemoryConsumerFactoryWithBroker(broker, "functional"))
	if err != nil {
		return nil, err
	}
	if err := valueEventLog.Run(); err != nil {
		return nil, err
	}

	compileCache, err := cache.New(&cache.CacheConfig{Name: "formula", MaxCost: 1_000, NumCounters: 10_000, BufferItems: 64})
	if err != nil {
		return nil, err
	}

	projects := projectUsecases.NewProjectService(projectRepository)
	values := usecases.NewValueService(valueRepository, indicatorRepository, reportRepository)
	indicators := usecases.NewIndicatorService(
		indicatorRepository,
		reportRepository,
		valueRepository,
		values,
		projects,
		usecases.NewEvaluationContextBuilder(projects),
		formula.NewCompiler(compileCache),
	)
	reports := usecases.NewReportService(reportRepository, valueRepository, projects, indicators, catalog.Default())

	authenticator, err := auth.NewJWTAuthenticator(TokenSecret, TokenIssuer)
	if err != nil {
		return nil, err
	}

	server := httpserver.NewServer(
		httpserver.ServerOptions{Authenticator: authenticator},
		projectHTTPAPI.NewProjectController(projects),
		httpapi.NewReportController(reports, indicators, values, projects),
		httpapi.NewIndicatorController(indicators),
		httpapi.NewValueController(values, indicators),
	)

	return &Stack{
		Server:        httptest.NewServer(server.Handler()),
		Broker:        broker,
		Authenticator: authenticator,
	}, nil
}

func (s *Stack) Close() {
	s.Server.Close()
}
