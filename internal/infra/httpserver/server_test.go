package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"status-report-server/internal/infra/auth"
	shareddomain "status-report-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type stubAuthenticator struct {
	actor shareddomain.Actor
	err   error
}

func (s stubAuthenticator) Authenticate(context.Context, string) (shareddomain.Actor, error) {
	return s.actor, s.err
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add a span to the request context", func() {
			handler := createTracingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(GetSpanFromContext(r).SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusAccepted)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusAccepted))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			gomega.Expect(recorder.Ended()[0].Name()).To(gomega.Equal("http.request"))
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a no-op span when the request has none", func() {
			span := GetSpanFromContext(httptest.NewRequest(http.MethodGet, "/test", nil))
			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("AuthMiddleware", func() {
		var captured shareddomain.Actor

		handlerWith := func(authenticator auth.Authenticator) http.Handler {
			return createAuthMiddleware(authenticator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = auth.ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
		}

		ginkgo.BeforeEach(func() {
			captured = shareddomain.Actor{}
		})

		ginkgo.It("should continue as anonymous without a token", func() {
			rec := httptest.NewRecorder()
			handlerWith(stubAuthenticator{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(captured.String()).To(gomega.Equal("anonymous"))
		})

		ginkgo.It("should store the authenticated actor", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()

			handlerWith(stubAuthenticator{actor: shareddomain.SystemActor()}).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(captured.IsPrivileged()).To(gomega.BeTrue())
		})

		ginkgo.It("should reject tokens that do not verify", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()

			handlerWith(stubAuthenticator{err: errors.New("bad")}).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should reject malformed headers", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Basic abc")
			rec := httptest.NewRecorder()

			handlerWith(stubAuthenticator{}).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Context("NewServer", func() {
		ginkgo.It("should serve the health check through the full chain", func() {
			server := NewServer(ServerOptions{Address: ":0"})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"status":"success"`))
		})
	})
})
