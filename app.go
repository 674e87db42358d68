package aguimock

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"agui_mock/handlers"
	"agui_mock/scenarios"
	"agui_mock/tracing"
)

// Server is the mock AG-UI server. Create one with New(), then call Start()
// to run the HTTP server.
type Server struct {
	host string
	port int

	deps *handlers.Deps
	srv  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithPort sets the listen port (default 8080).
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithHost sets the listen host (default "0.0.0.0").
func WithHost(host string) Option {
	return func(s *Server) { s.host = host }
}

// New creates a new Server with the given options.
func New(opts ...Option) *Server {
	s := &Server{
		host: "0.0.0.0",
		port: 8080,
		deps: &handlers.Deps{},
	}
	for _, o := range opts {
		o(s)
	}

	metrics, err := tracing.NewSessionMetrics()
	if err != nil {
		log.Printf("session metrics disabled: %v", err)
	} else {
		s.deps.Metrics = metrics
	}
	return s
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Handler builds the full HTTP handler: routes, CORS and instrumentation.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, s.deps)

	return otelhttp.NewHandler(corsMiddleware(mux), "agui_mock",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// httpServer builds the http.Server that Start runs.
func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:         s.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // disable for SSE
		IdleTimeout:  120 * time.Second,
		// Let "OPTIONS *" reach corsMiddleware instead of net/http's
		// built-in reply, which carries no CORS headers.
		DisableGeneralOptionsHandler: true,
	}
}

// Start builds routes and runs the HTTP server. It blocks until the server
// is shut down via signal or Shutdown().
func (s *Server) Start() error {
	s.srv = s.httpServer()

	// Graceful shutdown on signal
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.srv.Shutdown(ctx)
	}()

	s.logBanner()

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func (s *Server) logBanner() {
	base := fmt.Sprintf("http://%s", s.Addr())
	log.Printf("%s %s starting on %s", handlers.ServerName, handlers.Version, s.Addr())
	log.Printf("  health check: %s/health", base)
	log.Printf("  scenarios:    %s/scenarios", base)
	log.Printf("  agent API:    %s/api/agent/run", base)
	for _, name := range scenarios.Names() {
		log.Printf("  scenario %q", name)
	}
}

// corsMiddleware allows any origin and answers every OPTIONS preflight with
// 200 and no body.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
