package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"agui_mock/scenarios"
	"agui_mock/sse"
	"agui_mock/stream"
	"agui_mock/tracing"
)

const (
	ServerName = "AG-UI Mock Server"
	Version    = "1.0.0"
)

// Deps holds shared dependencies injected into handlers.
type Deps struct {
	// Metrics is optional; sessions are not counted when nil.
	Metrics *tracing.SessionMetrics

	// OnSessionEnd, if set, is called after every streaming session with
	// its outcome.
	OnSessionEnd func(id string, res stream.Result)
}

// RegisterRoutes registers the mock server's routes on the given mux.
// Unknown paths and wrong methods on known paths answer 404.
func RegisterRoutes(mux *http.ServeMux, deps *Deps) {
	if deps == nil {
		deps = &Deps{}
	}
	h := &runHandler{deps: deps}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			notFound(w)
			return
		}
		health(w)
	})
	mux.HandleFunc("/scenarios", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			notFound(w)
			return
		}
		listScenarios(w)
	})
	mux.HandleFunc("/api/agent/run", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			notFound(w)
			return
		}
		h.run(w, r)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	})
}

type healthResponse struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

func health(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Server: ServerName, Version: Version})
}

type scenariosResponse struct {
	Scenarios   []string          `json:"scenarios"`
	Description map[string]string `json:"description"`
}

func listScenarios(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, scenariosResponse{
		Scenarios:   scenarios.Names(),
		Description: scenarios.Descriptions(),
	})
}

// --- Run (SSE) ---

type runHandler struct {
	deps *Deps
}

func (h *runHandler) run(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "could not read body: "+err.Error())
		return
	}

	// Validate before SSE headers are sent (NewWriter commits 200)
	req, err := ResolveRunRequest(body)
	if err != nil {
		if errors.Is(err, ErrMalformedRequest) {
			writeJSONError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sseWriter := sse.NewWriter(w)
	if sseWriter == nil {
		writeJSONError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	opts := []stream.Option{}
	if h.deps.Metrics != nil {
		opts = append(opts, stream.WithMetrics(h.deps.Metrics))
	}
	session := stream.NewSession(sseWriter, scenarios.Resolve(req.Scenario), req.Delay, opts...)
	res := session.Run(r.Context())

	tracing.Logger.InfoContext(r.Context(), "session finished",
		"session", session.ID, "scenario", session.Scenario,
		"sent", res.Sent, "total", res.Total, "disconnected", res.Disconnected)
	if h.deps.OnSessionEnd != nil {
		h.deps.OnSessionEnd(session.ID, res)
	}
}

func notFound(w http.ResponseWriter) {
	writeJSONError(w, http.StatusNotFound, "Not Found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
