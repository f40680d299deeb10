// internal/httpserver/server.go
//
// HTTP server wiring for the guess-number page.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts,
//     JSON content type, CORS).
//   - Page endpoints: GET / renders the form, POST / is the no-script fallback.
//   - API endpoints: POST /guess evaluates one input and returns the message;
//     POST /check_guess is the older form-only variant (field "guess").
//   - Request bodies are capped at maxBodyBytes.
//   - Diagnostics: /health, /stats (optionally ?date=YYYY-MM-DD).
//
// Notes:
//   - Every evaluation answers 200. Empty and non-numeric input are ordinary
//     messages, not HTTP errors.
//   - Recording the outcome tally is best effort; failures are only logged.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnum/assets"
	"github.com/robalobadob/guessnum/internal/game"
	"github.com/robalobadob/guessnum/internal/store"
)

var pageTmpl = template.Must(template.ParseFS(assets.FS, assets.PageTemplate))

// maxBodyBytes caps every request body read by the handlers.
const maxBodyBytes = 1 << 16

// Options configures a Server. Zero values fall back to sensible defaults.
type Options struct {
	Evaluator      *game.Evaluator // nil → crypto-random evaluator
	Store          store.Store     // nil → in-memory tally
	ClientOrigin   string          // CORS origin; "" → http://localhost:5173
	RequestTimeout time.Duration   // 0 → 10s
	Logger         *zerolog.Logger // nil → global zerolog logger
}

// Server bundles router, evaluator, and tally store.
type Server struct {
	r     *chi.Mux
	eval  *game.Evaluator
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Evaluator == nil {
		opts.Evaluator = game.NewEvaluator(nil)
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Server{r: chi.NewRouter(), eval: opts.Evaluator, store: opts.Store}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(logger))            // request-scoped logger
	s.r.Use(accessLog)                          // one line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	// --- page ---
	s.r.Get("/", s.handlePage)
	s.r.Post("/", s.handlePageSubmit)

	// --- api ---
	s.r.Post("/guess", s.handleGuess)
	s.r.Post("/check_guess", s.handleCheckGuess) // legacy form endpoint, field "guess"

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/stats", s.handleStats)

	// JSON 404/405 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then drains in-flight
// requests for up to five seconds.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// accessLog writes one structured line per request via the hlog logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("request_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- PAGE --------------------------------------

// pageData feeds assets/index.html.tmpl.
type pageData struct {
	Min, Max int
	Input    string // echoed back into #userInput
	Result   string // text of #result
}

// handlePage renders the empty form.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, pageData{Min: game.MinTarget, Max: game.MaxTarget})
}

// handlePageSubmit evaluates the posted userInput field and renders the
// page with #result filled in.
func (s *Server) handlePageSubmit(w http.ResponseWriter, r *http.Request) {
	input, ok := formValue(w, r, "userInput")
	if !ok {
		return
	}
	res := s.evaluate(r, input)
	s.renderPage(w, r, pageData{Min: game.MinTarget, Max: game.MaxTarget, Input: input, Result: res.Message})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render page")
	}
}

// ------------------------------- GUESS -------------------------------------

// guessReq/Res payloads for POST /guess.
type guessReq struct {
	Input string `json:"input"`
}
type guessRes struct {
	Message string       `json:"message"`
	Outcome game.Outcome `json:"outcome"`
}

// handleGuess accepts either JSON {"input": "..."} or a form-encoded
// userInput field and returns the evaluator's message.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var input string
	if isForm(r) {
		v, ok := formValue(w, r, "userInput")
		if !ok {
			return
		}
		input = v
	} else {
		var req guessReq
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if tooLarge(err) {
				writeError(w, http.StatusRequestEntityTooLarge, "too_large")
				return
			}
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
		input = req.Input
	}

	res := s.evaluate(r, input)
	_ = json.NewEncoder(w).Encode(guessRes{Message: res.Message, Outcome: res.Outcome})
}

// handleCheckGuess evaluates the form field "guess".
func (s *Server) handleCheckGuess(w http.ResponseWriter, r *http.Request) {
	input, ok := formValue(w, r, "guess")
	if !ok {
		return
	}
	res := s.evaluate(r, input)
	_ = json.NewEncoder(w).Encode(guessRes{Message: res.Message, Outcome: res.Outcome})
}

// formValue parses a size-limited form body and returns field.
// On failure it has already written the error response.
func formValue(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		if tooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large")
			return "", false
		}
		writeError(w, http.StatusBadRequest, "bad_form")
		return "", false
	}
	return r.PostForm.Get(field), true
}

// tooLarge reports whether err came from hitting maxBodyBytes.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// evaluate runs the evaluator and records the outcome (best effort).
func (s *Server) evaluate(r *http.Request, input string) game.Result {
	res := s.eval.Evaluate(input)
	logger := hlog.FromRequest(r)
	logger.Debug().
		Str("outcome", string(res.Outcome)).
		Int("target", res.Target).
		Msg("guess evaluated")

	if err := s.store.Record(r.Context(), store.NewEvaluation(res.Outcome)); err != nil {
		logger.Warn().Err(err).Str("outcome", string(res.Outcome)).Msg("record evaluation")
	}
	return res
}

// isForm reports whether the request body is form-encoded.
func isForm(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mt == "application/x-www-form-urlencoded"
}

// ------------------------------- STATS -------------------------------------

// handleStats returns the outcome tally, all-time or for ?date=YYYY-MM-DD.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" && !store.ValidDateKey(date) {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	t, err := s.store.Tally(r.Context(), date)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("tally")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(t)
}

// ------------------------------- small util --------------------------------

// writeError sends {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
