// internal/httpserver/server.go
//
// HTTP server wiring for headless play.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logs).
//   - Public endpoints: "/", "/health", POST /game/new, GET /results/leaderboard.
//   - Session endpoints (session token required): /game/state, /game/click,
//     /game/reset, /game/frame, DELETE /game.
//
// Notes:
//   - Every mutation of a game goes through store.Update, which serializes
//     clicks on one session.
//   - A won deal is recorded once; recording failures are logged, not returned.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/daily"
	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/results"
	"github.com/robalobadob/memory/internal/store"
	"github.com/robalobadob/memory/internal/viewmodel"
)

// Recorder persists won deals and serves the leaderboard.
type Recorder interface {
	Insert(ctx context.Context, r results.Result) error
	Leaderboard(ctx context.Context, pairs int, date string, limit int) ([]results.LBRow, error)
}

// Options configures a Server.
type Options struct {
	Game         game.Config
	JWTSecret    string
	SessionTTL   time.Duration
	ClientOrigin string
	DailySalt    string
	Measurer     viewmodel.Measurer // text metrics for /game/frame
	Now          func() time.Time   // defaults to time.Now
}

// Server bundles router, session store and results recorder.
type Server struct {
	r       *chi.Mux
	store   store.Store
	results Recorder
	opts    Options
}

var validate = validator.New()

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, rec Recorder, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev_secret_change_me"
	}
	s := &Server{r: chi.NewRouter(), store: st, results: rec, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"memory-go","endpoints":["/health","POST /game/new","POST /game/click","POST /game/reset","GET /game/state","GET /game/frame","GET /results/leaderboard"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession())
		r.Get("/game/state", s.handleState)
		r.Post("/game/click", s.handleClick)
		r.Post("/game/reset", s.handleReset)
		r.Get("/game/frame", s.handleFrame)
		r.Delete("/game", s.handleEnd)
	})

	s.mountResults(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Sweep drops sessions older than the session TTL.
func (s *Server) Sweep(ctx context.Context) int {
	n := s.store.Sweep(ctx, s.opts.Now().Add(-s.opts.SessionTTL))
	if n > 0 {
		log.Info().Int("sessions", n).Msg("swept expired sessions")
	}
	return n
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one line per request through the request-scoped logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("req_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Daily bool `json:"daily"`
}

type newGameRes struct {
	GameID    string             `json:"gameId"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	DailyDate string             `json:"dailyDate,omitempty"`
	View      viewmodel.GameView `json:"view"`
}

// handleNewGame deals a new game, stores the session and hands back a
// session token (also set as a cookie).
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var opts []game.Option
	dailyDate := ""
	if req.Daily {
		now := s.opts.Now()
		dailyDate = daily.DateKey(now)
		opts = append(opts, game.WithSeed(daily.Seed(now, s.opts.DailySalt)))
	}
	g, err := game.New(s.opts.Game, opts...)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "bad_config")
		return
	}

	sess := store.NewSession(g, dailyDate)
	sess.StartedAt = s.opts.Now()
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signSession(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	log.Info().Str("session", sess.ID).Bool("daily", req.Daily).Msg("game started")
	writeJSON(w, http.StatusCreated, newGameRes{
		GameID:    sess.ID,
		Token:     tok,
		ExpiresAt: exp,
		DailyDate: dailyDate,
		View:      viewmodel.NewGameView(g),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var view viewmodel.GameView
	err := s.store.Update(r.Context(), sessionID(r), func(sess *store.Session) error {
		view = viewmodel.NewGameView(sess.Game)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type clickReq struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

type clickRes struct {
	Result game.ClickResult   `json:"result"`
	View   viewmodel.GameView `json:"view"`
}

// handleClick forwards a canvas click to the game and records a win.
func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_click")
		return
	}

	id := sessionID(r)
	p := game.Point{X: *req.X, Y: *req.Y}
	var (
		res    game.ClickResult
		view   viewmodel.GameView
		record *results.Result
	)
	err := s.store.Update(r.Context(), id, func(sess *store.Session) error {
		res = sess.Game.Click(p)
		view = viewmodel.NewGameView(sess.Game)
		if res.Won && !sess.Recorded {
			sess.Recorded = true
			record = &results.Result{
				DealID:    sess.DealID(),
				Pairs:     sess.Game.Config().NumPairs,
				Tries:     sess.Game.Scoreboard.Tries,
				ElapsedMs: s.opts.Now().Sub(sess.StartedAt).Milliseconds(),
				DailyDate: sess.DailyDate,
			}
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	log.Debug().Str("session", id).
		Float64("x", p.X).Float64("y", p.Y).
		Int("exposed", res.Exposed).Bool("matched", res.Matched).Bool("counted", res.Counted).
		Msg("click")

	if record != nil {
		log.Info().Str("session", id).Int("tries", record.Tries).Int64("elapsed_ms", record.ElapsedMs).Msg("game won")
		if s.results != nil {
			if err := s.results.Insert(r.Context(), *record); err != nil {
				log.Warn().Err(err).Str("deal", record.DealID).Msg("record result")
			}
		}
	}

	writeJSON(w, http.StatusOK, clickRes{Result: res, View: view})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var view viewmodel.GameView
	err := s.store.Update(r.Context(), sessionID(r), func(sess *store.Session) error {
		sess.Reset()
		sess.StartedAt = s.opts.Now()
		view = viewmodel.NewGameView(sess.Game)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleFrame returns the display list a canvas would draw for the game.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	var dl *viewmodel.DisplayList
	err := s.store.Update(r.Context(), sessionID(r), func(sess *store.Session) error {
		dl = viewmodel.Render(sess.Game, s.opts.Measurer)
		return nil
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dl)
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), sessionID(r)); err != nil {
		writeStoreError(w, err)
		return
	}
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	http.Error(w, `{"error":"`+code+`"}`, status)
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Msg("store")
		writeError(w, http.StatusInternalServerError, "store_error")
	}
}

// secureCookies mirrors the production switch used for cookie attributes.
func secureCookies() bool { return os.Getenv("APP_ENV") == "production" }
