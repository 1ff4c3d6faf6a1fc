package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/arcadelab/parlor/internal/games"
	"github.com/arcadelab/parlor/internal/leaderboard"
	"github.com/arcadelab/parlor/internal/questions"
	"github.com/arcadelab/parlor/internal/session"
	"github.com/arcadelab/parlor/internal/store"
)

// Server handles HTTP requests. Game state flows through it but lives in the
// session store; the engines themselves are stateless.
type Server struct {
	hilo      *games.HiLoEngine
	quiz      *games.QuizEngine
	bank      *questions.Bank
	hiloBoard *leaderboard.Leaderboard
	quizBoard *leaderboard.Leaderboard
	sessions  *session.Store
	logger    *zap.Logger
	startTime time.Time
}

// NewServer creates a new API server over the given record store.
func NewServer(db store.DB, logger *zap.Logger) *Server {
	return &Server{
		hilo:      games.NewHiLoEngine(),
		quiz:      games.NewQuizEngine(),
		bank:      questions.NewBank(db),
		hiloBoard: leaderboard.New(leaderboard.ModeHiLo, db),
		quizBoard: leaderboard.New(leaderboard.ModeQuiz, db),
		sessions:  session.NewStore(),
		logger:    logger,
		startTime: time.Now(),
	}
}

// board returns the leaderboard for a game mode.
func (s *Server) board(mode leaderboard.Mode) *leaderboard.Leaderboard {
	if mode == leaderboard.ModeQuiz {
		return s.quizBoard
	}
	return s.hiloBoard
}

// Routes sets up the HTTP routes with proper middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/hilo/round", s.handleHiLoRound)
		r.Post("/hilo/guess", s.handleHiLoGuess)
		r.Post("/quiz/round", s.handleQuizRound)
		r.Post("/quiz/answer", s.handleQuizAnswer)
		r.Post("/scores", s.handleAddScore)
		r.Get("/scores", s.handleTopScores)
	})

	return r
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON reads a request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
