package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/arcadelab/parlor/internal/games"
	"github.com/arcadelab/parlor/internal/questions"
	"github.com/arcadelab/parlor/internal/store"
)

// testClient drives the API with one player's cookie jar.
type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newTestClient(t *testing.T) (*testClient, *store.SQLiteDB) {
	t.Helper()

	db, err := store.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if _, err := db.ReplaceQuestions(questions.DefaultCatalog()); err != nil {
		t.Fatalf("Failed to seed questions: %v", err)
	}

	server := NewServer(db, zap.NewNop())
	return &testClient{t: t, handler: server.Routes()}, db
}

func (c *testClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("Failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return v
}

func TestHealthEndpoint(t *testing.T) {
	client, _ := newTestClient(t)

	w := client.do("GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	resp := decode[HealthResponse](t, w)
	if resp.Status != "healthy" {
		t.Errorf("Expected healthy status, got %q", resp.Status)
	}
	if resp.Version == "" {
		t.Error("Expected version in response")
	}
}

func TestScoreSubmitAndList(t *testing.T) {
	client, _ := newTestClient(t)

	scores := []struct {
		name  string
		score int
	}{
		{"alice", 150},
		{"bob", 300},
		{"carol", -50},
	}
	for _, s := range scores {
		score := s.score
		w := client.do("POST", "/api/v1/scores", ScoreRequest{Name: s.name, Score: &score, Game: "hilo"})
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := client.do("GET", "/api/v1/scores?game=hilo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	resp := decode[ScoresResponse](t, w)
	if len(resp.Scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(resp.Scores))
	}
	if resp.Scores[0].Name != "bob" {
		t.Errorf("Expected bob first, got %q", resp.Scores[0].Name)
	}
	if resp.Scores[2].Score != -50 {
		t.Errorf("Expected -50 last, got %d", resp.Scores[2].Score)
	}

	// The quiz board is a separate store and stays empty.
	w = client.do("GET", "/api/v1/scores?game=quiz", nil)
	resp = decode[ScoresResponse](t, w)
	if len(resp.Scores) != 0 {
		t.Errorf("Expected empty quiz board, got %d scores", len(resp.Scores))
	}
}

func TestScoreSubmitValidation(t *testing.T) {
	client, _ := newTestClient(t)
	score := 100

	tests := []struct {
		name string
		req  ScoreRequest
	}{
		{"missing name", ScoreRequest{Score: &score, Game: "hilo"}},
		{"missing score", ScoreRequest{Name: "alice", Game: "hilo"}},
		{"unknown game", ScoreRequest{Name: "alice", Score: &score, Game: "snake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := client.do("POST", "/api/v1/scores", tt.req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}
			resp := decode[APIError](t, w)
			if resp.Type != ErrTypeInvalidInput {
				t.Errorf("Expected error type %q, got %q", ErrTypeInvalidInput, resp.Type)
			}
		})
	}
}

func TestScoreListLimitValidation(t *testing.T) {
	client, _ := newTestClient(t)

	w := client.do("GET", "/api/v1/scores?game=hilo&limit=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestHiLoRound(t *testing.T) {
	client, _ := newTestClient(t)

	w := client.do("POST", "/api/v1/hilo/round", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(client.cookies) == 0 {
		t.Error("Expected a session cookie on first contact")
	}

	resp := decode[HiLoRoundResponse](t, w)
	if resp.Points != games.HiLoStartPoints || resp.ErrorsRemaining != games.StartErrors {
		t.Errorf("Expected fresh session values, got %+v", resp)
	}
	if resp.NumberFirst < 1 || resp.NumberFirst > 10 || resp.NumberSecond < 1 || resp.NumberSecond > 10 {
		t.Errorf("Numbers out of range: %d, %d", resp.NumberFirst, resp.NumberSecond)
	}
	if resp.NumberFirst == resp.NumberSecond {
		t.Errorf("Numbers must differ, both are %d", resp.NumberFirst)
	}
}

func TestHiLoGuessOutcomes(t *testing.T) {
	client, _ := newTestClient(t)

	w := client.do("POST", "/api/v1/hilo/guess", HiLoGuessRequest{NumberFirst: 3, NumberSecond: 7, Guess: "Higher"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[HiLoGuessResponse](t, w)
	if resp.Result != string(games.OutcomeCorrect) {
		t.Errorf("Expected correct, got %q", resp.Result)
	}
	if resp.Points != 150 || resp.ErrorsRemaining != 3 {
		t.Errorf("Expected 150 points / 3 errors, got %d / %d", resp.Points, resp.ErrorsRemaining)
	}

	w = client.do("POST", "/api/v1/hilo/guess", HiLoGuessRequest{NumberFirst: 3, NumberSecond: 7, Guess: "Lower"})
	resp = decode[HiLoGuessResponse](t, w)
	if resp.Result != string(games.OutcomeIncorrect) {
		t.Errorf("Expected incorrect, got %q", resp.Result)
	}
	if resp.Points != 100 || resp.ErrorsRemaining != 2 {
		t.Errorf("Expected 100 points / 2 errors, got %d / %d", resp.Points, resp.ErrorsRemaining)
	}
}

func TestHiLoGuessInvalid(t *testing.T) {
	client, _ := newTestClient(t)

	w := client.do("POST", "/api/v1/hilo/guess", HiLoGuessRequest{NumberFirst: 3, NumberSecond: 7, Guess: "Sideways"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	resp := decode[APIError](t, w)
	if resp.Type != ErrTypeInvalidInput {
		t.Errorf("Expected error type %q, got %q", ErrTypeInvalidInput, resp.Type)
	}
}

func TestHiLoGameOverFlow(t *testing.T) {
	client, _ := newTestClient(t)

	// Burn the whole error budget with known-wrong guesses.
	for i := 0; i < games.StartErrors; i++ {
		w := client.do("POST", "/api/v1/hilo/guess", HiLoGuessRequest{NumberFirst: 3, NumberSecond: 7, Guess: "Lower"})
		if w.Code != http.StatusOK {
			t.Fatalf("guess %d: expected status 200, got %d", i, w.Code)
		}
	}

	w := client.do("POST", "/api/v1/hilo/round", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[HiLoRoundResponse](t, w)
	if !resp.GameOver {
		t.Fatal("Expected game over")
	}
	if resp.FinalScore == nil || *resp.FinalScore != games.HiLoStartPoints-games.StartErrors*games.PointsPerRound {
		t.Errorf("Expected final score %d, got %v", games.HiLoStartPoints-games.StartErrors*games.PointsPerRound, resp.FinalScore)
	}

	// The session is reset; the next round starts a fresh game.
	w = client.do("POST", "/api/v1/hilo/round", nil)
	resp = decode[HiLoRoundResponse](t, w)
	if resp.GameOver {
		t.Error("Expected a fresh game after finalize")
	}
	if resp.Points != games.HiLoStartPoints || resp.ErrorsRemaining != games.StartErrors {
		t.Errorf("Expected fresh session values, got %+v", resp)
	}
}

func TestQuizRoundAndAnswer(t *testing.T) {
	client, db := newTestClient(t)

	w := client.do("POST", "/api/v1/quiz/round", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	round := decode[QuizRoundResponse](t, w)
	if round.QuestionID <= 0 || round.Question == "" {
		t.Fatalf("Expected a question, got %+v", round)
	}
	if round.RoundsPlayed != 1 {
		t.Errorf("Expected 1 round played, got %d", round.RoundsPlayed)
	}

	// The test can see the stored answer; players cannot.
	q, err := db.GetQuestion(round.QuestionID)
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}

	w = client.do("POST", "/api/v1/quiz/answer", QuizAnswerRequest{QuestionID: round.QuestionID, Answer: "  " + q.Answer + "  "})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	answer := decode[QuizAnswerResponse](t, w)
	if answer.Result != string(games.OutcomeCorrect) {
		t.Errorf("Expected correct for padded answer, got %q", answer.Result)
	}
	if answer.Points != games.PointsPerRound {
		t.Errorf("Expected %d points, got %d", games.PointsPerRound, answer.Points)
	}
}

func TestQuizNoRepeatsAcrossRounds(t *testing.T) {
	client, db := newTestClient(t)

	seen := make(map[int64]bool)
	for i := 0; i < games.QuizRoundCap; i++ {
		w := client.do("POST", "/api/v1/quiz/round", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("round %d: expected status 200, got %d: %s", i, w.Code, w.Body.String())
		}
		round := decode[QuizRoundResponse](t, w)
		if round.GameOver {
			t.Fatalf("round %d: unexpected game over", i)
		}
		if seen[round.QuestionID] {
			t.Fatalf("question %d repeated within one game", round.QuestionID)
		}
		seen[round.QuestionID] = true

		q, err := db.GetQuestion(round.QuestionID)
		if err != nil {
			t.Fatalf("GetQuestion failed: %v", err)
		}
		w = client.do("POST", "/api/v1/quiz/answer", QuizAnswerRequest{QuestionID: round.QuestionID, Answer: q.Answer})
		if w.Code != http.StatusOK {
			t.Fatalf("answer %d: expected status 200, got %d", i, w.Code)
		}
	}

	// Ten distinct questions played: the round cap ends the game.
	w := client.do("POST", "/api/v1/quiz/round", nil)
	round := decode[QuizRoundResponse](t, w)
	if !round.GameOver {
		t.Fatal("Expected game over at the round cap")
	}
	wantScore := games.QuizRoundCap * games.PointsPerRound
	if round.FinalScore == nil || *round.FinalScore != wantScore {
		t.Errorf("Expected final score %d, got %v", wantScore, round.FinalScore)
	}

	// A fresh game reseeds and may ask anything again.
	w = client.do("POST", "/api/v1/quiz/round", nil)
	round = decode[QuizRoundResponse](t, w)
	if round.GameOver {
		t.Error("Expected a fresh game after finalize")
	}
	if round.Points != games.QuizStartPoints || round.ErrorsRemaining != games.StartErrors {
		t.Errorf("Expected fresh session values, got %+v", round)
	}
}

func TestQuizGameOverOnErrors(t *testing.T) {
	client, _ := newTestClient(t)

	for i := 0; i < games.StartErrors; i++ {
		w := client.do("POST", "/api/v1/quiz/round", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("round %d: expected status 200, got %d", i, w.Code)
		}
		round := decode[QuizRoundResponse](t, w)

		w = client.do("POST", "/api/v1/quiz/answer", QuizAnswerRequest{
			QuestionID: round.QuestionID,
			Answer:     fmt.Sprintf("definitely wrong %d", i),
		})
		answer := decode[QuizAnswerResponse](t, w)
		if answer.Result != string(games.OutcomeIncorrect) {
			t.Fatalf("Expected incorrect, got %q", answer.Result)
		}
	}

	w := client.do("POST", "/api/v1/quiz/round", nil)
	round := decode[QuizRoundResponse](t, w)
	if !round.GameOver {
		t.Fatal("Expected game over after spending the error budget")
	}
	if round.FinalScore == nil || *round.FinalScore != -games.StartErrors*games.PointsPerRound {
		t.Errorf("Expected final score %d, got %v", -games.StartErrors*games.PointsPerRound, round.FinalScore)
	}
}

func TestQuizAnswerValidation(t *testing.T) {
	client, _ := newTestClient(t)

	w := client.do("POST", "/api/v1/quiz/answer", QuizAnswerRequest{QuestionID: 1, Answer: "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	w = client.do("POST", "/api/v1/quiz/answer", QuizAnswerRequest{QuestionID: 999999, Answer: "anything"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	resp := decode[APIError](t, w)
	if resp.Type != ErrTypeNotFound {
		t.Errorf("Expected error type %q, got %q", ErrTypeNotFound, resp.Type)
	}
}
