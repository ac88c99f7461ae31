package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"svw.info/npuzzle/internal/generator"
	"svw.info/npuzzle/internal/hint"
	"svw.info/npuzzle/internal/puzzle"
	"svw.info/npuzzle/internal/search"
	"svw.info/npuzzle/internal/usecase"
	"svw.info/npuzzle/internal/validator"
)

func newTestHandler(t *testing.T, limiter *rate.Limiter) *Handler {
	t.Helper()
	model, err := puzzle.New(3)
	require.NoError(t, err)
	engine := search.NewEngine(model, puzzle.Manhattan)
	uc := usecase.NewService(
		engine,
		generator.New(model),
		validator.New(3),
		hint.NewGreedy(model, puzzle.Manhattan),
		model,
	)
	return New(uc, limiter, 100000, "a_star")
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	w := postJSON(t, h.handleSolve, solveReq{Start: "123456708", Algorithm: "a_star"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Solved)
	assert.Equal(t, 1, resp.Moves)
	require.Len(t, resp.Path, 2)
	assert.Equal(t, "123456708", resp.Path[0])
	assert.Equal(t, "123456780", resp.Path[1])
}

func TestSolveEndpointRejectsUnsolvable(t *testing.T) {
	h := newTestHandler(t, nil)

	w := postJSON(t, h.handleSolve, solveReq{Start: "213456780"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "not solvable")
}

func TestSolveEndpointRejectsBadInput(t *testing.T) {
	h := newTestHandler(t, nil)

	w := postJSON(t, h.handleSolve, solveReq{Start: "nonsense!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, h.handleSolve, solveReq{Start: "123456708", Algorithm: "dijkstra"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.handleSolve(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSolveEndpointRateLimited(t *testing.T) {
	// A zero-rate, zero-burst limiter rejects everything.
	h := newTestHandler(t, rate.NewLimiter(0, 0))

	w := postJSON(t, h.handleSolve, solveReq{Start: "123456708"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestScrambleEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	w := postJSON(t, h.handleScramble, scrambleReq{Seed: 7, Walk: 10})
	require.Equal(t, http.StatusOK, w.Code)

	var resp scrambleResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Seed)
	assert.Len(t, resp.State, 9)

	// Same seed, same scramble.
	w2 := postJSON(t, h.handleScramble, scrambleReq{Seed: 7, Walk: 10})
	var resp2 scrambleResp
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.Equal(t, resp.State, resp2.State)
}

func TestScrambleEndpointAcceptsEmptyBody(t *testing.T) {
	// No body at all means "pick a seed for me", not a JSON error.
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	h.handleScramble(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp scrambleResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.NotZero(t, resp.Seed)
	assert.Len(t, resp.State, 9)
}

func TestValidateEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	w := postJSON(t, h.handleValidate, validateReq{State: "056382741"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	w = postJSON(t, h.handleValidate, validateReq{State: "113456780"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 0, resp.Conflicts[0].Row)
	assert.Equal(t, 1, resp.Conflicts[0].Col)
}

func TestHintEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)

	w := postJSON(t, h.handleHint, hintReq{State: "123456708"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp hintResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "right", resp.Hint.Move)
	assert.Equal(t, "123456780", resp.Hint.Next)

	w = postJSON(t, h.handleHint, hintReq{State: "123456780"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
}

func TestRegisterRoutes(t *testing.T) {
	h := newTestHandler(t, nil)
	mux := http.NewServeMux()
	h.Register(mux)

	buf, _ := json.Marshal(solveReq{Start: "123456708"})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(buf))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
