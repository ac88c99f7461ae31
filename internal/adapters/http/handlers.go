package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"svw.info/npuzzle/internal/domain"
	"svw.info/npuzzle/internal/usecase"
)

func randomSeed() int64 { return time.Now().UnixNano() }

// Handler exposes the solver service as a small JSON API. The limiter
// guards the solve endpoint, which is the only expensive call.
type Handler struct {
	UC            *usecase.Service
	Limiter       *rate.Limiter
	MaxExpansions int
	DefaultAlgo   string
}

func New(uc *usecase.Service, limiter *rate.Limiter, maxExpansions int, defaultAlgo string) *Handler {
	return &Handler{UC: uc, Limiter: limiter, MaxExpansions: maxExpansions, DefaultAlgo: defaultAlgo}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/scramble", h.handleScramble)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
}

// ---- Solve ----

type solveReq struct {
	Start         string `json:"start"`
	Algorithm     string `json:"algorithm,omitempty"`
	MaxExpansions int    `json:"maxExpansions,omitempty"`
}

type solveResp struct {
	Path       []string `json:"path,omitempty"`
	Moves      int      `json:"moves"`
	Expansions int      `json:"expansions"`
	Solved     bool     `json:"solved"`
	DurationMs int64    `json:"durationMs"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	if h.Limiter != nil && !h.Limiter.Allow() {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "rate limit exceeded"})
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	algoName := req.Algorithm
	if algoName == "" {
		algoName = h.DefaultAlgo
	}
	algo, err := domain.ParseAlgorithm(algoName)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	start, err := h.UC.Decode(req.Start)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	limit := req.MaxExpansions
	if limit <= 0 || limit > h.MaxExpansions {
		limit = h.MaxExpansions
	}
	res, st, err := h.UC.Solve(r.Context(), start, algo, limit)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidStart) || errors.Is(err, domain.ErrInvalidState) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Path:       res.Path,
		Moves:      res.Moves,
		Expansions: res.Expansions,
		Solved:     res.Solved,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Scramble ----

type scrambleReq struct {
	Seed int64 `json:"seed,omitempty"`
	Walk int   `json:"walk,omitempty"`
}

type scrambleResp struct {
	State string `json:"state,omitempty"`
	Seed  int64  `json:"seed"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleScramble(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req scrambleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(scrambleResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	s, err := h.UC.Scramble(r.Context(), seed, req.Walk)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(scrambleResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(scrambleResp{State: s.Encode(), Seed: seed})
}

// ---- Validate ----

type validateReq struct {
	State string `json:"state"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.State)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	State string `json:"state"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	s, err := h.UC.Decode(req.State)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), s)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: found, Hint: hint})
}
