package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	httpadapter "svw.info/npuzzle/internal/adapters/http"
	"svw.info/npuzzle/internal/config"
	"svw.info/npuzzle/internal/generator"
	"svw.info/npuzzle/internal/hint"
	"svw.info/npuzzle/internal/puzzle"
	"svw.info/npuzzle/internal/search"
	"svw.info/npuzzle/internal/usecase"
	"svw.info/npuzzle/internal/validator"
	"svw.info/npuzzle/pkg/logging"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Infow("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	boardSize := flag.Int("board-size", 0, "board width N (overrides config)")
	heuristicName := flag.String("heuristic", "", "heuristic to use: manhattan|misplaced (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			os.Stderr.WriteString("config: " + err.Error() + "\n")
			os.Exit(1)
		}
		cfg = *loaded
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if *boardSize != 0 {
		cfg.BoardSize = *boardSize
	}
	if *heuristicName != "" {
		cfg.Heuristic = *heuristicName
	}
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		os.Stderr.WriteString("logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	model, err := puzzle.New(cfg.BoardSize)
	if err != nil {
		logger.Errorw("bad board size", "size", cfg.BoardSize, "err", err)
		os.Exit(1)
	}
	heuristic, err := puzzle.HeuristicByName(cfg.Heuristic)
	if err != nil {
		logger.Errorw("bad heuristic", "name", cfg.Heuristic, "err", err)
		os.Exit(1)
	}

	// Wire providers → use cases → HTTP adapter
	engine := search.NewEngine(model, heuristic)
	scrambler := generator.New(model)
	v := validator.New(cfg.BoardSize)
	hinter := hint.NewGreedy(model, heuristic)
	uc := usecase.NewService(engine, scrambler, v, hinter, model)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	h := httpadapter.New(uc, limiter, cfg.MaxExpansions, cfg.DefaultAlgorithm)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Infow("listening",
		"addr", cfg.ListenAddr,
		"board_size", cfg.BoardSize,
		"heuristic", cfg.Heuristic,
		"max_expansions", cfg.MaxExpansions,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorw("server error", "err", err)
		os.Exit(1)
	}
}
