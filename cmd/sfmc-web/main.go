package main

import (
	"flag"
	"html/template"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/adapters/http"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/cache"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/config"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/display"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/analytics"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/content"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/progress"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/titledata"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/ports"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/search"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/symbols"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/usecase"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/web"
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

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

func main() {
	configPath := flag.String("config", "", "optional YAML config path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}

	logger, err := buildLogger(cfg.Logging.Level)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	// Batch source: sqlite mirror when configured, hosted store otherwise.
	var titles ports.TitleData
	if cfg.TitleData.LocalDB != "" {
		local, err := titledata.OpenLocal(cfg.TitleData.LocalDB, cfg.TitleData.Namespace)
		if err != nil {
			logger.Fatal("open local title data", zap.Error(err))
		}
		defer local.Close()
		titles = local
	} else {
		titles = titledata.NewRemote(cfg.TitleData.BaseURL, cfg.TitleData.SecretKey, cfg.TitleData.Namespace, cfg.TitleDataTimeout())
	}

	// Wire providers → use cases → HTTP adapter
	reg := symbols.NewRegistry(logger)
	resolver := display.NewResolver(reg)
	analyticsClient := analytics.New(cfg.Analytics.BaseURL, cfg.AnalyticsTimeout())
	batches := cache.New(cfg.CacheTTL())
	searcher := search.New(analyticsClient, titles, batches, cfg.BatchCounts(), logger)
	contentStore := content.NewStore(cfg.ContentDir)
	progressStore := progress.NewFS(cfg.ProgressDir)
	uc := usecase.NewService(resolver, reg, searcher, analyticsClient, contentStore, progressStore)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		zap.String("addr", cfg.Listen),
		zap.String("content", cfg.ContentDir),
		zap.Bool("local_titledata", cfg.TitleData.LocalDB != ""),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
