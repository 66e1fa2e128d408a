package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/hansaki/quizforge/internal/async"
	"github.com/hansaki/quizforge/internal/cache"
	"github.com/hansaki/quizforge/internal/common"
	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/export"
	"github.com/hansaki/quizforge/internal/extract"
	"github.com/hansaki/quizforge/internal/importer"
	"github.com/hansaki/quizforge/internal/ingest"
	"github.com/hansaki/quizforge/internal/link"
	"github.com/hansaki/quizforge/internal/llm/openai"
	"github.com/hansaki/quizforge/internal/pdf"
	repo "github.com/hansaki/quizforge/internal/repository"
	"github.com/hansaki/quizforge/internal/storage"
)

const usage = `usage: quizforge <command> [flags]

commands:
  import <file.pdf>     import one study document
  scan <dir>            import every document under a directory
  watch <dir> [dir...]  watch directories and import documents as they appear
  export                export questions to an XLSX workbook
`

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", "error", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := buildApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := run(ctx, app, command, args, logger); err != nil {
		logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

type application struct {
	ingest *ingest.Service
	export *export.Service
	logger *slog.Logger
}

func buildApp(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*application, func(), error) {
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanups := []func(){func() { repo.Close(entc, pool, logger) }}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if err := repo.HealthCheck(ctx, pool, 5*cfg.Database.DialTimeout, logger); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("database health: %w", err)
	}

	questionsRepo := repo.NewQuestionRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)
	linksRepo := repo.NewImageLinkRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)

	oracle := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		VisionModel: cfg.LLM.VisionModel,
		EmbedModel:  cfg.LLM.EmbedModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		RateLimit:   rate.Limit(cfg.LLM.RateLimit),
	}, logger)

	extractionCache, err := cache.Open(cfg.Import.CachePath, logger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("extraction cache: %w", err)
	}
	cleanups = append(cleanups, func() { _ = extractionCache.Close() })

	blobs, err := storage.NewLocalStorage(cfg.Import.StorageRoot, logger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("image storage: %w", err)
	}

	normalizer := pdf.NewNormalizer(logger)
	images := pdf.NewImageExtractor(normalizer, logger)
	text := pdf.NewTextExtractor(logger)
	layout := pdf.NewLayoutExtractor(
		pdf.NewFitzStrategy(images, logger),
		pdf.NewPlainStrategy(text, images, logger),
		func(ctx context.Context, doc []byte) ([]entity.ExtractedImage, error) {
			return images.ExtractAll(ctx, doc, pdf.NormalizeRobust)
		},
		cfg.Import.LayoutTimeout,
		logger,
	)

	extractor := extract.NewExtractor(oracle, extractionCache, extract.Config{
		MaxChunkLen:   cfg.Import.ChunkSize,
		Concurrency:   cfg.Import.Concurrency,
		OracleTimeout: cfg.Import.OracleTimeout,
	}, logger)

	linker := link.NewLinker(linksRepo, blobs, oracle, oracle, link.Options{
		Threshold:          cfg.Import.SimilarityThreshold,
		TopK:               cfg.Import.LinkTopK,
		CaptionConcurrency: cfg.Import.Concurrency,
		CaptionTimeout:     cfg.Import.OracleTimeout,
	}, logger)

	imp := importer.NewImporter(layout, extractor, linker,
		questionsRepo, categoriesRepo, jobsRepo, logger)

	return &application{
		ingest: ingest.NewService(imp, ingest.Options{
			UseLayoutAnalysis: cfg.Import.UseLayoutAnalysis,
		}, logger),
		export: export.NewService(questionsRepo, categoriesRepo, linksRepo, logger),
		logger: logger,
	}, cleanup, nil
}

func run(ctx context.Context, app *application, command string, args []string, logger *slog.Logger) error {
	switch command {
	case "import":
		if len(args) < 1 {
			return fmt.Errorf("import: file path required")
		}
		res, err := app.ingest.ImportFile(ctx, args[0])
		if err != nil {
			return err
		}
		logger.Info("import summary",
			"extracted", res.QuestionsExtracted,
			"persisted", res.QuestionsPersisted,
			"skipped_duplicate", res.SkippedDuplicate,
			"images_linked", res.ImagesLinked,
			"failed", res.Failed,
			"used_fallback", res.UsedFallback,
			"from_cache", res.FromCache)
		return nil

	case "scan":
		if len(args) < 1 {
			return fmt.Errorf("scan: directory required")
		}
		results, stats, err := app.ingest.ScanDirectory(ctx, args[0], true)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != "" {
				logger.Warn("file failed", "path", r.Path, "error", r.Err)
			}
		}
		logger.Info("scan summary",
			"scanned", stats.Scanned, "matched", stats.Matched,
			"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated,
			"failed", stats.Failed)
		return nil

	case "watch":
		if len(args) < 1 {
			return fmt.Errorf("watch: at least one directory required")
		}
		queue := async.NewImportQueue(app.ingest, logger,
			async.WithWorkers(2),
			async.WithQueueSize(128),
		)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			queue.Shutdown(sctx)
		}()
		return app.ingest.Watch(ctx, ingest.WatchConfig{
			Roots:       args,
			InitialScan: false,
			Debounce:    2 * time.Second,
		}, queue)

	case "export":
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		source := fs.String("source", "", "limit export to one source label")
		out := fs.String("o", "questions.xlsx", "output file path")
		if err := fs.Parse(args); err != nil {
			return err
		}
		data, err := app.export.ExportQuestionsXLSX(ctx, *source)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		logger.Info("export written", "path", *out, "bytes", len(data))
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
