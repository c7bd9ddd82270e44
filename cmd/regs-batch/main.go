// regs-batch runs the extraction pipeline once for a single document and
// prints the batch result. With -inmem it uses an in-memory SQLite store,
// useful for dry runs against a new document without touching Postgres.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/internal/analysis"
	"github.com/fisheries-data/regs-tracker/internal/common"
	"github.com/fisheries-data/regs-tracker/internal/docsplit"
	"github.com/fisheries-data/regs-tracker/internal/extraction"
	"github.com/fisheries-data/regs-tracker/internal/llm/openai"
	pipeline "github.com/fisheries-data/regs-tracker/internal/pipeline"
	"github.com/fisheries-data/regs-tracker/internal/population"
	repo "github.com/fisheries-data/regs-tracker/internal/repository"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
)

func main() {
	_ = godotenv.Load()

	var (
		file  = flag.String("file", "", "path to the regulation document (pdf or txt)")
		state = flag.String("state", "", "two-letter state code, e.g. MN")
		year  = flag.Int("year", time.Now().Year(), "regulation year")
		inmem = flag.Bool("inmem", false, "use an in-memory SQLite store instead of DB_URL")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *file == "" || *state == "" {
		fmt.Fprintln(os.Stderr, "usage: regs-batch -file <doc> -state <XX> [-year YYYY] [-inmem]")
		os.Exit(2)
	}
	docType := constants.MapExtToFormat(filepath.Ext(*file))
	if docType == "" {
		logger.Error("unsupported file extension", "file", *file)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("reading document", "file", *file, "error", err)
		os.Exit(1)
	}

	entc, cleanup, err := openStore(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("opening store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	waterBodiesRepo := repo.NewWaterBodyRepository(entc, logger)
	speciesRepo := repo.NewSpeciesRepository(entc, logger)
	regulationsRepo := repo.NewRegulationRepository(entc, logger)

	var analyzer analysis.DocumentAnalyzer
	if cfg.Analysis.Endpoint != "" {
		analyzer = analysis.NewClient(analysis.Config{
			Endpoint: cfg.Analysis.Endpoint,
			APIKey:   cfg.Analysis.APIKey,
			ModelID:  cfg.Analysis.ModelID,
			Timeout:  cfg.Analysis.Timeout,
		}, logger)
	}
	splitter := docsplit.NewSplitter(docsplit.Config{
		MaxChunkKB: cfg.Pipeline.MaxChunkKB,
		PaceDelay:  cfg.Pipeline.PaceDelay,
	}, logger)

	extractor := openai.NewClient(openai.Config{
		Model:           cfg.LLM.Model,
		APIKey:          cfg.LLM.APIKey,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientOptional: true,
	}, logger)
	orchestrator := extraction.NewOrchestrator(extractor, extraction.Config{
		PaceDelay: cfg.Pipeline.EntryDelay,
	}, logger)

	proc := pipeline.NewProcessor(
		logger,
		docsRepo,
		pipeline.NewTextStage(analyzer, splitter, cfg.Analysis.ModelID, logger),
		pipeline.NewExtractStage(segmenter.NewSegmenter(logger), orchestrator, logger),
		population.NewService(waterBodiesRepo, speciesRepo, regulationsRepo, logger),
	)

	doc, err := docsRepo.Register(ctx, &repo.RegisterDocumentRequest{
		Filename:       filepath.Base(*file),
		DocumentType:   docType,
		FileSize:       int64(len(data)),
		StateCode:      *state,
		RegulationYear: *year,
	})
	if err != nil {
		logger.Error("registering document", "error", err)
		os.Exit(1)
	}

	res, err := proc.ProcessDocument(ctx, doc.ID, data)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
	}

	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))
	if res == nil || !res.IsSuccess {
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:regsbatch?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		drv := entsql.OpenDB(dialect.SQLite, db)
		entc := ent.NewClient(ent.Driver(drv))
		if err := entc.Schema.Create(ctx); err != nil {
			_ = entc.Close()
			return nil, nil, fmt.Errorf("migrate sqlite schema: %w", err)
		}
		return entc, func() { _ = entc.Close() }, nil
	}

	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL is required without -inmem")
	}
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
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}
