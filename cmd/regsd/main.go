package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	regspb "github.com/fisheries-data/regs-tracker/gen/proto/regs/v1"
	"github.com/fisheries-data/regs-tracker/internal/analysis"
	"github.com/fisheries-data/regs-tracker/internal/async"
	"github.com/fisheries-data/regs-tracker/internal/common"
	"github.com/fisheries-data/regs-tracker/internal/docsplit"
	"github.com/fisheries-data/regs-tracker/internal/export"
	"github.com/fisheries-data/regs-tracker/internal/extraction"
	"github.com/fisheries-data/regs-tracker/internal/llm/openai"
	pipeline "github.com/fisheries-data/regs-tracker/internal/pipeline"
	"github.com/fisheries-data/regs-tracker/internal/population"
	repo "github.com/fisheries-data/regs-tracker/internal/repository"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
	svc "github.com/fisheries-data/regs-tracker/internal/server"
	"github.com/fisheries-data/regs-tracker/internal/storage"
	"github.com/fisheries-data/regs-tracker/constants"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		os.Exit(1)
	}

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

	textStage := pipeline.NewTextStage(analyzer, splitter, cfg.Analysis.ModelID, logger)
	extractStage := pipeline.NewExtractStage(segmenter.NewSegmenter(logger), orchestrator, logger)
	populator := population.NewService(waterBodiesRepo, speciesRepo, regulationsRepo, logger)
	proc := pipeline.NewProcessor(logger, docsRepo, textStage, extractStage, populator)

	var archiver storage.Archiver
	if cfg.Storage.Bucket != "" {
		archiver, err = storage.NewS3Archiver(storage.Config{
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			KeyPrefix: cfg.Storage.KeyPrefix,
		}, logger)
		if err != nil {
			logger.Warn("archiver unavailable, continuing without archival", "error", err)
			archiver = nil
		}
	}

	queue := async.NewProcessorQueue(proc, logger,
		async.WithQueueSize(128),
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentsService := svc.NewDocumentsService(docsRepo, archiver, queue, proc, logger)
	regspb.RegisterDocumentsServiceServer(grpcServer, documentsService)

	exporter := export.NewService(waterBodiesRepo, speciesRepo, regulationsRepo, logger)
	regulationsService := svc.NewRegulationsService(waterBodiesRepo, speciesRepo, regulationsRepo, exporter, logger)
	regspb.RegisterRegulationsServiceServer(grpcServer, regulationsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// periodically surface documents stuck in pending; bytes are not kept
	// server-side, so the sweep only reports until a caller resubmits
	sweeper := cron.New()
	_, err = sweeper.AddFunc(cfg.Pipeline.SweepSchedule, func() {
		pending, err := docsRepo.ListByStatus(context.Background(), constants.StatusPending)
		if err != nil {
			logger.Error("pending sweep failed", "error", err)
			return
		}
		if len(pending) > 0 {
			logger.Warn("documents awaiting processing", "count", len(pending))
		}
	})
	if err != nil {
		logger.Error("invalid sweep schedule", "schedule", cfg.Pipeline.SweepSchedule, "error", err)
		os.Exit(1)
	}
	sweeper.Start()

	logger.Info("regsd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	sweeper.Stop()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
