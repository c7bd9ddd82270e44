package server

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/constants"
	regspb "github.com/fisheries-data/regs-tracker/gen/proto/regs/v1"
	"github.com/fisheries-data/regs-tracker/internal/async"
	"github.com/fisheries-data/regs-tracker/internal/common"
	processor "github.com/fisheries-data/regs-tracker/internal/pipeline"
	"github.com/fisheries-data/regs-tracker/internal/population"
	"github.com/fisheries-data/regs-tracker/internal/repository"
	"github.com/fisheries-data/regs-tracker/internal/storage"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type DocumentsService struct {
	regspb.UnimplementedDocumentsServiceServer
	docsRepo  repository.DocumentRepository
	archiver  storage.Archiver // optional
	queue     async.Queue
	processor *processor.Processor
	logger    *slog.Logger
}

func NewDocumentsService(docs repository.DocumentRepository, archiver storage.Archiver, queue async.Queue, proc *processor.Processor, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{
		docsRepo:  docs,
		archiver:  archiver,
		queue:     queue,
		processor: proc,
		logger:    logger,
	}
}

func (s *DocumentsService) RegisterDocument(ctx context.Context, req *regspb.RegisterDocumentRequest) (*regspb.RegisterDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	v := common.NewValidator().
		Field("filename", filename, common.Required).
		Field("state_code", req.GetStateCode(), common.Required, common.StateCode).
		Field("regulation_year", int(req.GetRegulationYear()), common.RegulationYear)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("register document rejected", "filename", filename, "error", err)
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	docType := constants.MapExtToFormat(filepath.Ext(filename))
	if docType == "" {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", filepath.Ext(filename))
	}

	resp := &regspb.RegisterDocumentResponse{}

	// archive first so the row can reference the stored object; failures
	// are warnings, not registration blockers
	var storageURL string
	if s.archiver != nil {
		url, err := s.archiver.Put(ctx, req.GetContent(), filename, storage.ContentTypeFor(filename))
		if err != nil {
			s.logger.Warn("document archive failed", "filename", filename, "error", err)
			resp.Error = "archive: " + err.Error()
		} else {
			storageURL = url
		}
	}

	doc, err := s.docsRepo.Register(ctx, &repository.RegisterDocumentRequest{
		Filename:       filename,
		DocumentType:   docType,
		FileSize:       int64(len(req.GetContent())),
		StateCode:      req.GetStateCode(),
		RegulationYear: int(req.GetRegulationYear()),
		StorageURL:     storageURL,
	})
	if err != nil {
		s.logger.Error("document register failed", "filename", filename, "error", err)
		return nil, common.InternalErrorf("register document: %v", err)
	}

	resp.DocumentId = doc.ID.String()
	resp.ProcessingStatus = doc.ProcessingStatus
	resp.StorageUrl = storageURL
	resp.UploadedAt = doc.UploadedAt.UTC().Format(time.RFC3339)

	if req.GetProcessNow() && s.queue != nil {
		_ = s.queue.Enqueue(ctx, async.Job{
			DocumentID:  doc.ID,
			Data:        req.GetContent(),
			SubmittedAt: time.Now(),
			TraceID:     common.RequestIDFromContext(ctx),
		})
	}
	return resp, nil
}

func (s *DocumentsService) ProcessDocument(ctx context.Context, req *regspb.ProcessDocumentRequest) (*regspb.ProcessDocumentResponse, error) {
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	res, err := s.processor.ProcessDocument(ctx, docID, req.GetContent())
	if err != nil && res == nil {
		return nil, common.InternalErrorf("process document: %v", err)
	}
	return toPBBatchResult(res), nil
}

func (s *DocumentsService) GetDocumentStatus(ctx context.Context, req *regspb.GetDocumentStatusRequest) (*regspb.GetDocumentStatusResponse, error) {
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	doc, err := s.docsRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	return &regspb.GetDocumentStatusResponse{Document: utils.ToPBDocument(doc)}, nil
}

func toPBBatchResult(res *population.BatchResult) *regspb.ProcessDocumentResponse {
	return &regspb.ProcessDocumentResponse{
		IsSuccess:                 res.IsSuccess,
		TotalLakesProcessed:       int32(res.TotalLakesProcessed),
		TotalRegulationsExtracted: int32(res.TotalRegulationsExtracted),
		WaterBodiesCreated:        int32(res.WaterBodiesCreated),
		WaterBodiesUpdated:        int32(res.WaterBodiesUpdated),
		RegulationsCreated:        int32(res.RegulationsCreated),
		RegulationsUpdated:        int32(res.RegulationsUpdated),
		FishSpeciesCreated:        int32(res.FishSpeciesCreated),
		ProcessingWarnings:        res.ProcessingWarnings,
		ProcessingErrors:          res.ProcessingErrors,
		ProcessingTimeMs:          res.ProcessingTime.Milliseconds(),
		ErrorMessage:              res.ErrorMessage,
	}
}
