package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

// RegisterDocumentRequest wraps parameters for registering an uploaded document.
type RegisterDocumentRequest struct {
	Filename       string
	DocumentType   string
	FileSize       int64
	StateCode      string
	RegulationYear int
	StorageURL     string
}

type DocumentRepository interface {
	Register(ctx context.Context, req *RegisterDocumentRequest) (*entity.RegulationDocument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RegulationDocument, error)
	ListByStatus(ctx context.Context, status constants.ProcessingStatus) ([]*entity.RegulationDocument, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Register(ctx context.Context, req *RegisterDocumentRequest) (*entity.RegulationDocument, error) {
	builder := r.client.RegulationDocument.Create().
		SetFilename(req.Filename).
		SetDocumentType(req.DocumentType).
		SetFileSize(req.FileSize).
		SetStateCode(req.StateCode).
		SetRegulationYear(req.RegulationYear).
		SetProcessingStatus(string(constants.StatusPending))
	if req.StorageURL != "" {
		builder = builder.SetStorageURL(req.StorageURL)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("document register failed", "filename", req.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document registered",
		"document_id", doc.ID, "filename", req.Filename,
		"state", req.StateCode, "year", req.RegulationYear)
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RegulationDocument, error) {
	doc, err := r.client.RegulationDocument.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) ListByStatus(ctx context.Context, status constants.ProcessingStatus) ([]*entity.RegulationDocument, error) {
	docs, err := r.client.RegulationDocument.Query().
		Where(regulationdocument.ProcessingStatus(string(status))).
		Order(regulationdocument.ByUploadedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.RegulationDocument, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.RegulationDocument.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusProcessing)).
		ClearExtractionError().
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark processing failed", "document_id", id, "error", err)
	}
	return err
}

func (r *documentRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.RegulationDocument.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusCompleted)).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark completed failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document completed", "document_id", id)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.client.RegulationDocument.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusFailed)).
		SetProcessedAt(time.Now()).
		SetExtractionError(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark failed failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document failed", "document_id", id, "error", message)
	return nil
}
