package service

import (
	"context"
	"errors"
	"time"

	"receiptchain/internal/extractor"
	"receiptchain/internal/imagecodec"
	"receiptchain/internal/models"
	"receiptchain/internal/repository"
	"receiptchain/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecognitionStore interface {
	Create(ctx context.Context, rec *models.Recognition) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error)
	Statistics(ctx context.Context) (*models.RecognitionStatistics, error)
}

// ResultCache is optional; Get returns (nil, nil) on a miss.
type ResultCache interface {
	Get(ctx context.Context, imageHash string, docType models.DocumentType) (*models.RecognitionResult, error)
	Set(ctx context.Context, imageHash string, docType models.DocumentType, result *models.RecognitionResult) error
}

type RecognitionService struct {
	registry     *extractor.Registry
	store        RecognitionStore
	cache        ResultCache
	maxImageSize int
	logger       *zap.Logger
	now          func() time.Time
}

func NewRecognitionService(
	registry *extractor.Registry,
	store RecognitionStore,
	cache ResultCache,
	maxImageSize int,
	logger *zap.Logger,
) *RecognitionService {
	return &RecognitionService{
		registry:     registry,
		store:        store,
		cache:        cache,
		maxImageSize: maxImageSize,
		logger:       logger,
		now:          time.Now,
	}
}

// Recognize decodes the image, runs the extractor for docType and records the
// outcome. Cache and storage failures never fail the request.
func (s *RecognitionService) Recognize(ctx context.Context, encoded string, docType models.DocumentType) (*models.RecognitionResult, error) {
	img, err := imagecodec.Decode(encoded, s.maxImageSize)
	if err != nil {
		if errors.Is(err, imagecodec.ErrTooLarge) {
			return nil, apperr.InvalidInput(apperr.CodeInvalidImage, "Image exceeds maximum size")
		}
		s.logger.Debug("Rejected image payload", zap.Error(err))
		return nil, apperr.InvalidInput(apperr.CodeInvalidImage, "Invalid image data")
	}

	hash := img.Hash()
	result := s.cached(ctx, hash, docType)
	if result == nil {
		result, err = s.registry.For(docType).Extract(ctx, img)
		if err != nil {
			s.logger.Error("Recognition failed",
				zap.String("document_type", string(docType)),
				zap.String("engine", s.registry.Engine()),
				zap.Error(err),
			)
			return nil, apperr.Internal(apperr.CodeRecognitionFailed, err.Error(), err)
		}
		result.DocumentType = docType
		s.storeInCache(ctx, hash, docType, result)
	}

	rec := &models.Recognition{
		ID:           uuid.New(),
		DocumentType: docType,
		ImageFormat:  img.Format,
		ImageHash:    hash,
		Confidence:   result.Confidence,
		Result:       result,
		CreatedAt:    s.now().UTC(),
	}

	out := *result
	if err := s.store.Create(ctx, rec); err != nil {
		s.logger.Warn("Failed to store recognition", zap.Error(err))
	} else {
		out.RecognitionID = rec.ID.String()
	}

	s.logger.Info("Document recognised",
		zap.String("recognition_id", out.RecognitionID),
		zap.String("document_type", string(docType)),
		zap.String("image_format", img.Format),
		zap.Float64("confidence", out.Confidence),
	)
	return &out, nil
}

func (s *RecognitionService) cached(ctx context.Context, hash string, docType models.DocumentType) *models.RecognitionResult {
	if s.cache == nil {
		return nil
	}
	result, err := s.cache.Get(ctx, hash, docType)
	if err != nil {
		s.logger.Warn("Recognition cache read failed", zap.Error(err))
		return nil
	}
	if result != nil {
		s.logger.Debug("Recognition cache hit", zap.String("image_hash", hash))
	}
	return result
}

func (s *RecognitionService) storeInCache(ctx context.Context, hash string, docType models.DocumentType, result *models.RecognitionResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, hash, docType, result); err != nil {
		s.logger.Warn("Recognition cache write failed", zap.Error(err))
	}
}

func (s *RecognitionService) GetRecognition(ctx context.Context, rawID string) (*models.Recognition, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperr.InvalidInput(apperr.CodeValidationFailed, "Invalid recognition id")
	}

	rec, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Recognition not found")
	}
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "Failed to load recognition", err)
	}
	return rec, nil
}

func (s *RecognitionService) Statistics(ctx context.Context) (*models.RecognitionStatistics, error) {
	stats, err := s.store.Statistics(ctx)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "Failed to load recognition statistics", err)
	}
	return stats, nil
}

func (s *RecognitionService) Engine() string {
	return s.registry.Engine()
}

func (s *RecognitionService) MaxImageSize() int {
	return s.maxImageSize
}
