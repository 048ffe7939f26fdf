package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"testing"

	"receiptchain/internal/extractor"
	"receiptchain/internal/imagecodec"
	"receiptchain/internal/models"
	"receiptchain/internal/repository"
	"receiptchain/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func pngBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

type failingExtractor struct{ err error }

func (f failingExtractor) Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error) {
	return nil, f.err
}

type countingExtractor struct {
	calls int
}

func (c *countingExtractor) Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error) {
	c.calls++
	return &models.RecognitionResult{Confidence: 0.5, RawData: "{}"}, nil
}

type mapCache struct {
	entries map[string]*models.RecognitionResult
	setErr  error
}

func (m *mapCache) Get(ctx context.Context, hash string, docType models.DocumentType) (*models.RecognitionResult, error) {
	return m.entries[repository.CacheKey(hash, docType)], nil
}

func (m *mapCache) Set(ctx context.Context, hash string, docType models.DocumentType, result *models.RecognitionResult) error {
	if m.setErr != nil {
		return m.setErr
	}
	cp := *result
	m.entries[repository.CacheKey(hash, docType)] = &cp
	return nil
}

type brokenStore struct{}

func (brokenStore) Create(ctx context.Context, rec *models.Recognition) error {
	return errors.New("connection refused")
}

func (brokenStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) Statistics(ctx context.Context) (*models.RecognitionStatistics, error) {
	return nil, errors.New("connection refused")
}

func newTestRecognitionService(registry *extractor.Registry, store RecognitionStore, cache ResultCache) *RecognitionService {
	return NewRecognitionService(registry, store, cache, 1024*1024, zap.NewNop())
}

func TestRecognizeStoresAndReturnsID(t *testing.T) {
	store := repository.NewMemoryRecognitionRepository(10)
	svc := newTestRecognitionService(extractor.NewMockRegistry(), store, nil)

	result, err := svc.Recognize(context.Background(), pngBase64(t), models.DocumentTypeReceipt)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if result.RecognitionID == "" {
		t.Fatal("expected recognition id")
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", result.Confidence)
	}

	rec, err := svc.GetRecognition(context.Background(), result.RecognitionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.ImageFormat != "png" || rec.DocumentType != models.DocumentTypeReceipt {
		t.Fatalf("unexpected stored record %+v", rec)
	}
	if len(rec.ImageHash) != 64 {
		t.Fatalf("expected sha256 hex hash, got %q", rec.ImageHash)
	}
}

func TestRecognizeStampsRequestedType(t *testing.T) {
	svc := newTestRecognitionService(extractor.NewMockRegistry(), repository.NewMemoryRecognitionRepository(10), nil)

	result, err := svc.Recognize(context.Background(), pngBase64(t), "invoice")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if result.DocumentType != "invoice" || result.Confidence != 0 {
		t.Fatalf("expected degraded invoice result, got %+v", result)
	}
}

func TestRecognizeRejectsBadImages(t *testing.T) {
	svc := NewRecognitionService(extractor.NewMockRegistry(), repository.NewMemoryRecognitionRepository(10), nil, 16, zap.NewNop())

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "Invalid image data"},
		{"garbage", "%%%", "Invalid image data"},
		{"text", base64.StdEncoding.EncodeToString([]byte("not an image")), "Invalid image data"},
		{"too large", pngBase64(t), "Image exceeds maximum size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Recognize(context.Background(), tt.input, models.DocumentTypeReceipt)
			appErr := apperr.From(err)
			if appErr == nil || appErr.Kind != apperr.KindInvalidInput {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if appErr.Message != tt.message || appErr.Code != apperr.CodeInvalidImage {
				t.Fatalf("unexpected error %q (%s)", appErr.Message, appErr.Code)
			}
		})
	}
}

func TestRecognizeExtractorFailure(t *testing.T) {
	registry := extractor.NewRegistry("test", extractor.UnknownExtractor{})
	registry.Register(models.DocumentTypeReceipt, failingExtractor{err: errors.New("model offline")})
	svc := newTestRecognitionService(registry, repository.NewMemoryRecognitionRepository(10), nil)

	_, err := svc.Recognize(context.Background(), pngBase64(t), models.DocumentTypeReceipt)
	appErr := apperr.From(err)
	if appErr.Status() != 500 || appErr.Message != "model offline" {
		t.Fatalf("expected verbatim 500, got %d %q", appErr.Status(), appErr.Message)
	}
	if appErr.Code != apperr.CodeRecognitionFailed {
		t.Fatalf("unexpected code %s", appErr.Code)
	}
}

func TestRecognizeUsesCache(t *testing.T) {
	counter := &countingExtractor{}
	registry := extractor.NewRegistry("test", extractor.UnknownExtractor{})
	registry.Register(models.DocumentTypeReceipt, counter)
	cache := &mapCache{entries: make(map[string]*models.RecognitionResult)}
	svc := newTestRecognitionService(registry, repository.NewMemoryRecognitionRepository(10), cache)

	img := pngBase64(t)
	first, err := svc.Recognize(context.Background(), img, models.DocumentTypeReceipt)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.Recognize(context.Background(), "data:image/png;base64,"+img, models.DocumentTypeReceipt)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if counter.calls != 1 {
		t.Fatalf("expected one extractor call, got %d", counter.calls)
	}
	if first.RecognitionID == second.RecognitionID {
		t.Fatal("each request should get its own recognition id")
	}

	if _, err := svc.Recognize(context.Background(), img, models.DocumentTypePayment); err != nil {
		t.Fatalf("payment: %v", err)
	}
	if len(cache.entries) != 2 {
		t.Fatalf("expected separate cache entries per type, got %d", len(cache.entries))
	}
}

func TestRecognizeIgnoresStorageAndCacheFailures(t *testing.T) {
	cache := &mapCache{entries: make(map[string]*models.RecognitionResult), setErr: errors.New("redis down")}
	svc := newTestRecognitionService(extractor.NewMockRegistry(), brokenStore{}, cache)

	result, err := svc.Recognize(context.Background(), pngBase64(t), models.DocumentTypePayment)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if result.RecognitionID != "" {
		t.Fatalf("expected no id when storage fails, got %q", result.RecognitionID)
	}
	if result.PaymentMethod != "WeChat Pay" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestGetRecognitionErrors(t *testing.T) {
	svc := newTestRecognitionService(extractor.NewMockRegistry(), repository.NewMemoryRecognitionRepository(10), nil)

	if _, err := svc.GetRecognition(context.Background(), "not-a-uuid"); !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.GetRecognition(context.Background(), uuid.NewString()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStatistics(t *testing.T) {
	svc := newTestRecognitionService(extractor.NewMockRegistry(), repository.NewMemoryRecognitionRepository(10), nil)
	img := pngBase64(t)
	for _, docType := range []models.DocumentType{models.DocumentTypeReceipt, models.DocumentTypePayment, models.DocumentTypeReceipt} {
		if _, err := svc.Recognize(context.Background(), img, docType); err != nil {
			t.Fatalf("recognize: %v", err)
		}
	}

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Total != 3 || stats.ByDocumentType[models.DocumentTypeReceipt] != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	broken := newTestRecognitionService(extractor.NewMockRegistry(), brokenStore{}, nil)
	if _, err := broken.Statistics(context.Background()); !apperr.IsKind(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
