package extractor

import (
	"context"
	"strings"

	"receiptchain/internal/imagecodec"
	"receiptchain/internal/models"
)

// Extractor turns a decoded document image into structured fields.
type Extractor interface {
	Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error)
}

// Registry resolves extractors by document type. Types without a registered
// extractor resolve to the fallback.
type Registry struct {
	byType   map[models.DocumentType]Extractor
	fallback Extractor
	engine   string
}

func NewRegistry(engine string, fallback Extractor) *Registry {
	return &Registry{
		byType:   make(map[models.DocumentType]Extractor),
		fallback: fallback,
		engine:   engine,
	}
}

// NewMockRegistry wires the canned receipt and payment extractors.
func NewMockRegistry() *Registry {
	r := NewRegistry("mock", UnknownExtractor{})
	r.Register(models.DocumentTypeReceipt, ReceiptExtractor{})
	r.Register(models.DocumentTypePayment, PaymentExtractor{})
	return r
}

func (r *Registry) Register(docType models.DocumentType, e Extractor) {
	r.byType[docType] = e
}

// For looks up the extractor for docType; matching is case-sensitive.
func (r *Registry) For(docType models.DocumentType) Extractor {
	if e, ok := r.byType[docType]; ok {
		return e
	}
	return r.fallback
}

func (r *Registry) Engine() string {
	return r.engine
}

// ResolveDocumentType applies the receipt default for an empty type.
func ResolveDocumentType(raw string) models.DocumentType {
	if strings.TrimSpace(raw) == "" {
		return models.DocumentTypeReceipt
	}
	return models.DocumentType(raw)
}
