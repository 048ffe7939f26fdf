package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypeReceipt DocumentType = "receipt"
	DocumentTypePayment DocumentType = "payment"
)

// SupportedDocumentTypes are the types with a dedicated extractor.
var SupportedDocumentTypes = []DocumentType{DocumentTypeReceipt, DocumentTypePayment}

// RecognitionResult is a tagged union on DocumentType. Receipt results carry
// description, items and merchant; payment results carry method, payer and
// receiver. Amount and date serialize as null when unknown.
type RecognitionResult struct {
	RecognitionID        string       `json:"recognition_id,omitempty"`
	DocumentType         DocumentType `json:"document_type"`
	ExtractedAmount      *float64     `json:"extracted_amount"`
	ExtractedDate        *time.Time   `json:"extracted_date"`
	ExtractedDescription string       `json:"extracted_description,omitempty"`
	ExtractedItems       []string     `json:"extracted_items,omitempty"`
	Merchant             string       `json:"merchant,omitempty"`
	PaymentMethod        string       `json:"payment_method,omitempty"`
	Payer                string       `json:"payer,omitempty"`
	Receiver             string       `json:"receiver,omitempty"`
	Confidence           float64      `json:"confidence"`
	RawData              string       `json:"raw_data"`
}

// Recognition is a stored recognition outcome.
type Recognition struct {
	ID           uuid.UUID          `db:"id" json:"id"`
	DocumentType DocumentType       `db:"document_type" json:"document_type"`
	ImageFormat  string             `db:"image_format" json:"image_format"`
	ImageHash    string             `db:"image_hash" json:"image_hash"`
	Confidence   float64            `db:"confidence" json:"confidence"`
	Result       *RecognitionResult `db:"result" json:"result"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
}

type RecognitionStatistics struct {
	Total             int64                  `json:"total"`
	ByDocumentType    map[DocumentType]int64 `json:"by_document_type"`
	AverageConfidence float64                `json:"average_confidence"`
	LastRecognitionAt *time.Time             `json:"last_recognition_at"`
}
