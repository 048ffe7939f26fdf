package extractor

import (
	"context"
	"encoding/json"
	"time"

	"receiptchain/internal/imagecodec"
	"receiptchain/internal/models"
)

// ReceiptExtractor returns a fixed restaurant receipt.
type ReceiptExtractor struct{}

func (ReceiptExtractor) Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	amount := 128.50
	date := time.Date(2025, time.January, 19, 10, 30, 0, 0, time.UTC)

	raw, err := json.Marshal(map[string]any{
		"total":    amount,
		"items":    []string{"Beef noodles", "Iced tea", "Service charge", "Tax"},
		"merchant": "Golden Dragon Restaurant",
		"date":     "2025-01-19",
	})
	if err != nil {
		return nil, err
	}

	return &models.RecognitionResult{
		DocumentType:         models.DocumentTypeReceipt,
		ExtractedAmount:      &amount,
		ExtractedDate:        &date,
		ExtractedDescription: "Restaurant meal",
		ExtractedItems: []string{
			"Beef noodles - $45.00",
			"Iced tea - $8.50",
			"Service charge - $5.00",
			"Tax - $10.00",
		},
		Merchant:   "Golden Dragon Restaurant",
		Confidence: 0.92,
		RawData:    string(raw),
	}, nil
}

// PaymentExtractor returns a fixed WeChat Pay record.
type PaymentExtractor struct{}

func (PaymentExtractor) Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	amount := 128.50
	date := time.Date(2025, time.January, 19, 10, 35, 0, 0, time.UTC)

	raw, err := json.Marshal(map[string]any{
		"amount":         amount,
		"method":         "WeChat Pay",
		"payer":          "John Doe",
		"receiver":       "Golden Dragon Restaurant",
		"transaction_id": "WX20250119103500123456",
	})
	if err != nil {
		return nil, err
	}

	return &models.RecognitionResult{
		DocumentType:    models.DocumentTypePayment,
		ExtractedAmount: &amount,
		ExtractedDate:   &date,
		PaymentMethod:   "WeChat Pay",
		Payer:           "John Doe",
		Receiver:        "Golden Dragon Restaurant",
		Confidence:      0.89,
		RawData:         string(raw),
	}, nil
}

// UnknownExtractor is the degraded result for unsupported document types.
type UnknownExtractor struct{}

func (UnknownExtractor) Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error) {
	return &models.RecognitionResult{
		ExtractedDescription: "Unknown document type",
		Confidence:           0,
		RawData:              `{"error":"Unsupported document type"}`,
	}, nil
}
