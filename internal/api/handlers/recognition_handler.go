package handlers

import (
	"encoding/json"
	"fmt"

	"receiptchain/internal/dto"
	"receiptchain/internal/extractor"
	"receiptchain/internal/imagecodec"
	"receiptchain/internal/models"
	"receiptchain/internal/service"
	"receiptchain/pkg/apperr"
	"receiptchain/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecognitionHandler struct {
	recService   *service.RecognitionService
	modelVersion string
	logger       *zap.Logger
}

func NewRecognitionHandler(recService *service.RecognitionService, modelVersion string, logger *zap.Logger) *RecognitionHandler {
	return &RecognitionHandler{
		recService:   recService,
		modelVersion: modelVersion,
		logger:       logger,
	}
}

// RecognizeReceipt godoc
// @Summary Recognize a receipt
// @Description Extract amount, date, items and merchant from a base64 receipt image
// @Tags recognition
// @Accept json
// @Produce json
// @Param request body dto.RecognizeRequest true "Base64 image, optionally a data URL"
// @Success 200 {object} response.Envelope{extracted_data=models.RecognitionResult}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /recognize/receipt [post]
func (h *RecognitionHandler) RecognizeReceipt(c *fiber.Ctx) error {
	return h.recognizeAs(c, models.DocumentTypeReceipt)
}

// RecognizePayment godoc
// @Summary Recognize a payment screenshot
// @Description Extract amount, method, payer and receiver from a base64 payment image
// @Tags recognition
// @Accept json
// @Produce json
// @Param request body dto.RecognizeRequest true "Base64 image, optionally a data URL"
// @Success 200 {object} response.Envelope{extracted_data=models.RecognitionResult}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /recognize/payment [post]
func (h *RecognitionHandler) RecognizePayment(c *fiber.Ctx) error {
	return h.recognizeAs(c, models.DocumentTypePayment)
}

// RecognizeDocument godoc
// @Summary Recognize a document of any type
// @Description document_type selects the extractor (default receipt). Unknown types return a zero-confidence result.
// @Tags recognition
// @Accept json
// @Produce json
// @Param request body dto.RecognizeRequest true "Base64 image and optional document_type"
// @Success 200 {object} response.Envelope{extracted_data=models.RecognitionResult}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /recognize/document [post]
func (h *RecognitionHandler) RecognizeDocument(c *fiber.Ctx) error {
	return h.recognizeAs(c, "")
}

// recognizeAs runs recognition for docType; an empty docType is read from the body.
func (h *RecognitionHandler) recognizeAs(c *fiber.Ctx, docType models.DocumentType) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return response.Fail(c, apperr.InvalidInput(apperr.CodeValidationFailed, "No image data provided"), "")
	}
	rawImage, ok := body["image"]
	if !ok {
		return response.Fail(c, apperr.InvalidInput(apperr.CodeValidationFailed, "No image data provided"), "")
	}

	var image string
	if err := json.Unmarshal(rawImage, &image); err != nil {
		return response.Fail(c, apperr.InvalidInput(apperr.CodeInvalidImage, "Invalid image data"), "")
	}

	if docType == "" {
		var requested string
		if raw, ok := body["document_type"]; ok {
			if err := json.Unmarshal(raw, &requested); err != nil {
				return response.Fail(c, apperr.InvalidInput(apperr.CodeValidationFailed, "Invalid document_type"), "")
			}
		}
		docType = extractor.ResolveDocumentType(requested)
	}

	result, err := h.recService.Recognize(c.UserContext(), image, docType)
	if err != nil {
		return response.Fail(c, err, "")
	}

	return response.Extracted(c, result)
}

// GetRecognition godoc
// @Summary Get a stored recognition
// @Tags recognition
// @Produce json
// @Param id path string true "Recognition ID"
// @Success 200 {object} response.Envelope{data=models.Recognition}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /recognition/{id} [get]
func (h *RecognitionHandler) GetRecognition(c *fiber.Ctx) error {
	rec, err := h.recService.GetRecognition(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Fail(c, err, "")
	}
	return response.OK(c, rec, "Recognition retrieved successfully")
}

// Statistics godoc
// @Summary Recognition statistics
// @Tags recognition
// @Produce json
// @Success 200 {object} response.Envelope{data=models.RecognitionStatistics}
// @Failure 500 {object} response.Envelope
// @Router /recognition/statistics [get]
func (h *RecognitionHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.recService.Statistics(c.UserContext())
	if err != nil {
		return response.Fail(c, err, "")
	}
	return response.OK(c, stats, "Statistics retrieved successfully")
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *RecognitionHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Success: true,
		Status:  "healthy",
		Service: "donut-recognition",
		Version: "1.0.0",
	})
}

// Config godoc
// @Summary Recognition configuration
// @Tags system
// @Produce json
// @Success 200 {object} dto.ConfigResponse
// @Router /config [get]
func (h *RecognitionHandler) Config(c *fiber.Ctx) error {
	docTypes := make([]string, 0, len(models.SupportedDocumentTypes))
	for _, t := range models.SupportedDocumentTypes {
		docTypes = append(docTypes, string(t))
	}

	return c.JSON(dto.ConfigResponse{
		Success:                true,
		SupportedFormats:       imagecodec.SupportedFormats,
		MaxImageSize:           formatSize(h.recService.MaxImageSize()),
		SupportedDocumentTypes: docTypes,
		ModelVersion:           h.modelVersion,
		Engine:                 h.recService.Engine(),
	})
}

func formatSize(n int) string {
	const mb = 1024 * 1024
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= 1024 && n%1024 == 0:
		return fmt.Sprintf("%dKB", n/1024)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
