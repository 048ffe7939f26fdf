package extractor

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"receiptchain/internal/imagecodec"
	"receiptchain/internal/models"
	"receiptchain/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	gigaChatBaseURL  = "https://gigachat.devices.sberbank.ru/api/v1"
	gigaChatOAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
	// Access tokens live 30 minutes; refresh a little earlier.
	tokenLifetime = 25 * time.Minute
)

func systemInstruction() string {
	return `You extract structured fields from the text of financial documents (receipts and payment confirmations).
Always answer with a single JSON object and nothing else: no markdown, no comments.
Amounts are positive numbers without currency symbols. Dates use RFC 3339 (YYYY-MM-DDTHH:MM:SSZ).
If a field is not present in the document, use null. Never invent values.
"confidence" is your estimate in [0, 1] that the extracted fields are correct.`
}

func fieldsPrompt(docType models.DocumentType, text string) string {
	var shape string
	switch docType {
	case models.DocumentTypePayment:
		shape = `{"amount": number|null, "date": string|null, "payment_method": string|null, "payer": string|null, "receiver": string|null, "confidence": number}`
	default:
		shape = `{"amount": number|null, "date": string|null, "description": string|null, "items": [string], "merchant": string|null, "confidence": number}`
	}
	return fmt.Sprintf("Document type: %s\n\nDocument text:\n%s\n\nReturn JSON of the form:\n%s", docType, text, shape)
}

const visionPrompt = `Extract all text visible in this financial document (receipt or payment screenshot).
Return only the text, without comments. If nothing is readable, return an empty string.`

// GigaChat is a shared GigaChat API session used by the GigaChat extractors.
type GigaChat struct {
	client     *gigago.Client
	model      *gigago.GenerativeModel
	modelName  string
	cfg        *config.GigaChatConfig
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenAt     time.Time
}

func NewGigaChat(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChat, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = systemInstruction()
	model.Temperature = 0.1

	httpClient := &http.Client{Timeout: 60 * time.Second}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	g := &GigaChat{
		client:     client,
		model:      model,
		modelName:  cfg.Model,
		cfg:        cfg,
		httpClient: httpClient,
		baseURL:    gigaChatBaseURL,
		logger:     logger,
	}

	if _, err := g.token(ctx); err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("GigaChat extractor ready", zap.String("model", cfg.Model))
	return g, nil
}

func (g *GigaChat) Close() error {
	if g.client != nil {
		g.client.Close()
	}
	return nil
}

// Extractor returns an Extractor bound to docType.
func (g *GigaChat) Extractor(docType models.DocumentType) Extractor {
	return &GigaChatExtractor{gc: g, docType: docType}
}

// NewGigaChatRegistry routes receipts and payments to GigaChat.
func NewGigaChatRegistry(g *GigaChat) *Registry {
	r := NewRegistry("gigachat", UnknownExtractor{})
	for _, t := range models.SupportedDocumentTypes {
		r.Register(t, g.Extractor(t))
	}
	return r
}

func (g *GigaChat) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Since(g.tokenAt) < tokenLifetime {
		return g.accessToken, nil
	}

	formData := url.Values{}
	formData.Set("scope", g.cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gigaChatOAuthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}

	rqUID := uuid.New().String()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", rqUID)
	req.Header.Set("Authorization", "Basic "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Error("OAuth request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("rq_uid", rqUID),
		)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(body))
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauthResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	g.accessToken = oauthResp.AccessToken
	g.tokenAt = time.Now()
	return g.accessToken, nil
}

func (g *GigaChat) uploadFile(ctx context.Context, img *imagecodec.Image) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("purpose", "general"); err != nil {
		return "", fmt.Errorf("failed to write purpose field: %w", err)
	}

	mimeType := "image/" + img.Format
	fileName := "document." + img.Format
	part, err := writer.CreatePart(map[string][]string{
		"Content-Type":        {mimeType},
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	token, err := g.token(ctx)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/files", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("file upload failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var uploadResp struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	g.logger.Debug("File uploaded to GigaChat", zap.String("file_id", uploadResp.ID))
	return uploadResp.ID, nil
}

// readText runs a vision chat completion on an uploaded file. The attachments
// field is not exposed by gigago, so this goes over plain HTTP.
func (g *GigaChat) readText(ctx context.Context, fileID string) (string, error) {
	requestBody := map[string]interface{}{
		"model": g.modelName,
		"messages": []map[string]interface{}{
			{
				"role":        "user",
				"content":     visionPrompt,
				"attachments": []string{fileID},
			},
		},
		"temperature": 0.1,
		"stream":      false,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	token, err := g.token(ctx)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("vision API failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var visionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&visionResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(visionResp.Choices) == 0 {
		return "", fmt.Errorf("no response from Vision API")
	}

	return strings.TrimSpace(visionResp.Choices[0].Message.Content), nil
}

func (g *GigaChat) structure(ctx context.Context, docType models.DocumentType, text string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: fieldsPrompt(docType, text)},
	}

	resp, err := g.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}
	return resp.Choices[0].Message.Content, nil
}

// GigaChatExtractor extracts one document type through GigaChat.
type GigaChatExtractor struct {
	gc      *GigaChat
	docType models.DocumentType
}

func (e *GigaChatExtractor) Extract(ctx context.Context, img *imagecodec.Image) (*models.RecognitionResult, error) {
	fileID, err := e.gc.uploadFile(ctx, img)
	if err != nil {
		return nil, err
	}

	text, err := e.gc.readText(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		e.gc.logger.Info("No text recognised in image", zap.String("document_type", string(e.docType)))
		return &models.RecognitionResult{
			DocumentType:         e.docType,
			ExtractedDescription: "No text recognised",
			Confidence:           0,
			RawData:              `{"error":"No text recognised"}`,
		}, nil
	}

	content, err := e.gc.structure(ctx, e.docType, text)
	if err != nil {
		return nil, err
	}

	result, err := ParseFields(e.docType, content)
	if err != nil {
		return nil, err
	}

	e.gc.logger.Info("GigaChat extraction completed",
		zap.String("document_type", string(e.docType)),
		zap.Int("text_length", len(text)),
		zap.Float64("confidence", result.Confidence),
	)
	return result, nil
}

type llmFields struct {
	Amount        *float64 `json:"amount"`
	Date          *string  `json:"date"`
	Description   *string  `json:"description"`
	Items         []string `json:"items"`
	Merchant      *string  `json:"merchant"`
	PaymentMethod *string  `json:"payment_method"`
	Payer         *string  `json:"payer"`
	Receiver      *string  `json:"receiver"`
	Confidence    float64  `json:"confidence"`
}

// ParseFields converts a model answer into a RecognitionResult. The answer may
// be wrapped in a markdown fence or surrounded by prose.
func ParseFields(docType models.DocumentType, content string) (*models.RecognitionResult, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("invalid response format: no JSON object")
	}
	jsonStr := content[start : end+1]

	var f llmFields
	if err := json.Unmarshal([]byte(jsonStr), &f); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	result := &models.RecognitionResult{
		DocumentType:    docType,
		ExtractedAmount: f.Amount,
		ExtractedItems:  f.Items,
		Confidence:      clamp01(f.Confidence),
		RawData:         jsonStr,
	}
	if f.Date != nil {
		if t, err := parseLooseDate(*f.Date); err == nil {
			result.ExtractedDate = &t
		}
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return strings.TrimSpace(*s)
	}
	switch docType {
	case models.DocumentTypePayment:
		result.PaymentMethod = deref(f.PaymentMethod)
		result.Payer = deref(f.Payer)
		result.Receiver = deref(f.Receiver)
	default:
		result.ExtractedDescription = deref(f.Description)
		result.Merchant = deref(f.Merchant)
	}

	return result, nil
}

func parseLooseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
