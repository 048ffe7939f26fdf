package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"receiptchain/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("record not found")

type RecognitionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecognitionRepository(db *pgxpool.Pool, logger *zap.Logger) *RecognitionRepository {
	return &RecognitionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RecognitionRepository) Create(ctx context.Context, rec *models.Recognition) error {
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("failed to encode recognition result: %w", err)
	}

	query := squirrel.Insert("recognitions").
		Columns("id", "document_type", "image_format", "image_hash", "confidence", "result", "created_at").
		Values(rec.ID, rec.DocumentType, rec.ImageFormat, rec.ImageHash, rec.Confidence, result, rec.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RecognitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error) {
	query := squirrel.Select("id", "document_type", "image_format", "image_hash", "confidence", "result", "created_at").
		From("recognitions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec models.Recognition
	var result []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.DocumentType, &rec.ImageFormat, &rec.ImageHash, &rec.Confidence, &result, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(result, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to decode recognition result: %w", err)
	}

	return &rec, nil
}

func (r *RecognitionRepository) Statistics(ctx context.Context) (*models.RecognitionStatistics, error) {
	query := squirrel.Select("document_type", "COUNT(*)", "COALESCE(SUM(confidence), 0)", "MAX(created_at)").
		From("recognitions").
		GroupBy("document_type").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &models.RecognitionStatistics{ByDocumentType: make(map[models.DocumentType]int64)}
	var confidenceSum float64
	for rows.Next() {
		var (
			docType models.DocumentType
			count   int64
			sum     float64
			last    time.Time
		)
		if err := rows.Scan(&docType, &count, &sum, &last); err != nil {
			return nil, err
		}
		stats.ByDocumentType[docType] = count
		stats.Total += count
		confidenceSum += sum
		if stats.LastRecognitionAt == nil || last.After(*stats.LastRecognitionAt) {
			l := last
			stats.LastRecognitionAt = &l
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		stats.AverageConfidence = confidenceSum / float64(stats.Total)
	}
	return stats, nil
}

// MemoryRecognitionRepository keeps the most recent recognitions in process.
// Once full, the oldest record is evicted.
type MemoryRecognitionRepository struct {
	mu    sync.RWMutex
	limit int
	order []uuid.UUID
	byID  map[uuid.UUID]*models.Recognition
}

func NewMemoryRecognitionRepository(limit int) *MemoryRecognitionRepository {
	if limit <= 0 {
		limit = 1000
	}
	return &MemoryRecognitionRepository{
		limit: limit,
		byID:  make(map[uuid.UUID]*models.Recognition, limit),
	}
}

func (r *MemoryRecognitionRepository) Create(ctx context.Context, rec *models.Recognition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rec.ID]; ok {
		return fmt.Errorf("recognition %s already exists", rec.ID)
	}
	if len(r.order) >= r.limit {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.byID, oldest)
	}

	cp := *rec
	r.order = append(r.order, rec.ID)
	r.byID[rec.ID] = &cp
	return nil
}

func (r *MemoryRecognitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *MemoryRecognitionRepository) Statistics(ctx context.Context) (*models.RecognitionStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &models.RecognitionStatistics{ByDocumentType: make(map[models.DocumentType]int64)}
	var confidenceSum float64
	for _, id := range r.order {
		rec := r.byID[id]
		stats.Total++
		stats.ByDocumentType[rec.DocumentType]++
		confidenceSum += rec.Confidence
		if stats.LastRecognitionAt == nil || rec.CreatedAt.After(*stats.LastRecognitionAt) {
			last := rec.CreatedAt
			stats.LastRecognitionAt = &last
		}
	}
	if stats.Total > 0 {
		stats.AverageConfidence = confidenceSum / float64(stats.Total)
	}
	return stats, nil
}
