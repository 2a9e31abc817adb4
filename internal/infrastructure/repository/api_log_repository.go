package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/domain/repository"
	"esignatures-go/internal/infrastructure/database"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

type apiLogRepository struct {
	db     *database.Database
	logger *zap.Logger
}

// NewAPILogRepository creates a new API log repository. With a nil database
// Save is a no-op and reads return repository.ErrStorageDisabled.
func NewAPILogRepository(db *database.Database, logger *zap.Logger) repository.APILogRepository {
	return &apiLogRepository{
		db:     db,
		logger: logger,
	}
}

// Save saves an API log entry to the database
func (r *apiLogRepository) Save(ctx context.Context, log *entity.APILog) error {
	if r.db == nil {
		return nil
	}

	query := `
		INSERT INTO api_logs (request_id, operation, endpoint, method, request_body, response_body, status_code, duration_ms, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		log.RequestID,
		log.Operation,
		log.Endpoint,
		log.Method,
		log.RequestBody,
		log.ResponseBody,
		log.StatusCode,
		log.Duration,
		log.Error,
		log.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to save API log",
			zap.String("request_id", log.RequestID),
			zap.String("endpoint", log.Endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save API log: %w", err)
	}

	return nil
}

// FindRecent returns the newest entries first
func (r *apiLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.APILog, error) {
	if r.db == nil {
		return nil, repository.ErrStorageDisabled
	}

	query := `
		SELECT id, request_id, operation, endpoint, method, request_body, response_body, status_code, duration_ms, error, created_at
		FROM api_logs
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.query(ctx, query, normalizeLimit(limit))
}

// Search matches the query against request id, operation, endpoint and bodies
func (r *apiLogRepository) Search(ctx context.Context, q string, limit int) ([]entity.APILog, error) {
	if r.db == nil {
		return nil, repository.ErrStorageDisabled
	}

	query := `
		SELECT id, request_id, operation, endpoint, method, request_body, response_body, status_code, duration_ms, error, created_at
		FROM api_logs
		WHERE request_id ILIKE $1 OR operation ILIKE $1 OR endpoint ILIKE $1
			OR request_body ILIKE $1 OR response_body ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.query(ctx, query, "%"+q+"%", normalizeLimit(limit))
}

func (r *apiLogRepository) query(ctx context.Context, query string, args ...interface{}) ([]entity.APILog, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query API logs: %w", err)
	}
	defer rows.Close()

	logs := make([]entity.APILog, 0)
	for rows.Next() {
		var log entity.APILog
		if err := rows.Scan(
			&log.ID,
			&log.RequestID,
			&log.Operation,
			&log.Endpoint,
			&log.Method,
			&log.RequestBody,
			&log.ResponseBody,
			&log.StatusCode,
			&log.Duration,
			&log.Error,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan API log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read API logs: %w", err)
	}
	return logs, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLogLimit
	}
	if limit > maxLogLimit {
		return maxLogLimit
	}
	return limit
}
