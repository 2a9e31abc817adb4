package httpclient

import (
	"context"

	"esignatures-go/esignatures"
	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/domain/repository"
)

// APILogSaver stores client call logs through the API log repository
type APILogSaver struct {
	repo repository.APILogRepository
}

func NewAPILogSaver(repo repository.APILogRepository) *APILogSaver {
	return &APILogSaver{repo: repo}
}

func (s *APILogSaver) Save(ctx context.Context, log *esignatures.CallLog) error {
	return s.repo.Save(ctx, toAPILog(log))
}

func toAPILog(log *esignatures.CallLog) *entity.APILog {
	apiLog := &entity.APILog{
		RequestID:    log.RequestID,
		Operation:    log.Operation,
		Endpoint:     log.Endpoint,
		Method:       log.Method,
		RequestBody:  log.RequestBody,
		ResponseBody: log.ResponseBody,
		StatusCode:   log.StatusCode,
		Duration:     log.Duration.Milliseconds(),
		CreatedAt:    log.CreatedAt,
	}
	if log.Err != nil {
		apiLog.Error = log.Err.Error()
	}
	return apiLog
}
