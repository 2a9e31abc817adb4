package repository

import (
	"context"
	"errors"

	"esignatures-go/internal/domain/entity"
)

type EsignRepository interface {
	ListTemplates(ctx context.Context) ([]interface{}, error)
	QueryTemplate(ctx context.Context, templateID string) (map[string]interface{}, error)
	// SendContract converts the request into library values (which may reject
	// it with an esignatures.ValidationError) and posts it.
	SendContract(ctx context.Context, req *entity.SendContractRequest) (map[string]interface{}, error)
	QueryContract(ctx context.Context, contractID string) (map[string]interface{}, error)
}

// ErrStorageDisabled is returned by APILogRepository reads when no database is configured
var ErrStorageDisabled = errors.New("api log storage is disabled")

// APILogRepository stores and reads the audit trail of outbound API calls
type APILogRepository interface {
	Save(ctx context.Context, log *entity.APILog) error
	FindRecent(ctx context.Context, limit int) ([]entity.APILog, error)
	Search(ctx context.Context, query string, limit int) ([]entity.APILog, error)
}
