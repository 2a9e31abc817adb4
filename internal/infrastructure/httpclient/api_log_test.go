package httpclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esignatures-go/esignatures"
	"esignatures-go/internal/domain/entity"
)

type memoryLogRepo struct {
	saved []*entity.APILog
}

func (m *memoryLogRepo) Save(_ context.Context, log *entity.APILog) error {
	m.saved = append(m.saved, log)
	return nil
}

func (m *memoryLogRepo) FindRecent(context.Context, int) ([]entity.APILog, error) { return nil, nil }

func (m *memoryLogRepo) Search(context.Context, string, int) ([]entity.APILog, error) {
	return nil, nil
}

func TestAPILogSaver_Save(t *testing.T) {
	repo := &memoryLogRepo{}
	saver := NewAPILogSaver(repo)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := saver.Save(context.Background(), &esignatures.CallLog{
		RequestID:    "req-1",
		Operation:    esignatures.OperationQueryContract,
		Method:       "GET",
		Endpoint:     "https://xxxxx@esignatures.io/api/contracts/c-1",
		ResponseBody: `{"error":"gone"}`,
		StatusCode:   410,
		Duration:     1500 * time.Millisecond,
		Err:          errors.New("status=410"),
		CreatedAt:    created,
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	got := repo.saved[0]
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "query_contract", got.Operation)
	assert.Equal(t, int64(1500), got.Duration)
	assert.Equal(t, 410, got.StatusCode)
	assert.Equal(t, "status=410", got.Error)
	assert.Equal(t, created, got.CreatedAt)
}
