package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esignatures-go/esignatures"
	"esignatures-go/internal/config"
)

func TestNewRecorder_Disabled(t *testing.T) {
	assert.Nil(t, NewRecorder(&config.Config{}))
}

func TestRecorder_Save(t *testing.T) {
	r := NewRecorder(&config.Config{Metrics: config.MetricsConfig{Enabled: true}})
	require.NotNil(t, r)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &esignatures.CallLog{
		Operation:  esignatures.OperationListTemplates,
		Method:     http.MethodGet,
		StatusCode: http.StatusOK,
		Duration:   20 * time.Millisecond,
	}))
	require.NoError(t, r.Save(ctx, &esignatures.CallLog{
		Operation:  esignatures.OperationListTemplates,
		Method:     http.MethodGet,
		StatusCode: http.StatusOK,
		Duration:   30 * time.Millisecond,
	}))
	require.NoError(t, r.Save(ctx, &esignatures.CallLog{
		Operation: esignatures.OperationSendContract,
		Method:    http.MethodPost,
		Err:       errors.New("dial tcp: refused"),
	}))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues("list_templates", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("send_contract", "POST", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.requests))
}
