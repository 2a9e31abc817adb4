package httpclient

import (
	"net/http"

	"go.uber.org/zap"

	"esignatures-go/esignatures"
	"esignatures-go/internal/config"
	"esignatures-go/internal/infrastructure/metrics"
)

// NewESignaturesClient builds the API client from config. Every finished call
// is forwarded to the audit log and, when enabled, to the metrics recorder.
func NewESignaturesClient(cfg *config.Config, logSaver *APILogSaver, recorder *metrics.Recorder, logger *zap.Logger) (*esignatures.Client, error) {
	opts := []esignatures.Option{
		esignatures.WithHTTPClient(&http.Client{
			Timeout: cfg.ESignatures.Timeout,
		}),
		esignatures.WithLogger(logger.Named("esignatures")),
		esignatures.WithBaseURL(cfg.ESignatures.BaseURL),
		esignatures.WithCallLogSaver(logSaver),
	}
	if recorder != nil {
		opts = append(opts, esignatures.WithCallLogSaver(recorder))
	}

	client, err := esignatures.NewClient(cfg.ESignatures.APISecret, opts...)
	if err != nil {
		return nil, err
	}

	logger.Info("eSignatures client initialized",
		zap.Bool("custom_base_url", cfg.ESignatures.BaseURL != ""),
		zap.Duration("timeout", cfg.ESignatures.Timeout),
	)

	return client, nil
}
