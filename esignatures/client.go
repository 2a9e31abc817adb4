// Package esignatures is a client for the eSignatures.io contract API.
//
// A Client is built from the account's secret token and is safe for concurrent
// use: it keeps no state besides the secret and the derived base URL. Every call
// sends exactly one request and waits for the complete response. Nothing is
// retried.
package esignatures

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultHost is the API host used by NewClient.
const DefaultHost = "esignatures.io"

const (
	OperationListTemplates = "list_templates"
	OperationQueryTemplate = "query_template"
	OperationSendContract  = "send_contract"
	OperationQueryContract = "query_contract"
)

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	apiSecret  string
	baseURL    string
	redacted   string
	httpClient Doer
	logger     *zap.Logger
	savers     []CallLogSaver
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient. Timeouts are configured there.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBaseURL points the client at another API root, e.g. a sandbox or a test
// server. The secret is still sent as the basic-auth username.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithCallLogSaver registers a saver notified after every call. May be repeated.
func WithCallLogSaver(saver CallLogSaver) Option {
	return func(c *Client) {
		if saver != nil {
			c.savers = append(c.savers, saver)
		}
	}
}

// NewClient creates a client authenticated with apiSecret.
func NewClient(apiSecret string, opts ...Option) (*Client, error) {
	if apiSecret == "" {
		return nil, newValidationError("api_secret", "api secret is required")
	}

	base := url.URL{
		Scheme: "https",
		User:   url.UserPassword(apiSecret, ""),
		Host:   DefaultHost,
		Path:   "/api/",
	}

	c := &Client{
		apiSecret:  apiSecret,
		baseURL:    base.String(),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.redacted = redactURL(c.baseURL)
	return c, nil
}

// BaseURL returns the API root requests are sent to. Unless WithBaseURL was
// used, it carries the secret as the basic-auth username.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.User != nil {
		u.User = url.User("xxxxx")
	}
	return u.String()
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func (e *dataEnvelope[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Data == nil {
		return ErrMissingData
	}
	return json.Unmarshal(raw.Data, &e.Data)
}

// redactError strips the secret from errors that quote the request URL.
// net/http only masks the password, and the secret is the username.
func (c *Client) redactError(err error, endpoint string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = endpoint
	}
	if msg := err.Error(); strings.Contains(msg, c.apiSecret) {
		return &redactedError{msg: strings.ReplaceAll(msg, c.apiSecret, "xxxxx"), err: err}
	}
	return err
}

// ListTemplates returns the templates the account can send.
func (c *Client) ListTemplates(ctx context.Context) ([]interface{}, error) {
	var response dataEnvelope[[]interface{}]
	if err := c.doRequest(ctx, OperationListTemplates, http.MethodGet, "templates/", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// QueryTemplate returns the details of a template, including its placeholder
// keys (the {{key}} tokens of the template editor).
func (c *Client) QueryTemplate(ctx context.Context, templateID string) (map[string]interface{}, error) {
	if templateID == "" {
		return nil, newValidationError("template_id", "template id is required")
	}

	var response dataEnvelope[map[string]interface{}]
	path := "templates/" + url.PathEscape(templateID)
	if err := c.doRequest(ctx, OperationQueryTemplate, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// SendContract creates a contract from a template and sends it to the signers.
// The whole response body is returned.
func (c *Client) SendContract(ctx context.Context, req *ContractRequest) (map[string]interface{}, error) {
	if req == nil {
		return nil, newValidationError("contract", "request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var response map[string]interface{}
	if err := c.doRequest(ctx, OperationSendContract, http.MethodPost, "contracts", req.Payload(), &response); err != nil {
		return nil, err
	}
	return response, nil
}

// QueryContract returns the current state of a contract.
func (c *Client) QueryContract(ctx context.Context, contractID string) (map[string]interface{}, error) {
	if contractID == "" {
		return nil, newValidationError("contract_id", "contract id is required")
	}

	var response dataEnvelope[map[string]interface{}]
	path := "contracts/" + url.PathEscape(contractID)
	if err := c.doRequest(ctx, OperationQueryContract, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *Client) doRequest(ctx context.Context, operation, method, path string, body interface{}, result interface{}) error {
	fullURL := c.baseURL + path
	endpoint := c.redacted + path
	requestID := uuid.NewString()

	var bodyReader io.Reader
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", c.redactError(err, endpoint))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.SetBasicAuth(c.apiSecret, "")

	c.logRequest(requestID, method, endpoint, req.Header, jsonBody)

	callLog := &CallLog{
		RequestID:   requestID,
		Operation:   operation,
		Method:      method,
		Endpoint:    endpoint,
		RequestBody: string(jsonBody),
		CreatedAt:   time.Now(),
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = c.redactError(err, endpoint)
		callLog.Duration = time.Since(startTime)
		callLog.Err = err
		c.saveCallLog(callLog)
		c.logger.Error("esignatures request failed",
			zap.String("request_id", requestID),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	duration := time.Since(startTime)
	if err != nil {
		callLog.Duration = duration
		callLog.StatusCode = resp.StatusCode
		callLog.Err = err
		c.saveCallLog(callLog)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logResponse(requestID, resp.StatusCode, resp.Status, duration, resp.Header, respBody)

	callLog.StatusCode = resp.StatusCode
	callLog.ResponseBody = string(respBody)
	callLog.Duration = duration

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Method:     method,
			Endpoint:   endpoint,
		}
		callLog.Err = apiErr
		c.saveCallLog(callLog)

		c.logger.Error("esignatures request returned an error status",
			zap.String("request_id", requestID),
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", truncateString(string(respBody), maxBodyLogLength)),
		)
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			callLog.Err = err
			c.saveCallLog(callLog)
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	c.saveCallLog(callLog)
	return nil
}
