package esignatures

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxBodyLogLength   = 500   // Maximum characters to log for body
	maxBodyStoreLength = 10000 // Maximum characters kept in a CallLog body
)

var base64Pattern = regexp.MustCompile(`"([A-Za-z0-9+/=]{100,})"`)

// CallLog describes one finished call to the API. It is handed to every
// registered CallLogSaver.
type CallLog struct {
	RequestID    string
	Operation    string
	Method       string
	Endpoint     string // secret redacted
	RequestBody  string
	ResponseBody string
	StatusCode   int
	Duration     time.Duration
	Err          error
	CreatedAt    time.Time
}

// Succeeded reports whether the call got a 200 response.
func (l *CallLog) Succeeded() bool {
	return l.Err == nil && l.StatusCode == http.StatusOK
}

// CallLogSaver receives call logs, e.g. for auditing or metrics.
type CallLogSaver interface {
	Save(ctx context.Context, log *CallLog) error
}

// truncateString truncates a string if it exceeds maxLength
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + fmt.Sprintf("... [truncated, total %d chars]", len(s))
}

// truncateBase64InJSON shortens base64-like values (logos, embedded files)
func truncateBase64InJSON(jsonStr string, maxLength int) string {
	return base64Pattern.ReplaceAllStringFunc(jsonStr, func(match string) string {
		content := match[1 : len(match)-1]
		if len(content) > maxLength {
			return fmt.Sprintf(`"%s... [base64 truncated, total %d chars]"`, content[:maxLength], len(content))
		}
		return match
	})
}

// formatHeadersForLog formats HTTP headers for logging in "Header Key=Value" format
func formatHeadersForLog(headers http.Header) string {
	var sb strings.Builder
	for key, values := range headers {
		for _, value := range values {
			if key == "Authorization" {
				value = "[redacted]"
			} else if len(value) > 100 {
				value = value[:100] + "..."
			}
			sb.WriteString(fmt.Sprintf("Header %s=%s\n", key, value))
		}
	}
	return sb.String()
}

func (c *Client) logRequest(requestID, method, endpoint string, headers http.Header, body []byte) {
	var logBuilder strings.Builder

	logBuilder.WriteString("\n>>> [ESIGNATURES-REQ]\n")
	logBuilder.WriteString(fmt.Sprintf("Request-ID: %s\n", requestID))
	logBuilder.WriteString(fmt.Sprintf("Method: %s\n", method))
	logBuilder.WriteString(fmt.Sprintf("URL: %s\n", endpoint))
	logBuilder.WriteString(formatHeadersForLog(headers))

	if len(body) > 0 {
		bodyStr := truncateBase64InJSON(string(body), 100)
		bodyStr = truncateString(bodyStr, maxBodyLogLength)
		logBuilder.WriteString(fmt.Sprintf("REQUEST BODY: %s\n", bodyStr))
	}

	c.logger.Info(logBuilder.String())
}

func (c *Client) logResponse(requestID string, statusCode int, statusText string, duration time.Duration, headers http.Header, body []byte) {
	var logBuilder strings.Builder

	logBuilder.WriteString("\n>>> [ESIGNATURES-RESPONSE]\n")
	logBuilder.WriteString(fmt.Sprintf("Request-ID: %s\n", requestID))
	logBuilder.WriteString(fmt.Sprintf("Status: %d %s\n", statusCode, statusText))
	logBuilder.WriteString(fmt.Sprintf("Duration: %s\n", duration))
	logBuilder.WriteString(formatHeadersForLog(headers))

	bodyStr := truncateString(string(body), maxBodyLogLength)
	logBuilder.WriteString(fmt.Sprintf("Body: %s\n", bodyStr))

	c.logger.Info(logBuilder.String())
}

// saveCallLog hands the call to every saver without blocking the caller.
func (c *Client) saveCallLog(log *CallLog) {
	if len(c.savers) == 0 {
		return
	}

	if log.RequestBody != "" {
		log.RequestBody = truncateString(truncateBase64InJSON(log.RequestBody, 100), maxBodyStoreLength)
	}
	log.ResponseBody = truncateString(log.ResponseBody, maxBodyStoreLength)

	for _, saver := range c.savers {
		go func(saver CallLogSaver) {
			if err := saver.Save(context.Background(), log); err != nil {
				c.logger.Warn("Failed to save esignatures call log",
					zap.String("request_id", log.RequestID),
					zap.String("operation", log.Operation),
					zap.Error(err),
				)
			}
		}(saver)
	}
}
