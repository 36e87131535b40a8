package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store request ID in context
const RequestIDKey = "request_id"

// CorrelationIDKey is the key used to store correlation ID in context
const CorrelationIDKey = "correlation_id"

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// CorrelationID middleware adds correlation ID for distributed tracing
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		c.Set(CorrelationIDKey, correlationID)
		c.Header("X-Correlation-ID", correlationID)
		c.Next()
	}
}

// StructuredLogger provides structured logging with request context
func StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Capture request body for logging (prompts stay small, but cap anyway)
		var requestBody []byte
		if c.Request.Body != nil && c.Request.ContentLength < 1024*10 {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		// Wrap response writer to capture response body
		responseBodyWriter := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = responseBodyWriter

		c.Next()

		// Calculate latency
		latency := time.Since(start)

		requestID := c.GetString(RequestIDKey)
		correlationID := c.GetString(CorrelationIDKey)

		// Build log fields
		fields := logrus.Fields{
			"timestamp":      start.Format(time.RFC3339Nano),
			"request_id":     requestID,
			"correlation_id": correlationID,
			"method":         c.Request.Method,
			"path":           path,
			"status_code":    c.Writer.Status(),
			"latency_ms":     float64(latency.Nanoseconds()) / 1000000,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
			"content_length": c.Request.ContentLength,
			"response_size":  c.Writer.Size(),
		}

		if raw != "" {
			fields["query"] = raw
		}

		// Prompts and upstream diagnostics are only logged when debugging
		if gin.Mode() == gin.DebugMode && len(requestBody) > 0 {
			fields["request_body"] = string(requestBody)
		}
		if gin.Mode() == gin.DebugMode && c.Writer.Status() >= 400 && responseBodyWriter.body.Len() < 1024 {
			fields["response_body"] = responseBodyWriter.body.String()
		}

		// Log based on status code
		switch {
		case c.Writer.Status() >= 500:
			logrus.WithFields(fields).Error("Server error")
		case c.Writer.Status() >= 400:
			logrus.WithFields(fields).Warn("Client error")
		default:
			logrus.WithFields(fields).Info("Request completed")
		}
	}
}

// ErrorTracker logs and tracks errors for monitoring
func ErrorTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			requestID := c.GetString(RequestIDKey)

			fields := logrus.Fields{
				"http_error":  true,
				"request_id":  requestID,
				"method":      c.Request.Method,
				"path":        c.Request.URL.Path,
				"status_code": c.Writer.Status(),
				"client_ip":   c.ClientIP(),
				"user_agent":  c.Request.UserAgent(),
			}

			if c.Writer.Status() >= 500 {
				logrus.WithFields(fields).Error("HTTP server error")
			} else {
				logrus.WithFields(fields).Warn("HTTP client error")
			}
		}
	}
}
