package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
	RequestID        string            `json:"request_id,omitempty"`
	Timestamp        string            `json:"timestamp"`
}

// EnhancedErrorHandler provides comprehensive error handling
func EnhancedErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := c.GetString(RequestIDKey)

			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
				"error_type": fmt.Sprintf("%d", err.Type),
			}).Error("Request error")

			var response ErrorResponse
			response.RequestID = requestID
			response.Timestamp = time.Now().Format(time.RFC3339)

			switch err.Type {
			case gin.ErrorTypeBind:
				// Handle validation errors from binding
				if validationErrors, ok := err.Err.(validator.ValidationErrors); ok {
					response.Error = "Validation failed"
					response.Message = "Request validation failed"
					response.ValidationErrors = formatValidationErrors(validationErrors)
					c.JSON(http.StatusBadRequest, response)
				} else {
					response.Error = "Invalid request format"
					response.Message = err.Error()
					c.JSON(http.StatusBadRequest, response)
				}

			case gin.ErrorTypePublic:
				// Handle public errors (business logic errors)
				response.Error = "Request failed"
				response.Message = err.Error()
				c.JSON(http.StatusBadRequest, response)

			default:
				// Handle internal errors (don't expose details)
				response.Error = "Internal server error"
				response.Message = "An internal error occurred"
				c.JSON(http.StatusInternalServerError, response)
			}
		}
	}
}

// ContentTypeValidation validates request content types
func ContentTypeValidation(allowedTypes ...string) gin.HandlerFunc {
	if len(allowedTypes) == 0 {
		allowedTypes = []string{"application/json"}
	}

	return func(c *gin.Context) {
		// Skip validation for GET, HEAD, OPTIONS requests
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:     "Missing Content-Type header",
				Message:   "Content-Type header is required",
				RequestID: c.GetString(RequestIDKey),
				Timestamp: time.Now().Format(time.RFC3339),
			})
			c.Abort()
			return
		}

		// Extract main content type (ignore charset, boundary, etc.)
		mainType := strings.Split(contentType, ";")[0]
		mainType = strings.TrimSpace(mainType)

		allowed := false
		for _, allowedType := range allowedTypes {
			if mainType == allowedType {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
				Error:     "Unsupported Content-Type",
				Message:   fmt.Sprintf("Content-Type '%s' is not supported. Allowed types: %v", mainType, allowedTypes),
				RequestID: c.GetString(RequestIDKey),
				Timestamp: time.Now().Format(time.RFC3339),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestSizeLimit limits the size of request bodies
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:     "Request too large",
				Message:   fmt.Sprintf("Request body size (%d bytes) exceeds maximum allowed size (%d bytes)", c.Request.ContentLength, maxSize),
				RequestID: c.GetString(RequestIDKey),
				Timestamp: time.Now().Format(time.RFC3339),
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

func formatValidationErrors(validationErrors validator.ValidationErrors) []ValidationError {
	var errors []ValidationError

	for _, err := range validationErrors {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("%s is invalid", err.Field())
		}

		errors = append(errors, ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: message,
		})
	}

	return errors
}
