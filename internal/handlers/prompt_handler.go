package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"genai-proxy-api/internal/models"
	"genai-proxy-api/internal/services"
	"genai-proxy-api/pkg/lambda"
)

// PromptHandler handles prompt proxy HTTP requests
type PromptHandler struct {
	promptService services.PromptService
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService services.PromptService) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
	}
}

// @Summary Generate text from a prompt
// @Description Relay a prompt to the generative-language API and return the candidate text
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Prompt payload"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate [post]
func (h *PromptHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A syntactically valid body without a prompt fails the required
		// binding; report it the same way the serverless face does.
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Missing prompt",
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid JSON in request body",
			Details: err.Error(),
		})
		return
	}

	text, err := h.promptService.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{
		Success:  true,
		Response: text,
	})
}

// HandleGenerate is the serverless face of the same pipeline. Unlike the gin
// face it owns the whole request lifecycle, so method and body checks happen
// here, and any panic is converted into the 500 path instead of escaping to
// the runtime.
func (h *PromptHandler) HandleGenerate(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Recovered panic in prompt handler")
			resp = lambda.JSONResponse(http.StatusInternalServerError, ErrorResponse{
				Message: fmt.Sprintf("Internal server error: %v", r),
			})
			err = nil
		}
	}()

	if req.Method != http.MethodPost {
		return lambda.JSONResponse(http.StatusMethodNotAllowed, ErrorResponse{
			Message: "Method not allowed. Use POST.",
		}), nil
	}

	if len(req.Body) == 0 {
		return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{
			Message: "Missing request body",
		}), nil
	}

	var payload models.GenerateRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid JSON in request body",
			Details: err.Error(),
		}), nil
	}

	text, err := h.promptService.Generate(ctx, payload.Prompt)
	if err != nil {
		status, errResp := mapServiceError(err)
		return lambda.JSONResponse(status, errResp), nil
	}

	return lambda.JSONResponse(http.StatusOK, models.GenerateResponse{
		Success:  true,
		Response: text,
	}), nil
}

// mapServiceError converts pipeline errors into the response taxonomy shared
// by both transport faces.
func mapServiceError(err error) (int, ErrorResponse) {
	switch {
	case isMissingPromptError(err):
		return http.StatusBadRequest, ErrorResponse{Message: "Missing prompt"}

	case isConfigError(err):
		return http.StatusInternalServerError, ErrorResponse{Message: "Server configuration error"}

	default:
		if shapeErr, ok := asShapeError(err); ok {
			logrus.WithFields(logrus.Fields{
				"upstream_status": shapeErr.StatusCode,
				"reason":          shapeErr.Reason,
			}).Error("Upstream response failed shape validation")
			return shapeErrorStatus(shapeErr), ErrorResponse{
				Message: "Unexpected response from upstream API",
				Details: string(shapeErr.RawBody),
			}
		}

		logrus.WithError(err).Error("Prompt generation failed")
		return http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		}
	}
}
