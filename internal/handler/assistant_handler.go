package handler

import (
	"github.com/gin-gonic/gin"

	"bloom/internal/service"
)

// AssistantHandler handles the chat, document and insight endpoints.
type AssistantHandler struct {
	assistantService service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat handles POST /bloomLogic/chat
// @Summary Chat with the finance assistant
// @Description Sends a chat message to the model. Off-topic questions are declined.
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Chat message"
// @Success 200 {object} MessageResponse "Assistant reply"
// @Failure 400 {object} ErrorResponse "Empty or malformed message"
// @Failure 500 {object} ErrorResponse "API key not configured"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	msg, ok := bindMessage(c)
	if !ok {
		return
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), msg)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondMessage(c, reply)
}

// Insights handles POST /bloomLogic/insights
// @Summary Generate financial insights
// @Description Turns a financial summary into 3-4 personalized insights.
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Financial summary"
// @Success 200 {object} MessageResponse "Insights"
// @Failure 400 {object} ErrorResponse "Empty or malformed message"
// @Failure 500 {object} ErrorResponse "API key not configured"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/insights [post]
func (h *AssistantHandler) Insights(c *gin.Context) {
	msg, ok := bindMessage(c)
	if !ok {
		return
	}

	reply, err := h.assistantService.Insights(c.Request.Context(), msg)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondMessage(c, reply)
}

// ProcessFile handles POST /bloomLogic/processFile
// @Summary Ask a question about a document
// @Description Uploads a PDF or CSV and answers a question from its financial content.
// @Tags assistant
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or CSV document"
// @Param user_question formData string false "Question about the document"
// @Success 200 {object} MessageResponse "Answer, or a refusal for non-financial documents"
// @Failure 400 {object} ErrorResponse "Missing file or unsupported format"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "PDF support or API key missing"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/processFile [post]
func (h *AssistantHandler) ProcessFile(c *gin.Context) {
	input, closeFile, ok := uploadFromForm(c)
	if !ok {
		return
	}
	defer closeFile()

	reply, err := h.assistantService.ProcessFile(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondMessage(c, reply)
}

// GeminiResponse handles GET /bloomLogic/geminiResponse
// @Summary Model gateway smoke test
// @Description Sends a fixed prompt to the configured model.
// @Tags assistant
// @Produce json
// @Success 200 {object} MessageResponse "Model reply"
// @Failure 500 {object} ErrorResponse "API key not configured"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/geminiResponse [get]
func (h *AssistantHandler) GeminiResponse(c *gin.Context) {
	reply, err := h.assistantService.Ping(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondMessage(c, reply)
}
