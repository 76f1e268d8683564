package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloom/internal/domain"
	"bloom/internal/service"
)

// MessageRequest is the JSON body of the text endpoints.
type MessageRequest struct {
	Message string `json:"message" example:"How can I cut my grocery spending?"`
}

// bindMessage decodes a MessageRequest. It writes the error response and
// returns false on failure.
func bindMessage(c *gin.Context) (string, bool) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON of the form {\"message\": \"...\"}")
		return "", false
	}
	return req.Message, true
}

// uploadFromForm reads the multipart "file" field. It writes the error
// response and returns false on failure; the caller must call the returned
// closer on success.
func uploadFromForm(c *gin.Context) (service.UploadInput, func(), bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			HandleError(c, domain.ErrFileTooLarge)
		} else {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		}
		return service.UploadInput{}, nil, false
	}

	input := service.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		File:     file,
		Question: c.PostForm("user_question"),
	}
	return input, func() { _ = file.Close() }, true
}
