package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type ContactHandler struct {
	svc services.ContactMessageService
}

func NewContactHandler(svc services.ContactMessageService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type CreateContactMessageRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type contactCreatedResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *models.ContactMessage `json:"data"`
}

func (h *ContactHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create is the public contact form endpoint. The response is written as
// soon as the row is saved; the notification mails run in the background.
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContactHandler.Create", "invalid contact message data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, contactCreatedResponse{
		Success: true,
		Message: "Message sent successfully!",
		Data:    row,
	})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "ContactHandler.MarkRead")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Message marked as read"})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "ContactHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Message deleted successfully"})
}
