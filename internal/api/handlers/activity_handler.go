package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type ActivityHandler struct {
	svc services.ActivityService
}

func NewActivityHandler(svc services.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type CreateActivityRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Color       string `json:"color" binding:"required"`
	Image       string `json:"image"`
}

type UpdateActivityRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (h *ActivityHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "ActivityHandler.Get")
	if !ok {
		return
	}

	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ActivityHandler.Create", "invalid activity data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.Activity{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Image:       req.Image,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "ActivityHandler.Update")
	if !ok {
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ActivityHandler.Update", "invalid activity data", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Icon != nil {
		existing.Icon = *req.Icon
	}
	if req.Color != nil {
		existing.Color = *req.Color
	}
	if req.Image != nil {
		existing.Image = *req.Image
	}

	row, err := h.svc.Update(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "ActivityHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Activity deleted successfully"})
}
