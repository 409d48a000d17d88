package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Proficiency int    `json:"proficiency"`
	Description string `json:"description"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Proficiency *int    `json:"proficiency,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (h *SkillHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "SkillHandler.Get")
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

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Create", "invalid skill data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "SkillHandler.Update")
	if !ok {
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Update", "invalid skill data", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Proficiency != nil {
		existing.Proficiency = *req.Proficiency
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}

	row, err := h.svc.Update(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "SkillHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Skill deleted successfully"})
}
