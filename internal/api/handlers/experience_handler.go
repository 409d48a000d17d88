package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

type CreateExperienceRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      *string  `json:"endDate"`
	Description  string   `json:"description"`
	Technologies string   `json:"technologies"`
	Images       []string `json:"images"`
}

type UpdateExperienceRequest struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Technologies *string   `json:"technologies,omitempty"`
	Images       *[]string `json:"images,omitempty"`
}

func (h *ExperienceHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "ExperienceHandler.Get")
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

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Create", "invalid experience data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.Experience{
		Title:        req.Title,
		Company:      req.Company,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
		Technologies: req.Technologies,
		Images:       req.Images,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "ExperienceHandler.Update")
	if !ok {
		return
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Update", "invalid experience data", err))
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
	if req.Company != nil {
		existing.Company = *req.Company
	}
	if req.StartDate != nil {
		existing.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		existing.EndDate = req.EndDate
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Technologies != nil {
		existing.Technologies = *req.Technologies
	}
	if req.Images != nil {
		existing.Images = *req.Images
	}

	row, err := h.svc.Update(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "ExperienceHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Experience deleted successfully"})
}
