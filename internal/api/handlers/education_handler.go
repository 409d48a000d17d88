package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type EducationHandler struct {
	svc services.EducationService
}

func NewEducationHandler(svc services.EducationService) *EducationHandler {
	return &EducationHandler{svc: svc}
}

type CreateEducationRequest struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Description string `json:"description"`
	GPA         string `json:"gpa"`
	Image       string `json:"image"`
}

type UpdateEducationRequest struct {
	Degree      *string `json:"degree,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Year        *string `json:"year,omitempty"`
	Description *string `json:"description,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (h *EducationHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "EducationHandler.Get")
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

func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EducationHandler.Create", "invalid education data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.Education{
		Degree:      req.Degree,
		Institution: req.Institution,
		Year:        req.Year,
		Description: req.Description,
		GPA:         req.GPA,
		Image:       req.Image,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "EducationHandler.Update")
	if !ok {
		return
	}

	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EducationHandler.Update", "invalid education data", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Degree != nil {
		existing.Degree = *req.Degree
	}
	if req.Institution != nil {
		existing.Institution = *req.Institution
	}
	if req.Year != nil {
		existing.Year = *req.Year
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.GPA != nil {
		existing.GPA = *req.GPA
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

func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "EducationHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Education deleted successfully"})
}
