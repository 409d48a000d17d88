package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type CertificationHandler struct {
	svc services.CertificationService
}

func NewCertificationHandler(svc services.CertificationService) *CertificationHandler {
	return &CertificationHandler{svc: svc}
}

type CreateCertificationRequest struct {
	Name          string `json:"name" binding:"required"`
	Issuer        string `json:"issuer" binding:"required"`
	Year          string `json:"year" binding:"required"`
	CredentialURL string `json:"credentialUrl"`
}

type UpdateCertificationRequest struct {
	Name          *string `json:"name,omitempty"`
	Issuer        *string `json:"issuer,omitempty"`
	Year          *string `json:"year,omitempty"`
	CredentialURL *string `json:"credentialUrl,omitempty"`
}

func (h *CertificationHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CertificationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "CertificationHandler.Get")
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

func (h *CertificationHandler) Create(c *gin.Context) {
	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CertificationHandler.Create", "invalid certification data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.Certification{
		Name:          req.Name,
		Issuer:        req.Issuer,
		Year:          req.Year,
		CredentialURL: req.CredentialURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "CertificationHandler.Update")
	if !ok {
		return
	}

	var req UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CertificationHandler.Update", "invalid certification data", err))
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
	if req.Issuer != nil {
		existing.Issuer = *req.Issuer
	}
	if req.Year != nil {
		existing.Year = *req.Year
	}
	if req.CredentialURL != nil {
		existing.CredentialURL = *req.CredentialURL
	}

	row, err := h.svc.Update(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "CertificationHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Certification deleted successfully"})
}
