package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Position *string `json:"position,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Age      *int    `json:"age,omitempty"`

	LinkedinURL  *string `json:"linkedinUrl,omitempty"`
	GithubURL    *string `json:"githubUrl,omitempty"`
	TwitterURL   *string `json:"twitterUrl,omitempty"`
	InstagramURL *string `json:"instagramUrl,omitempty"`
	YoutubeURL   *string `json:"youtubeUrl,omitempty"`

	Image *string `json:"image,omitempty"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update creates the singleton row on first call and applies a partial
// update in place afterwards.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid profile data", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context())
	if err != nil {
		if !utils.IsCode(err, utils.CodeNotFound) {
			writeError(c, err)
			return
		}
		existing = &models.Profile{}
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Bio != nil {
		existing.Bio = *req.Bio
	}
	if req.Age != nil {
		existing.Age = req.Age
	}
	if req.LinkedinURL != nil {
		existing.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		existing.GithubURL = *req.GithubURL
	}
	if req.TwitterURL != nil {
		existing.TwitterURL = *req.TwitterURL
	}
	if req.InstagramURL != nil {
		existing.InstagramURL = *req.InstagramURL
	}
	if req.YoutubeURL != nil {
		existing.YoutubeURL = *req.YoutubeURL
	}
	if req.Image != nil {
		existing.Image = *req.Image
	}

	p, err := h.svc.Save(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
