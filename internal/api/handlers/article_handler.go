package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

type CreateArticleRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"` // derived from title when empty
	Excerpt   string `json:"excerpt" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Category  string `json:"category" binding:"required"`
	ReadTime  int    `json:"readTime" binding:"required"`
	ImageURL  string `json:"imageUrl"`
	Image     string `json:"image"`
	URL       string `json:"url"`
	Published bool   `json:"published"`
	Featured  bool   `json:"featured"`
}

type UpdateArticleRequest struct {
	Title     *string `json:"title,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Content   *string `json:"content,omitempty"`
	Category  *string `json:"category,omitempty"`
	ReadTime  *int    `json:"readTime,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Image     *string `json:"image,omitempty"`
	URL       *string `json:"url,omitempty"`
	Published *bool   `json:"published,omitempty"`
	Featured  *bool   `json:"featured,omitempty"`
}

// List serves all three views: every article (admin), ?published=true,
// and ?featured=true (featured and published only).
func (h *ArticleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var rows []models.Article
	var err error
	switch {
	case c.Query("featured") == "true":
		rows, err = h.svc.ListFeatured(ctx)
	case c.Query("published") == "true":
		rows, err = h.svc.ListPublished(ctx)
	default:
		rows, err = h.svc.List(ctx)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	row, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ArticleHandler.Create", "invalid article data", err))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &models.Article{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		ReadTime:  req.ReadTime,
		ImageURL:  req.ImageURL,
		Image:     req.Image,
		URL:       req.URL,
		Published: req.Published,
		Featured:  req.Featured,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "ArticleHandler.Update")
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ArticleHandler.Update", "invalid article data", err))
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
	if req.Slug != nil {
		existing.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		existing.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.ReadTime != nil {
		existing.ReadTime = *req.ReadTime
	}
	if req.ImageURL != nil {
		existing.ImageURL = *req.ImageURL
	}
	if req.Image != nil {
		existing.Image = *req.Image
	}
	if req.URL != nil {
		existing.URL = *req.URL
	}
	if req.Published != nil {
		existing.Published = *req.Published
	}
	if req.Featured != nil {
		existing.Featured = *req.Featured
	}

	row, err := h.svc.Update(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "ArticleHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Article deleted successfully"})
}
