package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yoockh/portfolio-backend/internal/api/handlers"
	"github.com/yoockh/portfolio-backend/internal/api/middleware"
)

type Deps struct {
	Auth          *handlers.AuthHandler
	Profile       *handlers.ProfileHandler
	Skill         *handlers.SkillHandler
	Experience    *handlers.ExperienceHandler
	Education     *handlers.EducationHandler
	Certification *handlers.CertificationHandler
	Activity      *handlers.ActivityHandler
	Article       *handlers.ArticleHandler
	Contact       *handlers.ContactHandler
	Upload        *handlers.UploadHandler

	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Uploaded images
	r.Static("/uploads", d.UploadDir)

	api := r.Group("/api")

	// Public site
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/profile", d.Profile.Get)
	api.GET("/skills", d.Skill.List)
	api.GET("/skills/:id", d.Skill.Get)
	api.GET("/experiences", d.Experience.List)
	api.GET("/experiences/:id", d.Experience.Get)
	api.GET("/education", d.Education.List)
	api.GET("/education/:id", d.Education.Get)
	api.GET("/certifications", d.Certification.List)
	api.GET("/certifications/:id", d.Certification.Get)
	api.GET("/activities", d.Activity.List)
	api.GET("/activities/:id", d.Activity.Get)
	api.GET("/articles", d.Article.List)
	api.GET("/articles/:slug", d.Article.GetBySlug)
	api.POST("/contact-messages", d.Contact.Create)

	// Admin (JWT)
	admin := api.Group("/")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())

	admin.PUT("/profile", d.Profile.Update)

	admin.POST("/skills", d.Skill.Create)
	admin.PUT("/skills/:id", d.Skill.Update)
	admin.DELETE("/skills/:id", d.Skill.Delete)

	admin.POST("/experiences", d.Experience.Create)
	admin.PUT("/experiences/:id", d.Experience.Update)
	admin.DELETE("/experiences/:id", d.Experience.Delete)

	admin.POST("/education", d.Education.Create)
	admin.PUT("/education/:id", d.Education.Update)
	admin.DELETE("/education/:id", d.Education.Delete)

	admin.POST("/certifications", d.Certification.Create)
	admin.PUT("/certifications/:id", d.Certification.Update)
	admin.DELETE("/certifications/:id", d.Certification.Delete)

	admin.POST("/activities", d.Activity.Create)
	admin.PUT("/activities/:id", d.Activity.Update)
	admin.DELETE("/activities/:id", d.Activity.Delete)

	admin.POST("/articles", d.Article.Create)
	admin.PUT("/articles/:id", d.Article.Update)
	admin.DELETE("/articles/:id", d.Article.Delete)

	admin.GET("/contact-messages", d.Contact.List)
	admin.PUT("/contact-messages/:id/read", d.Contact.MarkRead)
	admin.DELETE("/contact-messages/:id", d.Contact.Delete)

	admin.POST("/upload-image", d.Upload.Upload)
}
