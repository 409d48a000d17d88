package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/portfolio-backend/config"
	"github.com/yoockh/portfolio-backend/internal/api/handlers"
	"github.com/yoockh/portfolio-backend/internal/api/middleware"
	"github.com/yoockh/portfolio-backend/internal/api/routes"
	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/logger"
	"github.com/yoockh/portfolio-backend/internal/mailer"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/storage"
	"github.com/yoockh/portfolio-backend/internal/workers"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}

	var c cache.Cache = cache.NewNoopCache()
	if config.RedisClient != nil {
		c = cache.NewRedisCache(config.RedisClient)
		l.Info("Redis connected")
	} else {
		l.Info("Redis not configured, caching disabled")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	uploader, err := storage.NewLocalUploader(uploadDir)
	if err != nil {
		log.Fatalf("Upload dir init error: %v", err)
	}

	// Mail worker: delivery is background-only, a failed send is logged
	// and dropped.
	numWorkers := 2
	if v := os.Getenv("MAIL_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			numWorkers = n
		}
	}
	smtp := mailer.NewSMTPMailerFromEnv()
	if smtp == nil {
		l.Warn("SMTP not configured, contact mails will be skipped")
	}
	pool := &workers.MailWorkerPool{
		Mailer:     smtp,
		Logger:     l,
		NumWorkers: numWorkers,
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := pool.Start(ctx); err != nil {
		log.Fatalf("Mail worker init error: %v", err)
	}

	db := config.PostgresDB

	profileSvc := services.NewProfileService(pgrepo.NewProfileRepo(db), c)
	skillSvc := services.NewSkillService(pgrepo.NewSkillRepo(db), c)
	experienceSvc := services.NewExperienceService(pgrepo.NewExperienceRepo(db), c)
	educationSvc := services.NewEducationService(pgrepo.NewEducationRepo(db), c)
	certificationSvc := services.NewCertificationService(pgrepo.NewCertificationRepo(db), c)
	activitySvc := services.NewActivityService(pgrepo.NewActivityRepo(db), c)
	articleSvc := services.NewArticleService(pgrepo.NewArticleRepo(db), c)
	contactSvc := services.NewContactMessageService(pgrepo.NewContactMessageRepo(db), pool)
	authSvc := services.NewAuthService(pgrepo.NewUserRepo(db), os.Getenv("JWT_SECRET"))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:          handlers.NewAuthHandler(authSvc),
		Profile:       handlers.NewProfileHandler(profileSvc),
		Skill:         handlers.NewSkillHandler(skillSvc),
		Experience:    handlers.NewExperienceHandler(experienceSvc),
		Education:     handlers.NewEducationHandler(educationSvc),
		Certification: handlers.NewCertificationHandler(certificationSvc),
		Activity:      handlers.NewActivityHandler(activitySvc),
		Article:       handlers.NewArticleHandler(articleSvc),
		Contact:       handlers.NewContactHandler(contactSvc),
		Upload:        handlers.NewUploadHandler(uploader),
		UploadDir:     uploadDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
