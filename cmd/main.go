package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ptnguyen/quizhub/config"
	"github.com/ptnguyen/quizhub/database"
	_ "github.com/ptnguyen/quizhub/docs" // Swagger docs - auto-generated
	"github.com/ptnguyen/quizhub/internal/controller"
	learnerctrl "github.com/ptnguyen/quizhub/internal/controller/learner"
	trainerctrl "github.com/ptnguyen/quizhub/internal/controller/trainer"
	"github.com/ptnguyen/quizhub/internal/grading"
	"github.com/ptnguyen/quizhub/internal/logger"
	"github.com/ptnguyen/quizhub/internal/middleware"
	"github.com/ptnguyen/quizhub/internal/model"
	"github.com/ptnguyen/quizhub/internal/repository"
	"github.com/ptnguyen/quizhub/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizHub API
// @version 1.0
// @description Quiz authoring and attempt grading API. Trainers author MCQ/TRUE_FALSE quizzes; learners submit attempts and get automatically graded results.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			grading.NewEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuizService,
			service.NewQuestionService,
			service.NewAttemptService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			trainerctrl.NewQuizController,
			learnerctrl.NewAttemptController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	trainerCtrl *trainerctrl.QuizController,
	learnerCtrl *learnerctrl.AttemptController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK", "message": "QuizHub API is running"})
	})

	router.POST("/api/v1/auth/login", authCtrl.Login)

	api := router.Group("/api/v1", middleware.Authenticate(cfg.JWT.Secret))
	{
		quizzes := api.Group("/quizzes")
		quizzes.GET("", learnerCtrl.GetAllQuizzes)
		quizzes.GET("/:id", learnerCtrl.GetQuiz)
		quizzes.GET("/:id/questions", learnerCtrl.GetQuizQuestions)

		authoring := quizzes.Group("", middleware.RequireRole(middleware.RoleTrainer))
		authoring.POST("", trainerCtrl.CreateQuiz)
		authoring.PUT("/:id", trainerCtrl.UpdateQuiz)
		authoring.DELETE("/:id", trainerCtrl.DeleteQuiz)
		authoring.POST("/:id/questions", trainerCtrl.AddQuestion)
		authoring.PUT("/:id/questions/:question_id", trainerCtrl.UpdateQuestion)
		authoring.DELETE("/:id/questions/:question_id", trainerCtrl.DeleteQuestion)

		attempts := api.Group("/attempts")
		attempts.POST("", middleware.RequireRole(middleware.RoleLearner), learnerCtrl.SubmitAttempt)
		attempts.GET("/stats", learnerCtrl.GetStats)
		attempts.GET("/:id", learnerCtrl.GetAttempt)
		attempts.GET("/quiz/:quiz_id/learner", learnerCtrl.GetMyAttempts)
		attempts.GET("/quiz/:quiz_id/all", middleware.RequireRole(middleware.RoleTrainer), trainerCtrl.GetQuizAttempts)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.QuestionOption{},
		&model.QuizAttempt{},
		&model.AttemptAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
