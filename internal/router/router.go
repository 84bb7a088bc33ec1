package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/config"
	_ "github.com/lshigami/quizapi/docs" // Swagger docs
	"github.com/lshigami/quizapi/internal/controller"
	adminctrl "github.com/lshigami/quizapi/internal/controller/admin"
	userctrl "github.com/lshigami/quizapi/internal/controller/user"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/middleware"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not Found"})
	})

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// corsConfig builds the allow-list. A lone "*" allows every origin; entries may
// otherwise carry a wildcard such as https://*.example.com.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.AdminTokenHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		AllowWildcard: true,
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		log.Warn().Msg("CORS_ORIGINS is empty, cross-origin requests will be rejected")
		c.AllowOriginFunc = func(string) bool { return false }
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// RegisterRoutes mounts the quiz API under /api. Quiz writes sit behind the
// admin token gate.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	adminQuizCtrl *adminctrl.AdminQuizController,
	userQuizCtrl *userctrl.UserQuizController,
	healthCtrl *controller.HealthController,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthCtrl.Health)

		quizzes := api.Group("/quizzes")
		requireAdmin := middleware.AdminToken(cfg.AdminToken)

		quizzes.POST("", requireAdmin, adminQuizCtrl.CreateQuiz)
		quizzes.DELETE("/:id", requireAdmin, adminQuizCtrl.DeleteQuiz)

		quizzes.GET("", userQuizCtrl.GetAllQuizzes)
		quizzes.GET("/:id", userQuizCtrl.GetQuizDetails)
		quizzes.POST("/:id/submit", userQuizCtrl.SubmitQuiz)
	}
}
