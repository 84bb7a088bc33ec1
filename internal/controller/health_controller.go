package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Service health
// @Description Pings the database. Reports ok when it answers.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.HealthResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		log.Error().Err(err).Msg("Health: database ping failed")
		ctx.JSON(http.StatusInternalServerError, dto.HealthResponse{Status: "error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
