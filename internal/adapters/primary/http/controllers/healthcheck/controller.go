package healthcheckController

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

type HealthCheckController struct {
	log *slog.Logger
}

func New(log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		log: log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
}

// health базовая проверка, без походов во внешние сервисы
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":  "ok",
		"service": "astra-intake-api",
	})
}
