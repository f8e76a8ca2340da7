package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codeodor/plasm/internal/middleware"
	"github.com/codeodor/plasm/internal/pets"
)

func RegisterRoutes(router *gin.Engine, log *zap.Logger, petHandler *pets.PetHandler) {
	router.Use(middleware.RecoveryMiddleware(log))

	petHandler.RegisterRoutes(router)
	RegisterUtilityRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
