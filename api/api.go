package api

import (
	"errors"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"verdant/internal/domain"
	"verdant/internal/service"
)

type ApiHandler struct {
	ScreeningService service.ScreeningService
	AdviceService    service.AdviceService
	PriceService     service.PriceService
	Log              *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to verdant"})
	})
	router.POST("/screen", m.screen)
	router.POST("/advice", m.advice)
	router.POST("/refreshQuotes", m.refreshQuotes)

	return router.Run(fmt.Sprintf(":%d", port))
}

// statusForError maps the engine's error taxonomy onto HTTP codes: bad user
// input re-prompts, upstream failures report a bad gateway, everything else
// is a plain 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		return 400
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return 502
	}
	return 500
}

func returnErrorJson(err error, c *gin.Context) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(statusForError(err), gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	ctx.Next()
	m.Log.Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"clientIP", ctx.ClientIP(),
	)
}
