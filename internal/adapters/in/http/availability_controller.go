package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lernhub/location-availability-generator/internal/config"
	"github.com/lernhub/location-availability-generator/internal/core/domain"
	"github.com/lernhub/location-availability-generator/internal/core/ports/in"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/locations/:locationId/availability", c.getWeekAvailability)
		api.POST("/locations/availability-batch", c.getBatchWeekAvailability)
	}
}

type BatchAvailabilityRequest struct {
	LocationIDs   []uint `json:"locationIds" binding:"required,min=1"`
	WeekStartDate string `json:"weekStartDate" binding:"required"`
}

func (c *AvailabilityController) getWeekAvailability(ctx *gin.Context) {
	requestID := uuid.New()

	locationID, err := strconv.ParseUint(ctx.Param("locationId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID format"})
		return
	}

	weekStartDate := ctx.Query("weekStartDate")
	if weekStartDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "weekStartDate query parameter is required"})
		return
	}

	c.logger.Info("http.availability.request", out.LogFields{
		"requestId":     requestID,
		"locationId":    locationID,
		"weekStartDate": weekStartDate,
	})

	days, debug, err := c.useCase.GetWeekAvailability(ctx.Request.Context(), uint(locationID), weekStartDate)
	if err != nil {
		c.respondError(ctx, requestID, err)
		return
	}

	response := gin.H{
		"locationId":   locationID,
		"availability": days,
	}
	if c.cfg.IsLocal() {
		response["debug"] = debug
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *AvailabilityController) getBatchWeekAvailability(ctx *gin.Context) {
	requestID := uuid.New()

	var req BatchAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.logger.Info("http.availability_batch.request", out.LogFields{
		"requestId":      requestID,
		"locationsCount": len(req.LocationIDs),
		"weekStartDate":  req.WeekStartDate,
	})

	result, err := c.useCase.GetBatchWeekAvailability(ctx.Request.Context(), req.LocationIDs, req.WeekStartDate)
	if err != nil {
		c.respondError(ctx, requestID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": result})
}

// Три состояния различимы на границе API: "часы не настроены" (404),
// "неделя посчитана" (200, возможно без свободных мест) и сбой хранилища (502)
func (c *AvailabilityController) respondError(ctx *gin.Context, requestID uuid.UUID, err error) {
	var noTemplate *domain.NoTemplateError
	var invalidDate *domain.InvalidDateError
	var dataAccess *domain.DataAccessError

	switch {
	case errors.As(err, &noTemplate):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No availability template configured for this location"})
	case errors.As(err, &invalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week start date format"})
	case errors.As(err, &dataAccess):
		c.logger.Error("http.availability.data_access_failed", out.LogFields{
			"requestId": requestID,
			"error":     err.Error(),
		})
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Availability data is temporarily unavailable"})
	default:
		c.logger.Error("http.availability.failed", out.LogFields{
			"requestId": requestID,
			"error":     err.Error(),
		})
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1
			passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1
			if usernameMatch && passwordMatch {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
