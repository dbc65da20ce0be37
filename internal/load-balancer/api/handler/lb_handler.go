package handler

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/api/dto/request"
	"TMS_LoadBalancer_Service/internal/load-balancer/api/dto/response"
	"TMS_LoadBalancer_Service/internal/load-balancer/balancer"
	apperrors "TMS_LoadBalancer_Service/internal/load-balancer/errors"
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"TMS_LoadBalancer_Service/internal/load-balancer/scaling"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoadBalancerHandler interface {
	AddServer() gin.HandlerFunc
	RemoveServer() gin.HandlerFunc
	UpdateWeight() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetMetrics() gin.HandlerFunc
	EvaluateScaling() gin.HandlerFunc
	GetLastScalingDecision() gin.HandlerFunc
}

type loadBalancerHandler struct {
	logger         *zap.Logger
	loadBalancer   balancer.LoadBalancer
	scalingManager scaling.Manager
}

func (*loadBalancerHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *loadBalancerHandler) AddServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.AddServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				messages := make([]string, len(validationErrors))
				for i, fieldError := range validationErrors {
					messages[i] = h.formatValidationError(fieldError)
				}
				c.JSON(http.StatusBadRequest, response.Response{Message: "Invalid request", Data: messages})
				return
			}
			c.JSON(http.StatusBadRequest, response.Response{Message: "Invalid request body"})
			return
		}
		spec := model.ServerSpec{
			ID:             req.ID,
			Host:           req.Host,
			Port:           *req.Port,
			Protocol:       req.Protocol,
			Weight:         *req.Weight,
			MaxConnections: *req.MaxConnections,
			Metadata:       req.Metadata,
		}
		server, err := h.loadBalancer.AddServer(spec)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateServer) {
				c.JSON(http.StatusConflict, response.Response{Message: "Server id already exists"})
				return
			}
			if errors.Is(err, apperrors.ErrInvalidWeight) {
				c.JSON(http.StatusBadRequest, response.Response{Message: "Server weight must be greater than zero"})
				return
			}
			h.loggingError(c, fmt.Errorf("LoadBalancerHandler.AddServer: %w", err), "failed to add server", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{Message: "Internal Server Error"})
			return
		}
		c.JSON(http.StatusCreated, response.Response{Data: response.NewServerInfoResponse(server)})
	}
}

func (h *loadBalancerHandler) RemoveServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.loadBalancer.RemoveServer(id)
		if err != nil {
			if errors.Is(err, apperrors.ErrServerNotFound) {
				c.JSON(http.StatusNotFound, response.Response{Message: "Server not found"})
				return
			}
			h.loggingError(c, fmt.Errorf("LoadBalancerHandler.RemoveServer: %w", err), "failed to remove server", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{Message: "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, response.Response{Message: "Server removed"})
	}
}

func (h *loadBalancerHandler) UpdateWeight() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdateWeightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{Message: "Invalid request body"})
			return
		}
		err := h.loadBalancer.UpdateWeight(id, *req.Weight)
		if err != nil {
			if errors.Is(err, apperrors.ErrServerNotFound) {
				c.JSON(http.StatusNotFound, response.Response{Message: "Server not found"})
				return
			}
			if errors.Is(err, apperrors.ErrInvalidWeight) {
				c.JSON(http.StatusBadRequest, response.Response{Message: "Server weight must be greater than zero"})
				return
			}
			h.loggingError(c, fmt.Errorf("LoadBalancerHandler.UpdateWeight: %w", err), "failed to update server weight", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{Message: "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, response.Response{Message: "Server weight updated"})
	}
}

func (h *loadBalancerHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var servers []model.ServerInstance
		switch c.DefaultQuery("health", "all") {
		case "healthy":
			servers = h.loadBalancer.HealthyServers()
		case "unhealthy":
			servers = h.loadBalancer.UnhealthyServers()
		case "all":
			servers = h.loadBalancer.Servers()
		default:
			c.JSON(http.StatusBadRequest, response.Response{Message: "Invalid health filter, use healthy, unhealthy or all"})
			return
		}
		c.JSON(http.StatusOK, response.Response{Data: response.NewServerInfoResponses(servers)})
	}
}

func (h *loadBalancerHandler) GetMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{Data: h.loadBalancer.Metrics()})
	}
}

func (h *loadBalancerHandler) EvaluateScaling() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{Data: h.scalingManager.Evaluate()})
	}
}

func (h *loadBalancerHandler) GetLastScalingDecision() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, ok := h.scalingManager.LastDecision()
		if !ok {
			c.JSON(http.StatusNotFound, response.Response{Message: "No scaling evaluation has run yet"})
			return
		}
		c.JSON(http.StatusOK, response.Response{Data: decision})
	}
}

func (h *loadBalancerHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	h.logger.Log(logLevel, errDescription, data...)
}

func NewLoadBalancerHandler(logger *zap.Logger, lb balancer.LoadBalancer, scalingManager scaling.Manager) LoadBalancerHandler {
	return &loadBalancerHandler{
		logger:         logger,
		loadBalancer:   lb,
		scalingManager: scalingManager,
	}
}
