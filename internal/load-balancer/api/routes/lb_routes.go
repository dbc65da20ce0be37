package routes

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/api/handler"

	"github.com/gin-gonic/gin"
)

func AddLoadBalancerRoutes(r *gin.Engine, handler handler.LoadBalancerHandler) {
	serverRoutes := r.Group("/servers")
	serverRoutes.POST("", handler.AddServer())
	serverRoutes.GET("", handler.GetServers())
	serverRoutes.PATCH("/:id/weight", handler.UpdateWeight())
	serverRoutes.DELETE("/:id", handler.RemoveServer())

	r.GET("/metrics", handler.GetMetrics())

	scalingRoutes := r.Group("/scaling")
	scalingRoutes.POST("/evaluate", handler.EvaluateScaling())
	scalingRoutes.GET("/decision", handler.GetLastScalingDecision())
}
