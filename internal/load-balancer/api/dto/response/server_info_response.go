package response

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"time"
)

type ServerInfoResponse struct {
	ID                 string            `json:"id"`
	Host               string            `json:"host"`
	Port               int               `json:"port"`
	Protocol           string            `json:"protocol"`
	Weight             int               `json:"weight"`
	MaxConnections     int               `json:"max_connections"`
	CurrentConnections int               `json:"current_connections"`
	Healthy            bool              `json:"healthy"`
	ErrorCount         int               `json:"error_count"`
	LastHealthCheck    time.Time         `json:"last_health_check"`
	ResponseTimeMs     int64             `json:"response_time_ms"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

func NewServerInfoResponse(server model.ServerInstance) ServerInfoResponse {
	return ServerInfoResponse{
		ID:                 server.ID,
		Host:               server.Host,
		Port:               server.Port,
		Protocol:           server.Protocol,
		Weight:             server.Weight,
		MaxConnections:     server.MaxConnections,
		CurrentConnections: server.CurrentConnections,
		Healthy:            server.Healthy,
		ErrorCount:         server.ErrorCount,
		LastHealthCheck:    server.LastHealthCheck,
		ResponseTimeMs:     server.ResponseTime.Milliseconds(),
		Metadata:           server.Metadata,
	}
}

func NewServerInfoResponses(servers []model.ServerInstance) []ServerInfoResponse {
	responses := make([]ServerInfoResponse, len(servers))
	for i, server := range servers {
		responses[i] = NewServerInfoResponse(server)
	}
	return responses
}
