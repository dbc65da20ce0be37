package request

type AddServerRequest struct {
	ID             string            `json:"id" binding:"required" validate:"required"`
	Host           string            `json:"host" binding:"required" validate:"required"`
	Port           *int              `json:"port" binding:"required,gte=1,lte=65535" validate:"required,gte=1,lte=65535"`
	Protocol       string            `json:"protocol" binding:"omitempty,oneof=http https" validate:"omitempty,oneof=http https"`
	Weight         *int              `json:"weight" binding:"required,gt=0" validate:"required,gt=0"`
	MaxConnections *int              `json:"max_connections" binding:"required,gte=1" validate:"required,gte=1"`
	Metadata       map[string]string `json:"metadata"`
}
