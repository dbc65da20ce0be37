package request

type UpdateWeightRequest struct {
	Weight *int `json:"weight" binding:"required,gt=0" validate:"required,gt=0"`
}
