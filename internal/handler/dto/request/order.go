package request

import (
	"order-service/internal/usecase/commands"
)

type CreateOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	StoreID   string `json:"storeId" binding:"required"`
}

func (r CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		StoreID:   r.StoreID,
	}
}
