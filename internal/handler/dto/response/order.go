package response

import (
	"order-service/internal/usecase/readmodel"
)

type OrderResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	StoreID   string `json:"storeId"`
	Created   string `json:"created"`
}

func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	return &OrderResponse{
		ID:        rm.ID,
		Type:      rm.Type,
		ProductID: rm.ProductID,
		Quantity:  rm.Quantity,
		StoreID:   rm.StoreID,
		Created:   rm.Created,
	}
}
