package order

// Record is the raw single-table item. Order and Store attributes coexist;
// which of them are populated depends on the Type discriminator.
type Record struct {
	ID        string `dynamodbav:"id" json:"id"`
	Type      string `dynamodbav:"type" json:"type"`
	ProductID string `dynamodbav:"productId,omitempty" json:"productId,omitempty"`
	Quantity  int    `dynamodbav:"quantity,omitempty" json:"quantity,omitempty"`
	StoreID   string `dynamodbav:"storeId,omitempty" json:"storeId,omitempty"`
	Created   string `dynamodbav:"created,omitempty" json:"created,omitempty"`
	StoreCode string `dynamodbav:"storeCode,omitempty" json:"storeCode,omitempty"`
	StoreName string `dynamodbav:"storeName,omitempty" json:"storeName,omitempty"`
}

// SeedStores are the fixed retail locations seeded idempotently at stack
// creation. The ids are stable so reseeding never drifts.
func SeedStores() []Record {
	return []Record{
		{
			ID:        "59b8a675-9bb7-46c7-955d-2566edfba8ea",
			Type:      TypeStores,
			StoreCode: "NEW",
			StoreName: "Newcastle",
		},
		{
			ID:        "4e02e8f2-c0fe-493e-b259-1047254ad969",
			Type:      TypeStores,
			StoreCode: "LON",
			StoreName: "London",
		},
		{
			ID:        "f5de2a0a-5a1d-4842-b38d-34e0fe420d33",
			Type:      TypeStores,
			StoreCode: "MAN",
			StoreName: "Manchester",
		},
	}
}
