package dto

// ========== Shipment 相关 DTO ==========

// CreateShipmentRequest 创建货件请求，日期使用 2006-01-02
type CreateShipmentRequest struct {
	FromCountry  string  `json:"from_country" binding:"required"`
	FromCity     string  `json:"from_city" binding:"required"`
	ToCountry    string  `json:"to_country" binding:"required"`
	ToCity       string  `json:"to_city" binding:"required"`
	EarliestDate string  `json:"earliest_date" binding:"required"`
	LatestDate   string  `json:"latest_date" binding:"required"`
	WeightKg     float64 `json:"weight_kg" binding:"required"`
	ItemType     string  `json:"item_type"`
}

// ShipmentData 货件信息
type ShipmentData struct {
	ID           string  `json:"id"`
	SenderID     string  `json:"sender_id"`
	FromCountry  string  `json:"from_country"`
	FromCity     string  `json:"from_city"`
	ToCountry    string  `json:"to_country"`
	ToCity       string  `json:"to_city"`
	EarliestDate string  `json:"earliest_date"`
	LatestDate   string  `json:"latest_date"`
	WeightKg     float64 `json:"weight_kg"`
	ItemType     string  `json:"item_type,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
