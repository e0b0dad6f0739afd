package dto

// ========== Trip 相关 DTO ==========

// CreateTripRequest 创建行程请求，日期使用 2006-01-02
type CreateTripRequest struct {
	FromCountry   string  `json:"from_country" binding:"required"`
	FromCity      string  `json:"from_city" binding:"required"`
	ToCountry     string  `json:"to_country" binding:"required"`
	ToCity        string  `json:"to_city" binding:"required"`
	DepartureDate string  `json:"departure_date" binding:"required"`
	ArrivalDate   string  `json:"arrival_date"`
	MaxWeightKg   float64 `json:"max_weight_kg"`
}

// TripData 行程信息
type TripData struct {
	ID            string  `json:"id"`
	TravelerID    string  `json:"traveler_id"`
	FromCountry   string  `json:"from_country"`
	FromCity      string  `json:"from_city"`
	ToCountry     string  `json:"to_country"`
	ToCity        string  `json:"to_city"`
	DepartureDate string  `json:"departure_date"`
	ArrivalDate   string  `json:"arrival_date,omitempty"`
	MaxWeightKg   float64 `json:"max_weight_kg"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// ListingQuery 行程 / 货件列表查询参数
type ListingQuery struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}
