package dto

// ========== Match 相关 DTO ==========

// ProposeMatchRequest 发起提案请求
type ProposeMatchRequest struct {
	TripID            string `json:"trip_id" binding:"required"`
	ShipmentRequestID string `json:"shipment_request_id" binding:"required"`
}

// MatchData 匹配信息
type MatchData struct {
	ID                string `json:"id"`
	TripID            string `json:"trip_id"`
	ShipmentRequestID string `json:"shipment_request_id"`
	TravelerID        string `json:"traveler_id"`
	SenderID          string `json:"sender_id"`
	ProposedBy        string `json:"proposed_by"`
	Status            string `json:"status"`
	MatchType         string `json:"match_type,omitempty"`

	SenderHandedOver  bool `json:"sender_handed_over"`
	TravelerPickedUp  bool `json:"traveler_picked_up"`
	TravelerDelivered bool `json:"traveler_delivered"`
	SenderReceived    bool `json:"sender_received"`

	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// MatchQuery 匹配列表查询参数
type MatchQuery struct {
	Status string `query:"status"`
	Role   string `query:"role"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}

// CandidateData 候选配对信息
type CandidateData struct {
	MatchType          string        `json:"match_type"`
	DateDifferenceDays int           `json:"date_difference_days"`
	RegionName         string        `json:"region_name,omitempty"`
	Trip               *TripData     `json:"trip,omitempty"`
	Shipment           *ShipmentData `json:"shipment,omitempty"`
}
