package model

import "time"

// ShipmentRequest 寄件人在时间窗内运送物品的需求
type ShipmentRequest struct {
	BaseModel
	PublicID int64 `gorm:"uniqueIndex;not null" json:"public_id"`
	SenderID int64 `gorm:"index;not null" json:"sender_id"`

	FromCountry string `gorm:"type:varchar(64);not null" json:"from_country"`
	FromCity    string `gorm:"type:varchar(128);not null" json:"from_city"`
	ToCountry   string `gorm:"type:varchar(64);not null" json:"to_country"`
	ToCity      string `gorm:"type:varchar(128);not null" json:"to_city"`

	// EarliestDate <= LatestDate，创建时校验
	EarliestDate time.Time `gorm:"type:date;not null;index" json:"earliest_date"`
	LatestDate   time.Time `gorm:"type:date;not null" json:"latest_date"`

	WeightKg float64       `gorm:"not null" json:"weight_kg"`
	ItemType string        `gorm:"type:varchar(64);not null;default:''" json:"item_type"`
	Status   ListingStatus `gorm:"type:varchar(16);not null;default:'open';index:idx_shipment_requests_status" json:"status"`
}

// TableName 指定表名
func (ShipmentRequest) TableName() string {
	return "shipment_requests"
}
