package model

import "time"

// Trip 旅客在某条路线上提供的运力
type Trip struct {
	BaseModel
	PublicID   int64 `gorm:"uniqueIndex;not null" json:"public_id"`
	TravelerID int64 `gorm:"index;not null" json:"traveler_id"`

	FromCountry string `gorm:"type:varchar(64);not null" json:"from_country"`
	FromCity    string `gorm:"type:varchar(128);not null" json:"from_city"`
	ToCountry   string `gorm:"type:varchar(64);not null" json:"to_country"`
	ToCity      string `gorm:"type:varchar(128);not null" json:"to_city"`

	DepartureDate time.Time  `gorm:"type:date;not null;index" json:"departure_date"`
	ArrivalDate   *time.Time `gorm:"type:date" json:"arrival_date,omitempty"`

	// MaxWeightKg <= 0 表示未声明运力上限，视为不受限
	MaxWeightKg float64       `gorm:"not null;default:0" json:"max_weight_kg"`
	Status      ListingStatus `gorm:"type:varchar(16);not null;default:'open';index:idx_trips_status" json:"status"`
}

// TableName 指定表名
func (Trip) TableName() string {
	return "trips"
}
