package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"CoBag/internal/model"
	"CoBag/pkg/errors"
	"CoBag/storage/database"
)

// CreateTrip 创建行程
func CreateTrip(ctx context.Context, trip *model.Trip) error {
	return database.DB().WithContext(ctx).Create(trip).Error
}

// GetTripByPublicID 根据 PublicID 查询行程
func GetTripByPublicID(ctx context.Context, publicID int64) (*model.Trip, error) {
	var trip model.Trip
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&trip).Error

	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.TripNotFound
	}
	return &trip, err
}

// ListTripsByTraveler 按旅客查询行程，游标分页
func ListTripsByTraveler(ctx context.Context, travelerID int64, status string, cursorID int64, limit int) ([]*model.Trip, error) {
	q := database.DB().WithContext(ctx).
		Where("traveler_id = ?", travelerID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if cursorID > 0 {
		q = q.Where("id < ?", cursorID)
	}

	var trips []*model.Trip
	err := q.Order("id DESC").Limit(limit).Find(&trips).Error
	return trips, err
}

// ListOpenTripsByRoute 按路线查询开放行程，候选评估的预过滤
func ListOpenTripsByRoute(ctx context.Context, fromCountry, toCountry string, limit int) ([]*model.Trip, error) {
	var trips []*model.Trip
	err := database.DB().WithContext(ctx).
		Where("status = ?", model.ListingStatusOpen).
		Where("LOWER(from_country) = LOWER(?)", fromCountry).
		Where("LOWER(to_country) = LOWER(?)", toCountry).
		Order("departure_date ASC").
		Limit(limit).
		Find(&trips).Error
	return trips, err
}

// UpdateTripStatus 条件状态迁移，返回是否命中
func UpdateTripStatus(ctx context.Context, publicID int64, from, to model.ListingStatus) (bool, error) {
	res := database.DB().WithContext(ctx).
		Model(&model.Trip{}).
		Where("public_id = ? AND status = ?", publicID, from).
		Update("status", to)

	return res.RowsAffected == 1, res.Error
}

// ListExpiredOpenTrips 出发日已过仍开放的行程（定时任务）
func ListExpiredOpenTrips(ctx context.Context) ([]*model.Trip, error) {
	var trips []*model.Trip
	err := database.DB().WithContext(ctx).
		Where("status = ? AND departure_date < CURRENT_DATE", model.ListingStatusOpen).
		Find(&trips).Error
	return trips, err
}
