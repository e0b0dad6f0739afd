package repository

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"CoBag/internal/model"
	"CoBag/pkg/errors"
	"CoBag/storage/database"
	"CoBag/utils"
)

// CreateShipment 创建货件
func CreateShipment(ctx context.Context, shipment *model.ShipmentRequest) error {
	return database.DB().WithContext(ctx).Create(shipment).Error
}

// GetShipmentByPublicID 根据 PublicID 查询货件
func GetShipmentByPublicID(ctx context.Context, publicID int64) (*model.ShipmentRequest, error) {
	var shipment model.ShipmentRequest
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&shipment).Error

	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ShipmentNotFound
	}
	return &shipment, err
}

// ListShipmentsBySender 按寄件人查询货件，游标分页
func ListShipmentsBySender(ctx context.Context, senderID int64, status string, cursorID int64, limit int) ([]*model.ShipmentRequest, error) {
	q := database.DB().WithContext(ctx).
		Where("sender_id = ?", senderID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if cursorID > 0 {
		q = q.Where("id < ?", cursorID)
	}

	var shipments []*model.ShipmentRequest
	err := q.Order("id DESC").Limit(limit).Find(&shipments).Error
	return shipments, err
}

// ListOpenShipmentsByRoute 按路线查询开放货件，候选评估的预过滤
func ListOpenShipmentsByRoute(ctx context.Context, fromCountry, toCountry string, limit int) ([]*model.ShipmentRequest, error) {
	var shipments []*model.ShipmentRequest
	err := database.DB().WithContext(ctx).
		Where("status = ?", model.ListingStatusOpen).
		Where("LOWER(from_country) = LOWER(?)", fromCountry).
		Where("LOWER(to_country) = LOWER(?)", toCountry).
		Order("earliest_date ASC").
		Limit(limit).
		Find(&shipments).Error
	return shipments, err
}

// UpdateShipmentStatus 条件状态迁移，返回是否命中
func UpdateShipmentStatus(ctx context.Context, publicID int64, from, to model.ListingStatus) (bool, error) {
	res := database.DB().WithContext(ctx).
		Model(&model.ShipmentRequest{}).
		Where("public_id = ? AND status = ?", publicID, from).
		Update("status", to)

	return res.RowsAffected == 1, res.Error
}

// ListExpiredOpenShipments 时间窗关闭超过日期容差仍开放的货件（定时任务）。
// latest_date 刚过的货件对 latest+N 天内出发的行程仍是柔性兼容，
// 过了容差才真正退出候选池。
func ListExpiredOpenShipments(ctx context.Context, toleranceDays int) ([]*model.ShipmentRequest, error) {
	cutoff := shipmentExpiryCutoff(time.Now(), toleranceDays)

	var shipments []*model.ShipmentRequest
	err := database.DB().WithContext(ctx).
		Where("status = ? AND latest_date < ?", model.ListingStatusOpen, cutoff).
		Find(&shipments).Error
	return shipments, err
}

// shipmentExpiryCutoff latest_date 早于今天减容差天数才算过期
func shipmentExpiryCutoff(now time.Time, toleranceDays int) time.Time {
	return utils.TruncateToDate(now).AddDate(0, 0, -toleranceDays)
}
