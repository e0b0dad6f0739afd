package database

import (
	"CoBag/internal/model"
	"CoBag/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 同一 (trip, shipment) 组合同时只允许存在一条活跃提案，
// rejected / completed 的历史行不参与唯一性，拒绝后允许重新发起。
const liveMatchIndexSQL = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_live_pair
ON matches (trip_id, shipment_request_id)
WHERE status IN ('pending', 'accepted') AND deleted_at IS NULL
`

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	// 迁移所有模型
	err := db.AutoMigrate(
		&model.User{},
		&model.Trip{},
		&model.ShipmentRequest{},
		&model.Match{},
		&model.Message{},
	)

	if err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	// AutoMigrate 不支持部分索引，单独建
	if err := db.Exec(liveMatchIndexSQL).Error; err != nil {
		logger.Logger.Error("Failed to create live match index", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}
