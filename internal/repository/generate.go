package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"CoBag/internal/model"
	"CoBag/pkg/errors"
	"CoBag/storage/database"
)

// ========== Trip 相关查询接口 ==========

// TripQuerier 行程查询接口
type TripQuerier interface {
	// GetByPublicID 根据 PublicID 查询行程（API 中 tripID 是 public_id）
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListOpenByRoute 按路线查询开放行程（候选评估的预过滤）
	//
	// SELECT * FROM @@table
	// WHERE status = 'open'
	//   AND LOWER(from_country) = LOWER(@fromCountry)
	//   AND LOWER(to_country) = LOWER(@toCountry)
	// ORDER BY departure_date ASC
	// LIMIT @limit
	ListOpenByRoute(fromCountry, toCountry string, limit int) ([]*gen.T, error)

	// ListByTraveler 按旅客查询行程（游标分页）
	//
	// SELECT * FROM @@table
	// WHERE traveler_id = @travelerID
	//   {{if status != ""}}
	//   AND status = @status
	//   {{end}}
	//   {{if cursorID > 0}}
	//   AND id < @cursorID
	//   {{end}}
	// ORDER BY created_at DESC
	// LIMIT @limit
	ListByTraveler(travelerID int64, status string, cursorID int64, limit int) ([]*gen.T, error)

	// ListExpiredOpen 查询出发日已过的开放行程（定时任务）
	//
	// SELECT * FROM @@table
	// WHERE status = 'open' AND departure_date < CURRENT_DATE
	ListExpiredOpen() ([]*gen.T, error)
}

// ========== ShipmentRequest 相关查询接口 ==========

// ShipmentQuerier 货件查询接口
type ShipmentQuerier interface {
	// GetByPublicID 根据 PublicID 查询货件
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListOpenByRoute 按路线查询开放货件（候选评估的预过滤）
	//
	// SELECT * FROM @@table
	// WHERE status = 'open'
	//   AND LOWER(from_country) = LOWER(@fromCountry)
	//   AND LOWER(to_country) = LOWER(@toCountry)
	// ORDER BY earliest_date ASC
	// LIMIT @limit
	ListOpenByRoute(fromCountry, toCountry string, limit int) ([]*gen.T, error)

	// ListBySender 按寄件人查询货件（游标分页）
	//
	// SELECT * FROM @@table
	// WHERE sender_id = @senderID
	//   {{if status != ""}}
	//   AND status = @status
	//   {{end}}
	//   {{if cursorID > 0}}
	//   AND id < @cursorID
	//   {{end}}
	// ORDER BY created_at DESC
	// LIMIT @limit
	ListBySender(senderID int64, status string, cursorID int64, limit int) ([]*gen.T, error)

	// ListExpiredOpen 查询时间窗已过的开放货件（定时任务）
	//
	// SELECT * FROM @@table
	// WHERE status = 'open' AND latest_date < CURRENT_DATE
	ListExpiredOpen() ([]*gen.T, error)
}

// ========== Match 相关查询接口 ==========

// MatchQuerier 匹配查询接口
type MatchQuerier interface {
	// GetByPublicID 根据 PublicID 查询匹配
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListForUser 查询用户参与的匹配（两个角色都算，游标分页）
	//
	// SELECT * FROM @@table
	// WHERE (sender_id = @userID OR traveler_id = @userID)
	//   {{if status != ""}}
	//   AND status = @status
	//   {{end}}
	//   {{if cursorID > 0}}
	//   AND id < @cursorID
	//   {{end}}
	// ORDER BY created_at DESC
	// LIMIT @limit
	ListForUser(userID int64, status string, cursorID int64, limit int) ([]*gen.T, error)

	// CountPendingIncoming 统计等待该用户响应的入站提案数
	//
	// SELECT COUNT(*) FROM @@table
	// WHERE status = 'pending'
	//   AND proposed_by != @userID
	//   AND (sender_id = @userID OR traveler_id = @userID)
	CountPendingIncoming(userID int64) (int64, error)

	// ListLivePairsForTrip 查询行程上仍活跃的配对（候选排除）
	//
	// SELECT shipment_request_id FROM @@table
	// WHERE trip_id = @tripID AND status IN ('pending', 'accepted')
	ListLivePairsForTrip(tripID int64) ([]int64, error)

	// ListLivePairsForShipment 查询货件上仍活跃的配对（候选排除）
	//
	// SELECT trip_id FROM @@table
	// WHERE shipment_request_id = @shipmentID AND status IN ('pending', 'accepted')
	ListLivePairsForShipment(shipmentID int64) ([]int64, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return errors.ErrDatabaseConnectionNil
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query", // 生成代码的输出路径
		ModelPkgPath:      "CoBag/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 注册现有的 model，GORM Gen 会使用这些 model 而不是生成新的
	g.ApplyBasic(
		&model.User{},
		&model.Trip{},
		&model.ShipmentRequest{},
		&model.Match{},
		&model.Message{},
	)

	g.ApplyInterface(func(TripQuerier) {}, &model.Trip{})
	g.ApplyInterface(func(ShipmentQuerier) {}, &model.ShipmentRequest{})
	g.ApplyInterface(func(MatchQuerier) {}, &model.Match{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
