package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"CoBag/internal/model"
	"CoBag/pkg/errors"
	"CoBag/storage/database"
)

// GetUserByPublicID 根据 PublicID 查询用户
func GetUserByPublicID(ctx context.Context, publicID int64) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&user).Error

	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.UserNotFound
	}
	return &user, err
}

// GetUserByIdentityRef 根据上游身份标识查询用户
func GetUserByIdentityRef(ctx context.Context, identityRef string) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).
		Where("identity_ref = ?", identityRef).
		First(&user).Error

	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.UserNotFound
	}
	return &user, err
}

// CreateUser 创建用户
func CreateUser(ctx context.Context, user *model.User) error {
	return database.DB().WithContext(ctx).Create(user).Error
}

// UpdateUserProfile 更新用户画像，只写非 nil 字段
func UpdateUserProfile(ctx context.Context, publicID int64, displayName, email *string) error {
	updates := map[string]interface{}{}
	if displayName != nil {
		updates["display_name"] = *displayName
	}
	if email != nil {
		updates["email"] = *email
	}
	if len(updates) == 0 {
		return nil
	}

	return database.DB().WithContext(ctx).
		Model(&model.User{}).
		Where("public_id = ?", publicID).
		Updates(updates).Error
}
