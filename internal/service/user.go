package service

import (
	"context"
	"sync"

	"CoBag/internal/model/dto"
	"CoBag/internal/repository"
)

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = &UserService{}
	})
	return userService
}

type UserService struct{}

// GetProfile 查询用户画像
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserSnapshot, error) {
	user, err := repository.GetUserByPublicID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := toUserSnapshot(user, false)
	return &snapshot, nil
}

// UpdateProfile 更新用户画像，只写请求里出现的字段
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*dto.UserSnapshot, error) {
	if _, err := repository.GetUserByPublicID(ctx, userID); err != nil {
		return nil, err
	}

	if err := repository.UpdateUserProfile(ctx, userID, req.DisplayName, req.Email); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}
