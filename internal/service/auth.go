package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"CoBag/internal/cache"
	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/repository"
	"CoBag/pkg/errors"
	"CoBag/pkg/logger"
	"CoBag/pkg/snowflake"
	"CoBag/pkg/token"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// ExchangeIdentity 用上游身份提供方已验证的主体标识换取本服务 token 对。
// 首次出现的主体会懒注册一个用户。
func (s *AuthService) ExchangeIdentity(ctx context.Context, req dto.AuthExchangeRequest) (*dto.AuthExchangeResponse, error) {
	user, err := repository.GetUserByIdentityRef(ctx, req.IdentityRef)
	isNewUser := false

	if err != nil {
		if err != errors.UserNotFound {
			return nil, fmt.Errorf("failed to query user: %w", err)
		}

		publicID, err := snowflake.NextID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user ID: %w", err)
		}

		user = &model.User{
			PublicID:    publicID,
			IdentityRef: req.IdentityRef,
			DisplayName: req.DisplayName,
			Email:       req.Email,
		}

		if err := repository.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		isNewUser = true
		logger.Logger.Info("New user created",
			zap.Int64("public_id", publicID),
		)
	}

	userIDStr := formatID(user.PublicID)
	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := cache.SetRefreshToken(ctx, userIDStr, refreshToken); err != nil {
		// token 已经签发成功，缓存失败只降级刷新路径
		logger.Logger.Warn("Failed to store refresh token in Redis",
			zap.String("user_id", userIDStr),
			zap.Error(err),
		)
	}

	return &dto.AuthExchangeResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         toUserSnapshot(user, isNewUser),
	}, nil
}

// RefreshToken 校验 refresh token 并轮换出新的 token 对
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshTokenResponse, error) {
	userID, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized
	}

	// 与缓存中的最新 token 比对，旧 token 换过一次就作废
	stored, err := cache.GetRefreshToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if stored == "" || stored != refreshToken {
		return nil, errors.Unauthorized
	}

	publicID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}
	if _, err := repository.GetUserByPublicID(ctx, publicID); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, expiresIn, err := token.GenerateTokenPair(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := cache.SetRefreshToken(ctx, userID, newRefreshToken); err != nil {
		logger.Logger.Warn("Failed to rotate refresh token in Redis",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}
