package mailer

import (
	"context"
	"fmt"
	"sync"

	"CoBag/config"
	"CoBag/pkg/logger"

	"go.uber.org/zap"
)

// Mail 一封待发送的通知邮件
type Mail struct {
	To       string
	ToName   string
	Subject  string
	TextBody string
	// Category 用于指标打点，如 match_proposed / match_accepted
	Category string
}

// Client 邮件客户端接口
type Client interface {
	// Send 发送单封邮件
	Send(ctx context.Context, mail Mail) error

	// Provider 返回实现名称，用于日志和指标
	Provider() string
}

var (
	mailClient Client
	mailOnce   sync.Once
	mailErr    error
)

// Init 初始化邮件客户端
func Init() error {
	mailOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.MailProvider {
		case "smtp":
			mailClient = NewSMTPClient()
		case "mock":
			mailClient = NewMockClient()
		default:
			mailErr = fmt.Errorf("unsupported mail provider: %s", cfg.MailProvider)
		}

		if mailErr != nil {
			logger.Logger.Error("Failed to initialize mail client", zap.Error(mailErr))
			return
		}

		logger.Logger.Info("Mail client initialized successfully",
			zap.String("provider", cfg.MailProvider),
		)
	})

	return mailErr
}

func GetClient() Client {
	if mailClient == nil {
		panic("mail client not initialized, call mailer.Init() first")
	}
	return mailClient
}

func Send(ctx context.Context, mail Mail) error {
	return GetClient().Send(ctx, mail)
}
