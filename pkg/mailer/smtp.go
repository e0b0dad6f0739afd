package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"CoBag/config"
	"CoBag/pkg/logger"

	"go.uber.org/zap"
)

// SMTPClient 基于 SMTP 提交端口的邮件客户端
type SMTPClient struct {
	host string
	port string
	auth smtp.Auth
	from string
	name string
}

func NewSMTPClient() *SMTPClient {
	cfg := config.Cfg

	var auth smtp.Auth
	if cfg.MailSMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.MailSMTPUser, cfg.MailSMTPPass, cfg.MailSMTPHost)
	}

	return &SMTPClient{
		host: cfg.MailSMTPHost,
		port: cfg.MailSMTPPort,
		auth: auth,
		from: cfg.MailFromAddress,
		name: cfg.MailFromName,
	}
}

func (c *SMTPClient) Provider() string {
	return "smtp"
}

// Send 发送单封邮件
func (c *SMTPClient) Send(ctx context.Context, mail Mail) error {
	if c.host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if mail.To == "" {
		return fmt.Errorf("recipient address is required")
	}

	msg := c.buildMessage(mail)
	addr := c.host + ":" + c.port

	// net/smtp 不接受 context，发送放在独立 goroutine 里以便响应取消
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, c.auth, c.from, []string{mail.To}, msg)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			logger.Logger.Error("Failed to send mail",
				zap.String("to", mail.To),
				zap.String("category", mail.Category),
				zap.Error(err),
			)
			return fmt.Errorf("failed to send mail: %w", err)
		}
	}

	logger.Logger.Info("Mail sent successfully",
		zap.String("to", mail.To),
		zap.String("category", mail.Category),
	)

	return nil
}

func (c *SMTPClient) buildMessage(mail Mail) []byte {
	var b strings.Builder

	fromHeader := c.from
	if c.name != "" {
		fromHeader = fmt.Sprintf("%s <%s>", c.name, c.from)
	}
	toHeader := mail.To
	if mail.ToName != "" {
		toHeader = fmt.Sprintf("%s <%s>", mail.ToName, mail.To)
	}

	b.WriteString("From: " + fromHeader + "\r\n")
	b.WriteString("To: " + toHeader + "\r\n")
	b.WriteString("Subject: " + mail.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(mail.TextBody)

	return []byte(b.String())
}
