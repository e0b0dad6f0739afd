package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 匹配生命周期指标
	MatchesProposedTotal  metric.Int64Counter
	MatchesResolvedTotal  metric.Int64Counter
	MatchesCompletedTotal metric.Int64Counter
	CandidateEvaluations  metric.Float64Histogram

	// 交接确认指标
	HandoffConfirmationsTotal metric.Int64Counter

	// 通知邮件指标
	MailSentTotal    metric.Int64Counter
	MailSendDuration metric.Float64Histogram
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("cobag")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.MatchesProposedTotal, err = meter.Int64Counter(
		"matches_proposed_total",
		metric.WithDescription("Total number of match proposals created"),
		metric.WithUnit("{match}"),
	)
	if err != nil {
		return err
	}

	metrics.MatchesResolvedTotal, err = meter.Int64Counter(
		"matches_resolved_total",
		metric.WithDescription("Total number of pending matches accepted or rejected"),
		metric.WithUnit("{match}"),
	)
	if err != nil {
		return err
	}

	metrics.MatchesCompletedTotal, err = meter.Int64Counter(
		"matches_completed_total",
		metric.WithDescription("Total number of matches that reached completion"),
		metric.WithUnit("{match}"),
	)
	if err != nil {
		return err
	}

	metrics.CandidateEvaluations, err = meter.Float64Histogram(
		"candidate_evaluation_duration_seconds",
		metric.WithDescription("Time spent evaluating candidate listings"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.HandoffConfirmationsTotal, err = meter.Int64Counter(
		"handoff_confirmations_total",
		metric.WithDescription("Total number of fulfillment checkpoint confirmations"),
		metric.WithUnit("{confirmation}"),
	)
	if err != nil {
		return err
	}

	metrics.MailSentTotal, err = meter.Int64Counter(
		"mail_sent_total",
		metric.WithDescription("Total number of notification mails sent"),
		metric.WithUnit("{mail}"),
	)
	if err != nil {
		return err
	}

	metrics.MailSendDuration, err = meter.Float64Histogram(
		"mail_send_duration_seconds",
		metric.WithDescription("Time spent sending notification mails in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordMatchProposed 记录提案创建
func (m *OTelMetrics) RecordMatchProposed(ctx context.Context, matchType, proposedBy string) {
	m.MatchesProposedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("match_type", matchType),
		attribute.String("proposed_by", proposedBy),
	))
}

// RecordMatchResolved 记录提案被接受或拒绝
func (m *OTelMetrics) RecordMatchResolved(ctx context.Context, outcome string) {
	m.MatchesResolvedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordMatchCompleted 记录匹配完成
func (m *OTelMetrics) RecordMatchCompleted(ctx context.Context) {
	m.MatchesCompletedTotal.Add(ctx, 1)
}

// RecordCandidateEvaluation 记录一次候选评估耗时
func (m *OTelMetrics) RecordCandidateEvaluation(ctx context.Context, view string, duration float64, candidateCount int) {
	m.CandidateEvaluations.Record(ctx, duration, metric.WithAttributes(
		attribute.String("view", view),
		attribute.Int("candidate_count", candidateCount),
	))
}

// RecordHandoffConfirmation 记录交接环节确认
func (m *OTelMetrics) RecordHandoffConfirmation(ctx context.Context, checkpoint, role string) {
	m.HandoffConfirmationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("checkpoint", checkpoint),
		attribute.String("role", role),
	))
}

// RecordMailSent 记录邮件发送结果
func (m *OTelMetrics) RecordMailSent(ctx context.Context, category, provider, status string, duration float64) {
	m.MailSentTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("provider", provider),
		attribute.String("status", status),
	))
	m.MailSendDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("provider", provider),
	))
}
