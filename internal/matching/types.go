package matching

import "CoBag/internal/model"

// MatchType 匹配质量分级
type MatchType string

const (
	MatchExact            MatchType = "exact"
	MatchFlexibleDate     MatchType = "flexible_date"
	MatchFlexibleLocation MatchType = "flexible_location"
	MatchFlexibleBoth     MatchType = "flexible_both"
)

// Candidate 一次兼容评估的结果，不落库
type Candidate struct {
	Trip     *model.Trip
	Shipment *model.ShipmentRequest

	Type MatchType
	// DateDifferenceDays 距原始（未扩展）时间窗最近边界的天数，exact 时为 0
	DateDifferenceDays int
	// RegionName 目的地经由区匹配而非字面城市匹配时填写
	RegionName string
}
