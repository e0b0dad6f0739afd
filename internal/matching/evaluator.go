package matching

import (
	"strings"

	"CoBag/internal/model"
	"CoBag/internal/region"
	"CoBag/utils"
)

// Evaluator 判定行程与货件是否兼容并分级。
// 评估永远不返回错误：不兼容的组合直接不产生候选。
type Evaluator struct {
	// ToleranceDays 出发日落在时间窗前后 N 天以内仍视为柔性兼容
	ToleranceDays int
}

func NewEvaluator(toleranceDays int) *Evaluator {
	return &Evaluator{ToleranceDays: toleranceDays}
}

// EvaluateForShipment 寄件人浏览行程的视角。
// 出发地允许字面包含或同区兜底。
func (e *Evaluator) EvaluateForShipment(trip *model.Trip, shipment *model.ShipmentRequest) (*Candidate, bool) {
	if !e.structuralChecks(trip, shipment) {
		return nil, false
	}

	if !region.LooseContains(trip.FromCity, shipment.FromCity) &&
		!region.SameRegion(trip.FromCity, trip.FromCountry, shipment.FromCity, shipment.FromCountry) {
		return nil, false
	}

	return e.evaluateFlexibleMatch(trip, shipment)
}

// EvaluateForTrip 旅客浏览货件的视角。
// 出发地只做字面包含，不走同区兜底——两个视角唯一的已知差异，
// 由 TestOriginAsymmetry 固定。
func (e *Evaluator) EvaluateForTrip(trip *model.Trip, shipment *model.ShipmentRequest) (*Candidate, bool) {
	if !e.structuralChecks(trip, shipment) {
		return nil, false
	}

	if !region.LooseContains(trip.FromCity, shipment.FromCity) {
		return nil, false
	}

	return e.evaluateFlexibleMatch(trip, shipment)
}

// structuralChecks 国家对精确匹配（大小写不敏感）+ 重量约束
func (e *Evaluator) structuralChecks(trip *model.Trip, shipment *model.ShipmentRequest) bool {
	if !equalCountry(trip.FromCountry, shipment.FromCountry) ||
		!equalCountry(trip.ToCountry, shipment.ToCountry) {
		return false
	}

	// MaxWeightKg <= 0 表示旅客未声明运力，视为不受限
	if trip.MaxWeightKg > 0 && shipment.WeightKg > trip.MaxWeightKg {
		return false
	}

	return true
}

// evaluateFlexibleMatch 目的地 + 日期的共享判定
func (e *Evaluator) evaluateFlexibleMatch(trip *model.Trip, shipment *model.ShipmentRequest) (*Candidate, bool) {
	dateExact, dateDiff, dateOK := e.evaluateDate(trip, shipment)
	if !dateOK {
		return nil, false
	}

	locExact, regionName, locOK := e.evaluateDestination(trip, shipment)
	if !locOK {
		return nil, false
	}

	c := &Candidate{
		Trip:               trip,
		Shipment:           shipment,
		DateDifferenceDays: dateDiff,
		RegionName:         regionName,
	}

	switch {
	case dateExact && locExact:
		c.Type = MatchExact
	case locExact:
		c.Type = MatchFlexibleDate
	case dateExact:
		c.Type = MatchFlexibleLocation
	default:
		c.Type = MatchFlexibleBoth
	}

	return c, true
}

// evaluateDate 出发日落在 [earliest, latest] 为精确；
// 落在前后 ToleranceDays 以内为柔性，差值取距原始窗口最近边界的天数。
func (e *Evaluator) evaluateDate(trip *model.Trip, shipment *model.ShipmentRequest) (exact bool, diffDays int, ok bool) {
	dep := utils.TruncateToDate(trip.DepartureDate)
	earliest := utils.TruncateToDate(shipment.EarliestDate)
	latest := utils.TruncateToDate(shipment.LatestDate)

	if !dep.Before(earliest) && !dep.After(latest) {
		return true, 0, true
	}

	if dep.Before(earliest) {
		diff := utils.DaysBetween(dep, earliest)
		if diff <= e.ToleranceDays {
			return false, diff, true
		}
		return false, 0, false
	}

	diff := utils.DaysBetween(latest, dep)
	if diff <= e.ToleranceDays {
		return false, diff, true
	}
	return false, 0, false
}

// evaluateDestination 城市双向包含为精确，同区为柔性，否则不兼容
func (e *Evaluator) evaluateDestination(trip *model.Trip, shipment *model.ShipmentRequest) (exact bool, regionName string, ok bool) {
	if region.LooseContains(trip.ToCity, shipment.ToCity) {
		return true, "", true
	}

	if region.SameRegion(trip.ToCity, trip.ToCountry, shipment.ToCity, shipment.ToCountry) {
		r, _ := region.FindRegion(trip.ToCity, trip.ToCountry)
		return false, r.Name, true
	}

	return false, "", false
}

func equalCountry(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
