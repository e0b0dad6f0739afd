package service

import (
	"fmt"
	"strconv"
	"time"

	"CoBag/internal/matching"
	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/utils"
)

// DTO 转换集中放这里，handler 不直接接触 model

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func toUserSnapshot(user *model.User, isNew bool) dto.UserSnapshot {
	return dto.UserSnapshot{
		ID:          formatID(user.PublicID),
		DisplayName: user.DisplayName,
		Email:       user.Email,
		IsNewUser:   isNew,
	}
}

func toTripData(trip *model.Trip) *dto.TripData {
	data := &dto.TripData{
		ID:            formatID(trip.PublicID),
		TravelerID:    formatID(trip.TravelerID),
		FromCountry:   trip.FromCountry,
		FromCity:      trip.FromCity,
		ToCountry:     trip.ToCountry,
		ToCity:        trip.ToCity,
		DepartureDate: utils.FormatDate(trip.DepartureDate),
		MaxWeightKg:   trip.MaxWeightKg,
		Status:        string(trip.Status),
		CreatedAt:     trip.CreatedAt.Format(time.RFC3339),
	}
	if trip.ArrivalDate != nil {
		data.ArrivalDate = utils.FormatDate(*trip.ArrivalDate)
	}
	return data
}

func toShipmentData(shipment *model.ShipmentRequest) *dto.ShipmentData {
	return &dto.ShipmentData{
		ID:           formatID(shipment.PublicID),
		SenderID:     formatID(shipment.SenderID),
		FromCountry:  shipment.FromCountry,
		FromCity:     shipment.FromCity,
		ToCountry:    shipment.ToCountry,
		ToCity:       shipment.ToCity,
		EarliestDate: utils.FormatDate(shipment.EarliestDate),
		LatestDate:   utils.FormatDate(shipment.LatestDate),
		WeightKg:     shipment.WeightKg,
		ItemType:     shipment.ItemType,
		Status:       string(shipment.Status),
		CreatedAt:    shipment.CreatedAt.Format(time.RFC3339),
	}
}

func toMatchData(match *model.Match) *dto.MatchData {
	data := &dto.MatchData{
		ID:                formatID(match.PublicID),
		TripID:            formatID(match.TripID),
		ShipmentRequestID: formatID(match.ShipmentRequestID),
		TravelerID:        formatID(match.TravelerID),
		SenderID:          formatID(match.SenderID),
		ProposedBy:        formatID(match.ProposedBy),
		Status:            string(match.Status),
		MatchType:         match.MatchType,
		SenderHandedOver:  match.SenderHandedOver,
		TravelerPickedUp:  match.TravelerPickedUp,
		TravelerDelivered: match.TravelerDelivered,
		SenderReceived:    match.SenderReceived,
		CreatedAt:         match.CreatedAt.Format(time.RFC3339),
	}
	if match.CompletedAt != nil {
		data.CompletedAt = match.CompletedAt.Format(time.RFC3339)
	}
	return data
}

func toMessageData(message *model.Message) *dto.MessageData {
	return &dto.MessageData{
		ID:        formatID(message.PublicID),
		MatchID:   formatID(message.MatchID),
		SenderID:  formatID(message.SenderID),
		Body:      message.Body,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	}
}

func toCandidateData(c matching.Candidate) *dto.CandidateData {
	data := &dto.CandidateData{
		MatchType:          string(c.Type),
		DateDifferenceDays: c.DateDifferenceDays,
		RegionName:         c.RegionName,
	}
	if c.Trip != nil {
		data.Trip = toTripData(c.Trip)
	}
	if c.Shipment != nil {
		data.Shipment = toShipmentData(c.Shipment)
	}
	return data
}

// routeDescription 通知邮件里描述路线用
func routeDescription(fromCity, toCity string) string {
	return fmt.Sprintf("%s → %s", fromCity, toCity)
}
