package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 参数校验类错误，写入前拒绝。
var (
	InvalidRequest   = Definition{Code: "INVALID_REQUEST", Message: "Invalid request"}
	InvalidDateRange = Definition{Code: "INVALID_DATE_RANGE", Message: "Earliest date must not be after latest date"}
	InvalidWeight    = Definition{Code: "INVALID_WEIGHT", Message: "Weight must be greater than zero"}
	MissingGeography = Definition{Code: "MISSING_GEOGRAPHY", Message: "Origin and destination are required"}
	InvalidStatus    = Definition{Code: "INVALID_STATUS", Message: "Invalid status value"}
	InvalidUserID    = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
)

// 资源不存在类错误。
var (
	UserNotFound     = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
	TripNotFound     = Definition{Code: "TRIP_NOT_FOUND", Message: "Trip not found"}
	ShipmentNotFound = Definition{Code: "SHIPMENT_NOT_FOUND", Message: "Shipment request not found"}
	MatchNotFound    = Definition{Code: "MATCH_NOT_FOUND", Message: "Match not found"}
)

// 权限类错误：操作者不是该转换要求的角色。
var (
	Unauthorized    = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	NotParticipant  = Definition{Code: "NOT_PARTICIPANT", Message: "Actor is not a participant of this match"}
	NotCounterpart  = Definition{Code: "NOT_COUNTERPART", Message: "Only the counterpart may perform this transition"}
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, slow down"}
)

// 匹配生命周期错误。
var (
	DuplicateProposal = Definition{Code: "DUPLICATE_PROPOSAL", Message: "A live match already exists for this pair"}
	MatchNotPending   = Definition{Code: "MATCH_NOT_PENDING", Message: "Match is not pending"}
	MatchNotAccepted  = Definition{Code: "MATCH_NOT_ACCEPTED", Message: "Match is not accepted"}
	ListingNotOpen    = Definition{Code: "LISTING_NOT_OPEN", Message: "Listing is not open"}
	CheckpointLocked  = Definition{Code: "CHECKPOINT_LOCKED", Message: "Previous handoff step has not been confirmed"}
	// 并发完成冲突：调用方应重新读取后重试，不应原样抛给用户
	CompletionConflict = Definition{Code: "COMPLETION_CONFLICT", Message: "Match state changed concurrently, retry with a fresh read"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidRequest.Code:     InvalidRequest,
	InvalidDateRange.Code:   InvalidDateRange,
	InvalidWeight.Code:      InvalidWeight,
	MissingGeography.Code:   MissingGeography,
	InvalidStatus.Code:      InvalidStatus,
	InvalidUserID.Code:      InvalidUserID,
	UserNotFound.Code:       UserNotFound,
	TripNotFound.Code:       TripNotFound,
	ShipmentNotFound.Code:   ShipmentNotFound,
	MatchNotFound.Code:      MatchNotFound,
	Unauthorized.Code:       Unauthorized,
	NotParticipant.Code:     NotParticipant,
	NotCounterpart.Code:     NotCounterpart,
	TooManyRequests.Code:    TooManyRequests,
	DuplicateProposal.Code:  DuplicateProposal,
	MatchNotPending.Code:    MatchNotPending,
	MatchNotAccepted.Code:   MatchNotAccepted,
	ListingNotOpen.Code:     ListingNotOpen,
	CheckpointLocked.Code:   CheckpointLocked,
	CompletionConflict.Code: CompletionConflict,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// 基础设施类 sentinel 错误，不走业务错误码。
var (
	ErrDatabaseConnectionNil        = errors.New("database connection is nil")
	ErrTokenGeneratorNotInitialized = errors.New("token generator is not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in token claims")
)
