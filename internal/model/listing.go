package model

// ListingStatus 行程 / 货件共享的挂牌状态
type ListingStatus string

const (
	ListingStatusOpen      ListingStatus = "open"
	ListingStatusMatched   ListingStatus = "matched"
	ListingStatusClosed    ListingStatus = "closed"
	ListingStatusCompleted ListingStatus = "completed"
)

// Terminal closed / completed 之后挂牌不再回到候选池
func (s ListingStatus) Terminal() bool {
	return s == ListingStatusClosed || s == ListingStatusCompleted
}

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusOpen, ListingStatusMatched, ListingStatusClosed, ListingStatusCompleted:
		return true
	}
	return false
}
