package domain

// StatusFilter partitions the todo listing into open, completed, or all records.
type StatusFilter string

const (
	StatusOpen      StatusFilter = "open"
	StatusCompleted StatusFilter = "completed"
	StatusAll       StatusFilter = "all"
)

// ParseStatusFilter maps a raw query value to a filter. Anything
// unrecognized, including the empty string, means open.
func ParseStatusFilter(raw string) StatusFilter {
	switch StatusFilter(raw) {
	case StatusCompleted:
		return StatusCompleted
	case StatusAll:
		return StatusAll
	default:
		return StatusOpen
	}
}

// LookupStatusFilter is the strict variant used when propagating the
// filter through redirects: invalid values are dropped, not defaulted.
func LookupStatusFilter(raw string) (StatusFilter, bool) {
	switch StatusFilter(raw) {
	case StatusOpen, StatusCompleted, StatusAll:
		return StatusFilter(raw), true
	default:
		return "", false
	}
}

func (s StatusFilter) String() string {
	return string(s)
}
