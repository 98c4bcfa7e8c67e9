package order

import "errors"

var ErrInvalidStatus = errors.New("invalid order status")

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// IsCurrent is true while the job is still ahead or under way.
func (s Status) IsCurrent() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// Tab splits the orders list into current and previous orders.
type Tab string

const (
	TabCurrent  Tab = "current"
	TabPrevious Tab = "previous"
)

var ErrInvalidTab = errors.New("tab must be current or previous")

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "", TabCurrent:
		return TabCurrent, nil
	case TabPrevious:
		return TabPrevious, nil
	default:
		return "", ErrInvalidTab
	}
}

func (t Tab) Statuses() []Status {
	if t == TabPrevious {
		return []Status{StatusCompleted, StatusCancelled}
	}
	return []Status{StatusPending, StatusConfirmed, StatusInProgress}
}

type Summary struct {
	Total     int
	Active    int
	Completed int
	Cancelled int
}

func Summarize(orders []*Order) Summary {
	s := Summary{Total: len(orders)}
	for _, o := range orders {
		switch {
		case o.status.IsCurrent():
			s.Active++
		case o.status == StatusCompleted:
			s.Completed++
		case o.status == StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
