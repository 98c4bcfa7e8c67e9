package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"homeservice-booking/internal/domain/order"

	"github.com/google/uuid"
)

var (
	ErrInvalidType   = errors.New("invalid notification type")
	ErrInvalidFilter = errors.New("filter must be all, unread, order, system or promotion")
	ErrEmptyTitle    = errors.New("notification title is required")
)

type Type string

const (
	TypeOrder     Type = "order"
	TypeSystem    Type = "system"
	TypePromotion Type = "promotion"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeOrder, TypeSystem, TypePromotion:
		return true
	default:
		return false
	}
}

type Notification struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	typ       Type
	title     string
	message   string
	createdAt time.Time
	read      bool
	orderID   *uuid.UUID
	actionURL *string
}

type Params struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Type      Type
	Title     string
	Message   string
	CreatedAt time.Time
	Read      bool
	OrderID   *uuid.UUID
	ActionURL *string
}

func NewNotification(p Params) (*Notification, error) {
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrEmptyTitle
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Notification{
		id:        id,
		ownerID:   p.OwnerID,
		typ:       p.Type,
		title:     p.Title,
		message:   p.Message,
		createdAt: p.CreatedAt,
		read:      p.Read,
		orderID:   p.OrderID,
		actionURL: p.ActionURL,
	}, nil
}

// NewOrderPlaced is the feed entry written alongside a submitted order.
func NewOrderPlaced(o *order.Order) *Notification {
	orderID := o.ID()
	url := fmt.Sprintf("/orders/%s", orderID)
	return &Notification{
		id:        uuid.New(),
		ownerID:   o.OwnerID(),
		typ:       TypeOrder,
		title:     "Booking Received",
		message:   fmt.Sprintf("Your booking %s for %s at %s has been received and is awaiting confirmation.", o.Reference(), o.ScheduledDate(), o.ScheduledTime()),
		createdAt: o.CreatedAt(),
		orderID:   &orderID,
		actionURL: &url,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) OwnerID() uuid.UUID   { return n.ownerID }
func (n *Notification) Type() Type           { return n.typ }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) OrderID() *uuid.UUID  { return n.orderID }
func (n *Notification) ActionURL() *string   { return n.actionURL }

func (n *Notification) MarkRead() {
	n.read = true
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterUnread    Filter = "unread"
	FilterOrder     Filter = "order"
	FilterSystem    Filter = "system"
	FilterPromotion Filter = "promotion"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterUnread, FilterOrder, FilterSystem, FilterPromotion:
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

func (f Filter) Matches(n *Notification) bool {
	switch f {
	case FilterAll:
		return true
	case FilterUnread:
		return !n.read
	default:
		return string(f) == string(n.typ)
	}
}

func Apply(list []*Notification, f Filter) []*Notification {
	out := make([]*Notification, 0, len(list))
	for _, n := range list {
		if f.Matches(n) {
			out = append(out, n)
		}
	}
	return out
}

func UnreadCount(list []*Notification) int {
	count := 0
	for _, n := range list {
		if !n.read {
			count++
		}
	}
	return count
}
