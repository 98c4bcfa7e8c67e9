package queries

import (
	"time"

	"homeservice-booking/internal/domain/notification"
	"homeservice-booking/internal/domain/order"
	"homeservice-booking/internal/domain/provider"

	"github.com/google/uuid"
)

// ProviderView represents read-optimized provider data
type ProviderView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	HourlyRate       float64  `json:"hourly_rate"`
	Specialties      []string `json:"specialties"`
	Experience       string   `json:"experience"`
	ResponseTime     string   `json:"response_time"`
	CompletedJobs    int      `json:"completed_jobs"`
	Verified         bool     `json:"verified"`
	Avatar           *string  `json:"avatar,omitempty"`
	UnavailableDates []string `json:"unavailable_dates"`
}

type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type ExtraTaskView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderView struct {
	ID                uuid.UUID  `json:"id"`
	Reference         string     `json:"reference"`
	ServiceType       string     `json:"service_type"`
	SubService        string     `json:"sub_service"`
	Status            string     `json:"status"`
	StatusLabel       string     `json:"status_label"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	CustomerEmail     string     `json:"customer_email"`
	ProviderID        string     `json:"provider_id"`
	TechnicianName    *string    `json:"technician_name,omitempty"`
	TechnicianPhone   *string    `json:"technician_phone,omitempty"`
	ScheduledDate     string     `json:"scheduled_date"`
	ScheduledTime     string     `json:"scheduled_time"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	PostalCode        string     `json:"postal_code"`
	Description       string     `json:"description"`
	EstimatedDuration int        `json:"estimated_duration"`
	Price             float64    `json:"price"`
	Currency          string     `json:"currency"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Rating            *int       `json:"rating,omitempty"`
	Review            *string    `json:"review,omitempty"`
}

type OrderSummaryView struct {
	TotalOrders     int `json:"total_orders"`
	ActiveOrders    int `json:"active_orders"`
	CompletedOrders int `json:"completed_orders"`
	CancelledOrders int `json:"cancelled_orders"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	Read      bool       `json:"read"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	ActionURL *string    `json:"action_url,omitempty"`
}

type NotificationListView struct {
	Items       []*NotificationView `json:"items"`
	UnreadCount int                 `json:"unread_count"`
	Counts      map[string]int      `json:"counts"`
}

func toProviderView(p *provider.Provider) *ProviderView {
	return &ProviderView{
		ID:               p.ID(),
		Name:             p.Name(),
		Rating:           p.Rating(),
		ReviewCount:      p.ReviewCount(),
		HourlyRate:       p.HourlyRate().Amount(),
		Specialties:      p.Specialties(),
		Experience:       p.Experience(),
		ResponseTime:     p.ResponseTime(),
		CompletedJobs:    p.CompletedJobs(),
		Verified:         p.Verified(),
		Avatar:           p.Avatar(),
		UnavailableDates: p.ExcludedDates(),
	}
}

func toOrderView(o *order.Order) *OrderView {
	c := o.Customer()
	loc := o.Location()
	return &OrderView{
		ID:                o.ID(),
		Reference:         o.Reference(),
		ServiceType:       o.ServiceType(),
		SubService:        o.SubService(),
		Status:            o.Status().String(),
		StatusLabel:       o.Status().Label(),
		CustomerName:      c.Name,
		CustomerPhone:     c.Phone,
		CustomerEmail:     c.Email,
		ProviderID:        o.ProviderID(),
		TechnicianName:    o.TechnicianName(),
		TechnicianPhone:   o.TechnicianPhone(),
		ScheduledDate:     o.ScheduledDate(),
		ScheduledTime:     o.ScheduledTime(),
		Address:           loc.Address,
		City:              loc.City,
		PostalCode:        loc.PostalCode,
		Description:       o.Description(),
		EstimatedDuration: o.EstimatedDuration(),
		Price:             o.Price().Amount(),
		Currency:          o.Currency(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		CompletedAt:       o.CompletedAt(),
		Rating:            o.Rating(),
		Review:            o.Review(),
	}
}

func toNotificationView(n *notification.Notification) *NotificationView {
	return &NotificationView{
		ID:        n.ID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		CreatedAt: n.CreatedAt(),
		Read:      n.Read(),
		OrderID:   n.OrderID(),
		ActionURL: n.ActionURL(),
	}
}
