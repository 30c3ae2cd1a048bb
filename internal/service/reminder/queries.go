package reminder

import (
	"context"
	"fmt"

	"debt_reminder/internal/model"
	"debt_reminder/internal/service/phone"
	"debt_reminder/internal/utils"

	"github.com/shopspring/decimal"
)

// DueNotice строка списка ближайших платежей
type DueNotice struct {
	ClientID   uint            `json:"client_id"`
	ClientName string          `json:"client_name"`
	Phone      string          `json:"phone,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
}

func (s *Service) EligibleCount(ctx context.Context, adminID uint) (int64, error) {
	return s.clients.CountEligibleClients(ctx, adminID)
}

func (s *Service) RecentPaidClients(ctx context.Context, adminID uint) ([]model.Client, error) {
	return s.clients.ListRecentPaidClients(ctx, adminID, recentPaidLimit)
}

// DuePayments должники со сроком вчера, сегодня или завтра
func (s *Service) DuePayments(ctx context.Context, adminID uint) ([]DueNotice, error) {
	today := s.today()
	yesterday, todayStr, tomorrow := dueWindow(today)
	clients, err := s.clients.ListClientsDueOn(ctx, adminID, yesterday, todayStr, tomorrow)
	if err != nil {
		return nil, err
	}

	notices := make([]DueNotice, 0, len(clients))
	for _, c := range clients {
		status := dueStatus(c, today)
		amount := utils.FormatPeso(c.RemainingBalance)
		var msg string
		switch status {
		case StatusOverdue:
			msg = fmt.Sprintf("%s's payment was due yesterday (%s)", c.Name, amount)
		case StatusDueToday:
			msg = fmt.Sprintf("%s's payment is due today (%s)", c.Name, amount)
		default:
			msg = fmt.Sprintf("%s's payment is due tomorrow (%s)", c.Name, amount)
		}
		notice := DueNotice{
			ClientID:   c.ID,
			ClientName: c.Name,
			Amount:     c.RemainingBalance,
			DueDate:    c.DueDate,
			Status:     status,
			Message:    msg,
		}
		if n, err := phone.Normalize(c.Phone); err == nil {
			notice.Phone = n.E164()
		}
		notices = append(notices, notice)
	}
	return notices, nil
}

func (s *Service) NotificationStats(ctx context.Context, adminID uint) (model.NotificationStats, error) {
	return s.notifications.NotificationStats(ctx, adminID, s.today())
}

func (s *Service) ListClients(ctx context.Context, adminID uint) ([]model.Client, error) {
	return s.clients.ListClients(ctx, adminID)
}

func (s *Service) CreateClient(ctx context.Context, client *model.Client) error {
	return s.clients.CreateClient(ctx, client)
}

func (s *Service) UpdateClient(ctx context.Context, client *model.Client) error {
	return s.clients.UpdateClient(ctx, client)
}

func (s *Service) DeleteClient(ctx context.Context, adminID, clientID uint) error {
	return s.clients.DeleteClient(ctx, clientID, adminID)
}

func (s *Service) MarkAsPaid(ctx context.Context, adminID, clientID uint) error {
	return s.clients.MarkAsPaid(ctx, clientID, adminID)
}
