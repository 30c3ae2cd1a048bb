package reminder

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"debt_reminder/internal/domain"
	"debt_reminder/internal/model"
	"debt_reminder/internal/utils"

	"go.uber.org/zap"
)

const (
	StatusOverdue     = "overdue"
	StatusDueToday    = "due_today"
	StatusDueTomorrow = "due_tomorrow"
)

type urgencyStyle struct {
	Text  string
	Color template.CSS
}

var urgencyStyles = map[string]urgencyStyle{
	StatusOverdue:     {Text: "Overdue", Color: "#e74c3c"},
	StatusDueToday:    {Text: "Due Today", Color: "#f39c12"},
	StatusDueTomorrow: {Text: "Due Tomorrow", Color: "#3498db"},
}

var alertTemplate = template.Must(template.New("alert").Parse(`
<div style="background: {{.Color}}; padding: 30px; font-family: Arial, sans-serif;">
  <div style="background: white; border-radius: 15px; padding: 30px; max-width: 600px; margin: 0 auto;">
    <h2 style="color: {{.Color}}; text-align: center;">Payment {{.Status}}</h2>
    <p style="color: #333; font-size: 18px;">Client: <strong>{{.Client.Name}}</strong></p>
    <p style="color: #666;">Payment due date: <strong>{{.DueDate}}</strong></p>
    <p style="color: #666;">Phone: <strong>{{.Phone}}</strong></p>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0;">
      <p style="color: #666;"><strong>Products:</strong> {{.Client.Products}}</p>
      <p style="color: #666;"><strong>Total Amount:</strong> {{.Total}}</p>
      <p style="color: {{.Color}}; font-size: 20px;"><strong>Outstanding Balance: {{.Balance}}</strong></p>
    </div>
    <p style="color: #666;">{{.Footer}}</p>
  </div>
</div>
`))

type alertView struct {
	Client  model.Client
	Status  string
	Color   template.CSS
	DueDate string
	Phone   string
	Total   string
	Balance string
	Footer  string
}

func renderAlert(client model.Client, style urgencyStyle, footer string) (string, error) {
	view := alertView{
		Client:  client,
		Status:  style.Text,
		Color:   style.Color,
		DueDate: client.DueDate,
		Phone:   client.Phone,
		Total:   utils.FormatPeso(client.TotalAmount),
		Balance: utils.FormatPeso(client.RemainingBalance),
		Footer:  footer,
	}
	if view.DueDate == "" {
		view.DueDate = "Not set"
	}
	if strings.TrimSpace(view.Phone) == "" {
		view.Phone = "Not provided"
	}
	var b strings.Builder
	if err := alertTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

// dueWindow вчера, сегодня и завтра в формате хранения
func dueWindow(today time.Time) (yesterday, todayStr, tomorrow string) {
	return today.AddDate(0, 0, -1).Format(model.DateLayout),
		today.Format(model.DateLayout),
		today.AddDate(0, 0, 1).Format(model.DateLayout)
}

func dueStatus(client model.Client, today time.Time) string {
	yesterday, todayStr, _ := dueWindow(today)
	switch client.DueDate {
	case yesterday:
		return StatusOverdue
	case todayStr:
		return StatusDueToday
	default:
		return StatusDueTomorrow
	}
}

// AlertDueClients отправляет администратору по письму на каждого должника со сроком
// вчера, сегодня или завтра. Между письмами выдерживается пауза.
func (s *Service) AlertDueClients(ctx context.Context, admin model.Admin) (int, error) {
	today := s.today()
	yesterday, todayStr, tomorrow := dueWindow(today)
	clients, err := s.clients.ListClientsDueOn(ctx, admin.ID, yesterday, todayStr, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("error getting due clients: %w", err)
	}

	var (
		sent int
		errs []error
	)
	for _, client := range clients {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		style := urgencyStyles[dueStatus(client, today)]
		body, err := renderAlert(client, style, "Please follow up with the client for payment.")
		if err != nil {
			errs = append(errs, fmt.Errorf("client %d: %w", client.ID, err))
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			errs = append(errs, err)
			break
		}
		subject := fmt.Sprintf("Payment Alert: %s - %s", client.Name, style.Text)
		if err := s.sender.Send(ctx, admin.Email, subject, body); err != nil {
			s.logger.Warn("failed to send due alert",
				zap.Uint("admin_id", admin.ID), zap.Uint("client_id", client.ID), zap.Error(err))
			errs = append(errs, fmt.Errorf("client %d: %w", client.ID, err))
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

// SendEmailReminder письмо администратору о конкретном клиенте.
func (s *Service) SendEmailReminder(ctx context.Context, adminID, clientID uint) Result {
	client, err := s.clients.GetClient(ctx, clientID, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failure("Client not found!", ErrClientNotFound)
		}
		s.logger.Error("error loading client", zap.Uint("client_id", clientID), zap.Error(err))
		return failure("Failed to send reminder!", err)
	}
	admin, err := s.admins.GetAdmin(ctx, adminID)
	if err != nil || admin.Email == "" {
		s.logger.Error("admin email not found", zap.Uint("admin_id", adminID), zap.Error(err))
		return failure("Admin email not found!", ErrAdminNotFound)
	}

	style := urgencyStyle{Text: "Reminder", Color: "#ff6b6b"}
	body, err := renderAlert(*client, style, "This is a reminder to follow up with the client for payment.")
	if err != nil {
		return failure("Failed to send reminder!", err)
	}
	if err := s.sender.Send(ctx, admin.Email, "Payment Reminder - "+client.Name, body); err != nil {
		s.logger.Warn("failed to send reminder email", zap.Uint("client_id", client.ID), zap.Error(err))
		return failure("Failed to send reminder email!", fmt.Errorf("%w: %v", ErrEmailDelivery, err))
	}
	return Result{Success: true, Message: "Reminder email sent to you successfully!", Address: admin.Email}
}
