package reminder

import (
	"context"
	"fmt"

	"debt_reminder/internal/service/phone"

	"go.uber.org/zap"
)

// SendAllSMSReminders рассылает SMS всем клиентам администратора с телефоном и долгом.
// Ошибка по одному клиенту не останавливает рассылку.
func (s *Service) SendAllSMSReminders(ctx context.Context, adminID uint) BulkResult {
	clients, err := s.clients.ListEligibleClients(ctx, adminID)
	if err != nil {
		s.logger.Error("error getting eligible clients", zap.Uint("admin_id", adminID), zap.Error(err))
		return BulkResult{Message: fmt.Sprintf("Failed to send SMS reminders: %v", err), Err: err}
	}
	if len(clients) == 0 {
		return BulkResult{
			Message: "No clients with phone numbers and outstanding balances found",
			Err:     ErrNoEligibleClients,
		}
	}

	today := s.today()
	var sent, failed int
	for _, client := range clients {
		if !phone.Validate(client.Phone) {
			s.logger.Warn("invalid phone number format", zap.Uint("client_id", client.ID), zap.String("phone", client.Phone))
			failed++
			continue
		}

		msg := composeBulkReminder(client.Name, urgencyLabel(client, today), client.RemainingBalance)
		if _, _, ok := s.deliver(ctx, client, msg, s.bulkFallback); !ok {
			s.logger.Warn("all sms attempts failed", zap.Uint("client_id", client.ID))
			failed++
			continue
		}
		sent++
		s.logNotification(ctx, client)
	}

	s.logger.Info("bulk sms reminders finished",
		zap.Uint("admin_id", adminID), zap.Int("sent", sent), zap.Int("failed", failed))

	res := BulkResult{
		Success:     sent > 0,
		SentCount:   sent,
		FailedCount: failed,
		Message:     fmt.Sprintf("Sent %d SMS reminders, %d failed", sent, failed),
	}
	if sent == 0 {
		res.Err = ErrAllGatewaysExhausted
	}
	return res
}
