package reminder

import (
	"context"
	"errors"
	"fmt"

	"debt_reminder/internal/domain"
	"debt_reminder/internal/model"
	"debt_reminder/internal/service/phone"

	"go.uber.org/zap"
)

// SendSMSReminder находит клиента администратора и отправляет ему SMS-напоминание.
func (s *Service) SendSMSReminder(ctx context.Context, adminID, clientID uint) Result {
	client, err := s.clients.GetClient(ctx, clientID, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("client not found", zap.Uint("client_id", clientID), zap.Uint("admin_id", adminID))
			return failure("Client not found", ErrClientNotFound)
		}
		s.logger.Error("error loading client", zap.Uint("client_id", clientID), zap.Error(err))
		return failure(fmt.Sprintf("Failed to send SMS reminder: %v", err), err)
	}
	return s.Dispatch(ctx, *client)
}

// Dispatch отправляет SMS через шлюз определенного оператора, затем перебирает
// остальных в порядке SingleFallback. Успешная отправка пишется в журнал.
func (s *Service) Dispatch(ctx context.Context, client model.Client) Result {
	if !client.HasPhone() {
		s.logger.Warn("client has no phone number", zap.Uint("client_id", client.ID))
		return failure(fmt.Sprintf("Client %s has no phone number", client.Name), ErrNoPhone)
	}
	if !phone.Validate(client.Phone) {
		s.logger.Warn("invalid phone number format", zap.Uint("client_id", client.ID), zap.String("phone", client.Phone))
		return failure(fmt.Sprintf("Invalid phone number format: %s", client.Phone), phone.ErrInvalidPhone)
	}

	msg := composeReminder(client.Name, client.RemainingBalance)
	carrier, addr, ok := s.deliver(ctx, client, msg, s.singleFallback)
	if !ok {
		s.logger.Error("all sms attempts failed", zap.Uint("client_id", client.ID), zap.String("phone", client.Phone))
		return failure(
			fmt.Sprintf("Failed to send SMS to %s. The SMS gateway may be temporarily unavailable.", client.Phone),
			ErrAllGatewaysExhausted,
		)
	}

	s.logNotification(ctx, client)
	return Result{
		Success: true,
		Message: fmt.Sprintf("SMS reminder sent to %s at %s!", client.Name, client.Phone),
		Carrier: carrier,
		Address: addr,
	}
}

// deliver сначала пробует оператора по префиксу, затем fallback по порядку.
// Попытки строго последовательные, первая удачная прекращает перебор.
func (s *Service) deliver(ctx context.Context, client model.Client, msg string, fallback []phone.Carrier) (phone.Carrier, string, bool) {
	if carrier, ok := phone.Classify(client.Phone); ok {
		if !phone.KnownPrefix(client.Phone) {
			s.logger.Debug("unknown prefix, defaulting carrier",
				zap.String("phone", client.Phone), zap.String("carrier", string(carrier)))
		}
		addr, err := s.sendViaGateway(ctx, client.Phone, msg, carrier)
		if err == nil {
			return carrier, addr, true
		}
		s.logger.Warn("detected carrier failed",
			zap.Uint("client_id", client.ID), zap.String("carrier", string(carrier)), zap.Error(err))
	}

	for _, carrier := range fallback {
		addr, err := s.sendViaGateway(ctx, client.Phone, msg, carrier)
		if err == nil {
			return carrier, addr, true
		}
		s.logger.Warn("fallback carrier failed",
			zap.Uint("client_id", client.ID), zap.String("carrier", string(carrier)), zap.Error(err))
	}
	return "", "", false
}

// sendViaGateway одна попытка через шлюз оператора: основной адрес, затем запасной.
func (s *Service) sendViaGateway(ctx context.Context, raw, msg string, carrier phone.Carrier) (string, error) {
	n, err := phone.Normalize(raw)
	if err != nil {
		return "", err
	}
	route, err := phone.Resolve(n, carrier)
	if err != nil {
		return "", err
	}

	// Шлюзы лучше работают с пустой темой и обычным текстом
	body := truncateSMS(msg)
	var lastErr error
	for _, addr := range route.Addresses() {
		if err := s.sender.Send(ctx, addr, "", body); err != nil {
			lastErr = err
			continue
		}
		return addr, nil
	}
	return "", lastErr
}

// logNotification пишет журнал. Ошибки записи только логируются и не меняют результат.
func (s *Service) logNotification(ctx context.Context, client model.Client) {
	entry := model.NotificationLog{
		ClientID: client.ID,
		Method:   model.MethodEmailGateway,
		SentAt:   s.now(),
	}
	if err := s.notifications.InsertNotification(ctx, &entry); err != nil {
		s.logger.Warn("failed to log sms reminder", zap.Uint("client_id", client.ID), zap.Error(err))
		return
	}
	if s.mirror == nil {
		return
	}
	if err := s.mirror.AppendNotification(ctx, entry, client); err != nil {
		s.logger.Warn("failed to mirror sms reminder", zap.Uint("client_id", client.ID), zap.Error(err))
	}
}
