package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"debt_reminder/internal/auth"
	"debt_reminder/internal/model"
	"debt_reminder/internal/service/phone"
	"debt_reminder/internal/service/reminder"

	"go.uber.org/zap"
)

// resultStatus HTTP-код для неуспешного результата рассылки
func resultStatus(err error) int {
	switch {
	case errors.Is(err, reminder.ErrClientNotFound),
		errors.Is(err, reminder.ErrAdminNotFound):
		return http.StatusNotFound
	case errors.Is(err, reminder.ErrNoPhone),
		errors.Is(err, phone.ErrInvalidPhone),
		errors.Is(err, reminder.ErrNoEligibleClients):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reminder.ErrAllGatewaysExhausted),
		errors.Is(err, reminder.ErrEmailDelivery):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func SendSMSReminder(svc *reminder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := svc.SendSMSReminder(r.Context(), auth.AdminID(r.Context()), idParam(r))
		if !res.Success {
			fail(w, resultStatus(res.Err), res.Message, nil)
			return
		}
		ok(w, res.Message, payload{"carrier": res.Carrier, "address": res.Address})
	}
}

func SendAllSMSReminders(svc *reminder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := svc.SendAllSMSReminders(r.Context(), auth.AdminID(r.Context()))
		extra := payload{"sent_count": res.SentCount, "failed_count": res.FailedCount}
		if !res.Success {
			fail(w, resultStatus(res.Err), res.Message, extra)
			return
		}
		ok(w, res.Message, extra)
	}
}

func SendEmailReminder(svc *reminder.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := svc.SendEmailReminder(r.Context(), auth.AdminID(r.Context()), idParam(r))
		if !res.Success {
			fail(w, resultStatus(res.Err), res.Message, nil)
			return
		}
		ok(w, res.Message, nil)
	}
}

func EligibleCount(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.EligibleCount(r.Context(), auth.AdminID(r.Context()))
		if err != nil {
			lg.Error("error checking sms eligible clients", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Error checking eligible clients", payload{"count": 0})
			return
		}
		ok(w, fmt.Sprintf("Found %d clients eligible for SMS reminders", count), payload{"count": count})
	}
}

func RecentPaidClients(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.RecentPaidClients(r.Context(), auth.AdminID(r.Context()))
		if err != nil {
			lg.Error("get recent paid clients error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to load recent paid clients", payload{"clients": []model.Client{}})
			return
		}
		if clients == nil {
			clients = []model.Client{}
		}
		ok(w, "", payload{"clients": clients})
	}
}

func DuePayments(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notices, err := svc.DuePayments(r.Context(), auth.AdminID(r.Context()))
		if err != nil {
			lg.Error("check due payments error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to check due payments", payload{"notifications": []reminder.DueNotice{}})
			return
		}
		ok(w, "", payload{"notifications": notices})
	}
}

func NotificationStats(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.NotificationStats(r.Context(), auth.AdminID(r.Context()))
		if err != nil {
			lg.Error("notification stats error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to load notification stats", nil)
			return
		}
		ok(w, "", payload{
			"total":        stats.Total,
			"sent_today":   stats.SentToday,
			"last_sent_at": stats.LastSentAt,
		})
	}
}
