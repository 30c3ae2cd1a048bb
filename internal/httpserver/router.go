package httpserver

import (
	"net/http"
	"time"

	"debt_reminder/internal/auth"
	"debt_reminder/internal/httpserver/handlers"
	"debt_reminder/internal/service/reminder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(reminders *reminder.Service, accounts *auth.Service, signer *auth.Signer, lg *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, requestLogger(lg))

	r.Post("/register", handlers.Register(accounts, lg))
	r.Post("/verify_otp", handlers.VerifyOTP(accounts, lg))
	r.Post("/login", handlers.Login(accounts, lg))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth(signer))

		protected.Get("/clients", handlers.ListClients(reminders, lg))
		protected.Post("/clients", handlers.CreateClient(reminders, lg))
		protected.Get("/clients/recent_paid", handlers.RecentPaidClients(reminders, lg))
		protected.Put("/clients/{id}", handlers.UpdateClient(reminders, lg))
		protected.Delete("/clients/{id}", handlers.DeleteClient(reminders, lg))
		protected.Put("/clients/{id}/paid", handlers.MarkAsPaid(reminders, lg))
		protected.Post("/clients/{id}/sms", handlers.SendSMSReminder(reminders))
		protected.Post("/clients/{id}/reminder", handlers.SendEmailReminder(reminders))

		protected.Post("/sms/send_all", handlers.SendAllSMSReminders(reminders))
		protected.Get("/sms/eligible", handlers.EligibleCount(reminders, lg))
		protected.Get("/payments/due", handlers.DuePayments(reminders, lg))
		protected.Get("/notifications/stats", handlers.NotificationStats(reminders, lg))
	})
	return r
}

// requestLogger пишет каждый запрос в zap
func requestLogger(lg *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			lg.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
