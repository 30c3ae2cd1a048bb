package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"debt_reminder/internal/auth"
	"debt_reminder/internal/domain"
	"debt_reminder/internal/model"
	"debt_reminder/internal/service/reminder"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type clientReq struct {
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Products         string          `json:"products"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	DueDate          string          `json:"due_date"`
}

// toModel проверяет поля запроса
func (req clientReq) toModel(adminID uint) (model.Client, string) {
	c := model.Client{
		AdminID:          adminID,
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		Products:         strings.TrimSpace(req.Products),
		TotalAmount:      req.TotalAmount,
		RemainingBalance: req.RemainingBalance,
		DueDate:          strings.TrimSpace(req.DueDate),
	}
	if c.Name == "" {
		return c, "Client name is required!"
	}
	if c.TotalAmount.IsNegative() {
		return c, "Total amount must not be negative!"
	}
	if c.DueDate != "" {
		if _, err := time.Parse(model.DateLayout, c.DueDate); err != nil {
			return c, "Due date must be YYYY-MM-DD!"
		}
	}
	return c, ""
}

func ListClients(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.ListClients(r.Context(), auth.AdminID(r.Context()))
		if err != nil {
			lg.Error("list clients error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to load clients!", payload{"clients": []model.Client{}})
			return
		}
		if clients == nil {
			clients = []model.Client{}
		}
		ok(w, "", payload{"clients": clients})
	}
}

func CreateClient(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientReq
		if err := decode(r, &req); err != nil {
			fail(w, http.StatusBadRequest, "Failed to add client!", nil)
			return
		}
		c, problem := req.toModel(auth.AdminID(r.Context()))
		if problem != "" {
			fail(w, http.StatusBadRequest, problem, nil)
			return
		}
		if err := svc.CreateClient(r.Context(), &c); err != nil {
			lg.Error("add client error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to add client!", nil)
			return
		}
		ok(w, "Client added successfully!", payload{"client": c})
	}
}

func UpdateClient(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientReq
		if err := decode(r, &req); err != nil {
			fail(w, http.StatusBadRequest, "Failed to update client!", nil)
			return
		}
		c, problem := req.toModel(auth.AdminID(r.Context()))
		if problem != "" {
			fail(w, http.StatusBadRequest, problem, nil)
			return
		}
		c.ID = idParam(r)
		err := svc.UpdateClient(r.Context(), &c)
		switch {
		case err == nil:
			ok(w, "Client updated successfully!", nil)
		case errors.Is(err, domain.ErrNotFound):
			fail(w, http.StatusNotFound, "Client not found", nil)
		default:
			lg.Error("update client error", zap.Uint("client_id", c.ID), zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to update client!", nil)
		}
	}
}

func DeleteClient(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := idParam(r)
		err := svc.DeleteClient(r.Context(), auth.AdminID(r.Context()), id)
		switch {
		case err == nil:
			ok(w, "Client deleted successfully!", nil)
		case errors.Is(err, domain.ErrNotFound):
			fail(w, http.StatusNotFound, "Client not found", nil)
		default:
			lg.Error("delete client error", zap.Uint("client_id", id), zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to delete client!", nil)
		}
	}
}

func MarkAsPaid(svc *reminder.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := idParam(r)
		err := svc.MarkAsPaid(r.Context(), auth.AdminID(r.Context()), id)
		switch {
		case err == nil:
			ok(w, "Client marked as fully paid!", nil)
		case errors.Is(err, domain.ErrNotFound):
			fail(w, http.StatusNotFound, "Client not found", nil)
		default:
			lg.Error("mark as paid error", zap.Uint("client_id", id), zap.Error(err))
			fail(w, http.StatusInternalServerError, "Failed to mark client as paid!", nil)
		}
	}
}
