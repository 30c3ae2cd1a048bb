package handlers

import (
	"errors"
	"net/http"

	"debt_reminder/internal/auth"

	"go.uber.org/zap"
)

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(svc *auth.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerReq
		if err := decode(r, &req); err != nil {
			fail(w, http.StatusBadRequest, "Please fill out the form!", nil)
			return
		}
		err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		switch {
		case err == nil:
			ok(w, "OTP sent to your email! Please check your inbox.", nil)
		case errors.Is(err, auth.ErrMissingFields):
			fail(w, http.StatusBadRequest, "Please fill out the form!", nil)
		case errors.Is(err, auth.ErrInvalidEmail):
			fail(w, http.StatusBadRequest, "Invalid email address!", nil)
		case errors.Is(err, auth.ErrEmailExists):
			fail(w, http.StatusConflict, "Email already exists!", nil)
		case errors.Is(err, auth.ErrOTPDelivery):
			fail(w, http.StatusBadGateway, "Failed to send OTP email!", nil)
		default:
			lg.Error("registration error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Registration failed!", nil)
		}
	}
}

type verifyOTPReq struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func VerifyOTP(svc *auth.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyOTPReq
		if err := decode(r, &req); err != nil {
			fail(w, http.StatusBadRequest, "Verification failed!", nil)
			return
		}
		_, err := svc.VerifyOTP(r.Context(), req.Email, req.OTP)
		switch {
		case err == nil:
			ok(w, "Account created successfully!", nil)
		case errors.Is(err, auth.ErrRegistrationExpired):
			fail(w, http.StatusGone, "Registration session expired!", nil)
		case errors.Is(err, auth.ErrTooManyAttempts):
			fail(w, http.StatusGone, "Too many attempts! Please register again.", nil)
		case errors.Is(err, auth.ErrInvalidOTP):
			fail(w, http.StatusBadRequest, "Invalid OTP!", nil)
		default:
			lg.Error("otp verification error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Verification failed!", nil)
		}
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(svc *auth.Service, lg *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := decode(r, &req); err != nil {
			fail(w, http.StatusBadRequest, "Login failed!", nil)
			return
		}
		token, admin, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case err == nil:
			ok(w, "Login successful!", payload{
				"token": token,
				"admin": payload{"id": admin.ID, "username": admin.Username, "email": admin.Email},
			})
		case errors.Is(err, auth.ErrInvalidCredentials):
			fail(w, http.StatusUnauthorized, "Invalid email or password!", nil)
		default:
			lg.Error("login error", zap.Error(err))
			fail(w, http.StatusInternalServerError, "Login failed!", nil)
		}
	}
}
