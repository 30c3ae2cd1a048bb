package auth

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var (
	ErrRegistrationExpired = errors.New("registration session expired")
	ErrInvalidOTP          = errors.New("invalid otp")
	ErrTooManyAttempts     = errors.New("too many otp attempts")
)

const (
	otpDigits = 6
	// после стольких неверных кодов заявка удаляется
	maxOTPAttempts = 5
)

// Pending регистрация, ожидающая подтверждения кодом
type Pending struct {
	Username     string
	Email        string
	PasswordHash string
	OTP          string
	Attempts     int
}

// Registrations хранит незавершенные регистрации до истечения ttl
type Registrations struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

func NewRegistrations(ttl time.Duration) *Registrations {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Registrations{cache: gocache.New(ttl, 2*ttl), ttl: ttl}
}

func registrationKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Put сохраняет заявку, повторная регистрация на тот же email заменяет код
func (r *Registrations) Put(p Pending) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Attempts = 0
	r.cache.Set(registrationKey(p.Email), p, gocache.DefaultExpiration)
}

// Take проверяет код и при совпадении забирает заявку.
// Неверный код увеличивает счетчик попыток, срок жизни заявки не продлевается.
func (r *Registrations) Take(email, otp string) (Pending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registrationKey(email)
	x, expires, found := r.cache.GetWithExpiration(key)
	if !found {
		return Pending{}, ErrRegistrationExpired
	}
	p, _ := x.(Pending)
	if strings.TrimSpace(otp) == p.OTP {
		r.cache.Delete(key)
		return p, nil
	}

	p.Attempts++
	left := time.Until(expires)
	if p.Attempts >= maxOTPAttempts || left <= 0 {
		r.cache.Delete(key)
		return Pending{}, ErrTooManyAttempts
	}
	r.cache.Set(key, p, left)
	return Pending{}, ErrInvalidOTP
}

// GenerateOTP шестизначный код
func GenerateOTP() (string, error) {
	var b strings.Builder
	for i := 0; i < otpDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
