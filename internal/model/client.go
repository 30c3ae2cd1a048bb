package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout формат хранения даты платежа.
const DateLayout = "2006-01-02"

type Client struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	AdminID          uint            `json:"admin_id" gorm:"not null;index"`
	Name             string          `json:"name" gorm:"type:varchar(255);not null"`
	Phone            string          `json:"phone" gorm:"type:varchar(32)"`
	Products         string          `json:"products" gorm:"type:text"`
	TotalAmount      decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	RemainingBalance decimal.Decimal `json:"remaining_balance" gorm:"type:decimal(12,2);not null;default:0"`
	// Пустая строка означает, что срок не задан
	DueDate   string    `json:"due_date" gorm:"type:varchar(10);index"`
	CreatedAt time.Time `json:"created_at"`

	Notifications []NotificationLog `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// HasPhone сообщает, заполнено ли поле телефона.
func (c Client) HasPhone() bool {
	return strings.TrimSpace(c.Phone) != ""
}

// IsPaid клиент считается расплатившимся, если остаток не положителен,
// независимо от срока платежа.
func (c Client) IsPaid() bool {
	return !c.RemainingBalance.IsPositive()
}

// Due возвращает дату платежа в указанной зоне.
func (c Client) Due(loc *time.Location) (time.Time, bool) {
	if c.DueDate == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, c.DueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
