package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhone = errors.New("invalid phone number format")

// Number каноничный 10-значный номер абонента без кода страны и ведущего нуля (9XXXXXXXXX).
type Number string

// Normalize приводит произвольную строку к каноничному номеру.
// Принимаются 09XXXXXXXXX, 639XXXXXXXXX и 9XXXXXXXXX, прочие символы отбрасываются.
func Normalize(raw string) (Number, error) {
	digits := extractDigits(raw)
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "09"):
		return Number(digits[1:]), nil
	case len(digits) == 12 && strings.HasPrefix(digits, "639"):
		return Number(digits[2:]), nil
	case len(digits) == 10 && strings.HasPrefix(digits, "9"):
		return Number(digits), nil
	}
	return "", ErrInvalidPhone
}

// Validate облегченная проверка формы номера. Вызывается до любой отправки.
func Validate(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := Normalize(raw)
	return err == nil
}

// Local 11-значная запись с ведущим нулем: 09XXXXXXXXX.
func (n Number) Local() string {
	return "0" + string(n)
}

// E164 международная запись номера, например +639171234567.
func (n Number) E164() string {
	num, err := phonenumbers.Parse(string(n), "PH")
	if err != nil {
		return "+63" + string(n)
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
