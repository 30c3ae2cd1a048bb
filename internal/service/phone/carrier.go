package phone

// Carrier оператор связи, распознаваемый по префиксу номера.
type Carrier string

const (
	Smart Carrier = "smart"
	Globe Carrier = "globe"
	Sun   Carrier = "sun"
)

// DefaultCarrier назначается префиксам, которых нет ни в одной таблице.
// Номера других операторов при этом будут классифицированы неверно.
const DefaultCarrier = Globe

// Таблицы префиксов по плану нумерации. Множества не пересекаются.
var (
	smartPrefixes = map[string]struct{}{
		"0907": {}, "0908": {}, "0909": {}, "0910": {}, "0912": {}, "0918": {}, "0919": {},
		"0920": {}, "0921": {}, "0928": {}, "0929": {}, "0939": {}, "0998": {}, "0999": {},
		"0947": {}, "0949": {}, "0813": {}, "0994": {}, "0992": {}, "0993": {},
	}
	globePrefixes = map[string]struct{}{
		"0905": {}, "0906": {}, "0915": {}, "0916": {}, "0917": {}, "0926": {}, "0927": {},
		"0935": {}, "0936": {}, "0937": {}, "0945": {}, "0953": {}, "0954": {}, "0955": {},
		"0956": {}, "0965": {}, "0966": {}, "0967": {}, "0975": {}, "0976": {}, "0977": {},
		"0995": {}, "0996": {}, "0997": {},
	}
	sunPrefixes = map[string]struct{}{
		"0922": {}, "0923": {}, "0924": {}, "0925": {}, "0931": {}, "0932": {}, "0933": {},
		"0934": {}, "0940": {}, "0941": {}, "0942": {}, "0943": {}, "0944": {}, "0973": {},
		"0974": {},
	}
)

// Classify определяет оператора по первым четырем цифрам 11-значной записи.
// false возвращается только для номеров неподходящей формы; неизвестный префикс
// дает DefaultCarrier.
func Classify(raw string) (Carrier, bool) {
	n, err := Normalize(raw)
	if err != nil {
		return "", false
	}
	c, _ := carrierByPrefix(n.Local()[:4])
	return c, true
}

// carrierByPrefix второй результат false, если префикс не найден и выбран DefaultCarrier.
func carrierByPrefix(prefix string) (Carrier, bool) {
	if _, ok := smartPrefixes[prefix]; ok {
		return Smart, true
	}
	if _, ok := globePrefixes[prefix]; ok {
		return Globe, true
	}
	if _, ok := sunPrefixes[prefix]; ok {
		return Sun, true
	}
	return DefaultCarrier, false
}

// KnownPrefix сообщает, есть ли префикс номера в таблицах. Используется для логов.
func KnownPrefix(raw string) bool {
	n, err := Normalize(raw)
	if err != nil {
		return false
	}
	_, ok := carrierByPrefix(n.Local()[:4])
	return ok
}
