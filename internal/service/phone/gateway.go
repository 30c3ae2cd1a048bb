package phone

import (
	"errors"
	"fmt"
)

var ErrUnknownCarrier = errors.New("unknown carrier")

type gatewayDomains struct {
	primary   string
	alternate string
}

// Шлюзы email-to-SMS. У Sun запасного домена нет.
var gateways = map[Carrier]gatewayDomains{
	Smart: {primary: "sms.smart.com.ph", alternate: "txt.smart.com.ph"},
	Globe: {primary: "sms.globe.com.ph", alternate: "myglobe.sms.ph"},
	Sun:   {primary: "sun.com.ph"},
}

// Route адреса шлюза для конкретного номера. Alternate пуст, если запасного нет.
type Route struct {
	Carrier   Carrier
	Primary   string
	Alternate string
}

// Addresses адреса в порядке попыток.
func (r Route) Addresses() []string {
	if r.Alternate == "" {
		return []string{r.Primary}
	}
	return []string{r.Primary, r.Alternate}
}

func Resolve(n Number, c Carrier) (Route, error) {
	d, ok := gateways[c]
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownCarrier, string(c))
	}
	route := Route{
		Carrier: c,
		Primary: string(n) + "@" + d.primary,
	}
	if d.alternate != "" {
		route.Alternate = string(n) + "@" + d.alternate
	}
	return route, nil
}
