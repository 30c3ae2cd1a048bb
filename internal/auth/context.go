package auth

import "context"

type ctxKey string

const adminKey ctxKey = "adminClaims"

type Claims struct {
	AdminID  uint
	Username string
	JWTID    string
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, adminKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(adminKey).(Claims); ok {
		return v
	}
	return Claims{}
}

// AdminID id вошедшего администратора, 0 если запрос без токена
func AdminID(ctx context.Context) uint {
	return FromContext(ctx).AdminID
}
