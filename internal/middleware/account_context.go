package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const accountKey ctxKey = "account"

const AccountHeader = "X-Account-ID"

// AccountContext toma la cuenta del header X-Account-ID y la deja en el contexto.
// Si no viene, el request sigue igual; los handlers deciden si exigen cuenta.
func AccountContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(AccountHeader)); id != "" {
				ctx := context.WithValue(r.Context(), accountKey, id)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetAccount(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(accountKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
