package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Blacklist отклоняет запросы с 403, если Host (без порта) или один из адресов
// X-Forwarded-For находится в списке. Пустой список ничего не блокирует.
func Blacklist(hosts []string, logger *zap.Logger) func(http.Handler) http.Handler {
	blocked := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		blocked[strings.ToLower(h)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if len(blocked) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}

			candidates := []string{host}
			for _, fwd := range strings.Split(r.Header.Get("X-Forwarded-For"), ",") {
				if fwd = strings.TrimSpace(fwd); fwd != "" {
					candidates = append(candidates, fwd)
				}
			}

			for _, c := range candidates {
				if _, ok := blocked[strings.ToLower(c)]; ok {
					ip := clientIP(r)
					logger.Warn("blacklisted client", zap.String("ip", ip), zap.String("host", host), zap.String("match", c))
					writeDetail(w, http.StatusForbidden, fmt.Sprintf("client %s %s is in blacklist", ip, host))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return h
	}
	return r.RemoteAddr
}
