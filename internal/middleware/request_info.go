package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"yorum-servisi/internal/domain"
)

const requestInfoContextKey = "request_info"

// RequestInfo captures the client IP and User-Agent for the abuse
// forensics fields. Proxy headers win over the socket address so the
// real address survives Cloudflare and similar fronts.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
				ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(requestInfoContextKey, domain.RequestInfo{
			IPAddress: ip,
			UserAgent: c.Get("User-Agent"),
		})

		return c.Next()
	}
}

func GetRequestInfo(c *fiber.Ctx) domain.RequestInfo {
	info, ok := c.Locals(requestInfoContextKey).(domain.RequestInfo)
	if !ok {
		return domain.RequestInfo{}
	}
	return info
}
