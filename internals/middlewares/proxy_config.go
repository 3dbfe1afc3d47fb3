package middlewares

import "github.com/gofiber/fiber/v2"

// TrustProxies: X-Forwarded-For hanya dipercaya dari CIDR di TRUSTED_PROXIES.
// Daftar kosong berarti c.IP() selalu alamat remote asli.
func TrustProxies(cfg *fiber.Config, cidrs []string) {
	cfg.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = cidrs
}
