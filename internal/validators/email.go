package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// IsEmailDomainValid checa o e-mail do dono no cadastro da conta única:
// formato mínimo + domínio que realmente recebe e-mail (MX, com fallback
// para A/AAAA). Lookup com timeout curto para não travar o registro.
func IsEmailDomainValid(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
