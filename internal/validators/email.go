package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that a registration email's domain
// actually resolves, through MX records or a plain host lookup. It is
// a liveness probe, not an RFC validation; format checking happens at
// the binding layer.
func IsEmailDomainValid(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
