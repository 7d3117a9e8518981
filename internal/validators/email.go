package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// IsEmailDomainValid reports whether the part after the last "@" can
// receive mail: an MX record, or at least a resolvable host.
func IsEmailDomainValid(email string) bool {
	host := email[strings.LastIndex(email, "@")+1:]
	if host == "" || host == email {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, host); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	return err == nil && len(addrs) > 0
}
