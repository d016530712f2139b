package config

import "net/http"

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig lists the write routes open to anonymous callers,
// keyed by "METHOD route-template".
var EndpointSecurityConfig = map[string]SecurityLevel{
	"POST /users/register":     SecurityPublic,
	"POST /users/token":        SecurityPublic,
	"POST /reservations/quote": SecurityPublic,
}

// GetSecurityLevel returns the level for a route. Reads are public; any
// other method not listed requires an access token.
func GetSecurityLevel(method, template string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method+" "+template]; exists {
		return level
	}
	if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
		return SecurityPublic
	}
	return SecurityAccess
}
