package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// AllowedOrigins is the origin allowlist shared by the CORS layer and the
// websocket upgrader. It always contains the local dashboard origins (the
// served client on 5000 and the Vite dev server on 5173) and picks up extra
// origins from CLIENT_URL and the comma-separated ALLOWED_ORIGINS.
var AllowedOrigins = resolveAllowedOrigins()

func resolveAllowedOrigins() []string {
	origins := []string{
		"http://localhost:5000",
		"http://localhost:5173",
	}

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
