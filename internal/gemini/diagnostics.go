package gemini

import (
	"strings"

	"github.com/muhammadolammi/resumeparser/internal/logger"
)

const credentialHelp = `Your API key is being read but Google says it's invalid.

SOLUTIONS:
1. Enable Generative Language API:
   - Go to: https://console.cloud.google.com/apis/library
   - Search: 'Generative Language API'
   - Click 'Enable'

2. Check API key restrictions:
   - Go to: https://console.cloud.google.com/apis/credentials
   - Edit your API key
   - Make sure 'Generative Language API' is allowed

3. Regenerate API key:
   - Go to: https://aistudio.google.com/app/apikey
   - Create new key and update .env file`

// isCredentialError reports whether err looks like a rejected API key.
func isCredentialError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "API key") || strings.Contains(msg, "API_KEY")
}

func (c *Client) logCredentialHelp() {
	logger.Error().
		Str("key", maskKey(c.apiKey)).
		Str("help", credentialHelp).
		Msg("GEMINI API KEY ERROR - ACTION REQUIRED")
}

// maskKey keeps just enough of the key to tell keys apart.
func maskKey(key string) string {
	if len(key) <= 6 {
		return "***"
	}
	return key[:6] + "..."
}

// excerpt returns at most n runes of s.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
