package classify

import (
	"strings"

	"smartcaller_backend/internal/leads/transport"
)

// DetectIntent derives the lead's intent from the acquisition source, the
// form name and the free-text message. Demo keywords take priority over
// resource keywords; anything else is "other".
func DetectIntent(source, formName, message string) string {
	text := strings.ToLower(source + " " + formName + " " + message)

	for _, kw := range demoKeywords {
		if strings.Contains(text, kw) {
			return transport.IntentDemo
		}
	}
	for _, kw := range resourceKeywords {
		if strings.Contains(text, kw) {
			return transport.IntentResource
		}
	}
	return transport.IntentOther
}
