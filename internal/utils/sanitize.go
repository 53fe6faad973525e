package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// SanitizeText strips all markup; used for names and titles.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeRichText keeps safe formatting tags in descriptions.
func SanitizeRichText(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
