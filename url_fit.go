package cjkwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fitURL shortens url to at most limit terminal cells, dropping the scheme
// before truncating with an ellipsis. A limit of zero or less disables it.
func fitURL(url string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if runewidth.StringWidth(trimmed) <= limit {
			return trimmed
		}
		url = trimmed
	}
	return runewidth.Truncate(url, limit, "…")
}
