package kbpdf

import (
	"fmt"
	"time"

	"github.com/alnah/go-kbpdf/internal/dateutil"
)

// approval parses an approval date and formats it for the cover.
// An empty value gives zero results. An invalid value is logged and
// left off the cover.
func (e *Engine) approval(value string) (time.Time, string) {
	t, err := dateutil.ParseDate(value, e.now())
	if err != nil {
		e.logger.Warn("ignoring approval date", "value", value, "error", err)
		return time.Time{}, ""
	}
	if t.IsZero() {
		return time.Time{}, ""
	}
	text, err := e.formatDate(t)
	if err != nil {
		return time.Time{}, ""
	}
	return t, text
}

// formatDate prints t with the configured date format.
func (e *Engine) formatDate(t time.Time) (string, error) {
	text, err := dateutil.Format(t, e.cfg.dateFormat)
	if err != nil {
		return "", fmt.Errorf("date format %q: %w", e.cfg.dateFormat, err)
	}
	return text, nil
}
