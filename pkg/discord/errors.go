package discord

import (
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/ports/output"
)

const genericErrorKey = "errors.generic"

// ErrorKey returns the translation key for err: "errors.<code>" for domain
// errors, errors.generic otherwise.
func ErrorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "errors." + code
	}
	return genericErrorKey
}

// ErrorData returns the template data of err's message. Conflict windows are
// formatted in loc.
func ErrorData(err error, loc *time.Location) map[string]any {
	ce, ok := domain.AsConflict(err)
	if !ok {
		return nil
	}
	data := ce.Metadata()
	data["WindowStart"] = FormatRaidDateTime(ce.WindowStart, loc)
	data["WindowEnd"] = FormatRaidDateTime(ce.WindowEnd, loc)
	return data
}

// DomainErrorMessage resolves err to a user-facing message in locale.
func DomainErrorMessage(t output.T, locale string, err error, loc *time.Location) string {
	if err == nil {
		return ""
	}
	return t.T(locale, ErrorKey(err), ErrorData(err, loc))
}
