package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"raidbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             zerolog.Logger
}

// NewTranslator builds a Translator backed by the embedded active.*.toml
// files, falling back to defaultLocale (e.g. "fr").
func NewTranslator(defaultLocale string, log zerolog.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid default locale %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalogs: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f.Name()); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", f.Name(), err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log.With().Str("component", "i18n").Logger(),
	}, nil
}

func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Warn().Err(err).Str("key", key).Strs("locales", languages).Msg("i18n: localize failed")
		return key
	}
	return msg
}
