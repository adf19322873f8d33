package ui

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeExt    = ".json"
)

// loadLocales registers every locales/active.<lang>.json file of fsys and
// returns the bundle with the language codes found. Broken files are logged
// and skipped.
func loadLocales(fsys fs.FS) (*i18n.Bundle, []string, error) {
	log := slog.With(config.LogKeyComponent, config.CompI18n)

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := fs.ReadDir(fsys, localeDir)
	if err != nil {
		return bundle, nil, err
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		code, ok := strings.CutPrefix(name, localePrefix)
		if ok {
			code, ok = strings.CutSuffix(code, localeExt)
		}
		if !ok {
			log.Debug(config.MsgLocaleSkip, config.LogKeyFile, name)
			continue
		}
		if code == "" {
			log.Warn(config.MsgLocaleBadName, config.LogKeyFile, name)
			continue
		}

		langs = append(langs, code)
		if _, err := bundle.LoadMessageFileFS(fsys, path.Join(localeDir, name)); err != nil {
			log.Error(config.ErrLocaleLoad, config.LogKeyFile, name, config.LogKeyError, err)
			continue
		}
		log.Debug(config.MsgLocaleLoaded, config.LogKeyLang, code)
	}
	return bundle, langs, nil
}

// SetupI18n loads the embedded translations and selects the configured language.
func (app *ClockApp) SetupI18n() {
	bundle, langs, err := loadLocales(localeFS)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err)
		return
	}

	app.I18nBundle = bundle
	app.SupportedLanguages = langs
	app.UpdateLocalizer()
}

// UpdateLocalizer points the translator at Settings.Language, English first as fallback.
func (app *ClockApp) UpdateLocalizer() {
	lang := app.Settings.Language
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang, config.DefaultLanguage)
}

// GetMsg translates key; an unknown key or a missing localizer yields the key itself.
func (app *ClockApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err)
		return key
	}
	return msg
}
