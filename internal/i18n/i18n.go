// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n holds the UI translation bundles (Portuguese and English)
// and resolves the active language for a request: persisted cookie first,
// then Accept-Language negotiation, then the configured default.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// CookieName is the cookie that persists the language preference.
const CookieName = "ff_lang"

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// supported lists the languages the UI ships translations for, in
// matcher preference order.
var supported = []language.Tag{
	language.English,
	language.Portuguese,
}

// Bundle holds the parsed translation tables for every supported language.
type Bundle struct {
	messages    map[string]map[string]string // lang -> dotted key -> text
	defaultLang string
	matcher     language.Matcher
}

// New parses the embedded locale files. defaultLang must be a supported
// language code ("en" or "pt").
func New(defaultLang string) (*Bundle, error) {
	b := &Bundle{
		messages:    make(map[string]map[string]string),
		defaultLang: defaultLang,
		matcher:     language.NewMatcher(supported),
	}

	for _, lang := range []string{"en", "pt"} {
		raw, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}

		var nested map[string]any
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		b.messages[lang] = flat
	}

	if !b.Supported(defaultLang) {
		return nil, fmt.Errorf("unsupported default language %q", defaultLang)
	}

	return b, nil
}

// flatten converts nested JSON objects into dotted keys ("nav.home").
func flatten(prefix string, nested map[string]any, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// Supported reports whether lang is a language the UI ships.
func (b *Bundle) Supported(lang string) bool {
	_, ok := b.messages[lang]
	return ok
}

// T looks up a dotted key in the given language's table. Missing keys echo
// the key itself so untranslated strings are visible rather than blank.
func (b *Bundle) T(lang, key string) string {
	table, ok := b.messages[lang]
	if !ok {
		table = b.messages[b.defaultLang]
	}
	if text, ok := table[key]; ok {
		return text
	}
	slog.Warn("translation key not found", "lang", lang, "key", key)
	return key
}

// Resolve determines the active language for a request: the persisted
// cookie wins, then Accept-Language negotiation, then the default.
func (b *Bundle) Resolve(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && b.Supported(cookie.Value) {
		return cookie.Value
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			matched, _, _ := b.matcher.Match(tags...)
			base, _ := matched.Base()
			if b.Supported(base.String()) {
				return base.String()
			}
		}
	}

	return b.defaultLang
}

// SetLanguage persists a language preference. Unsupported values are
// ignored so a crafted request cannot store junk.
func (b *Bundle) SetLanguage(w http.ResponseWriter, lang string) {
	if !b.Supported(lang) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
