package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLanguageHasEveryKey(t *testing.T) {
	for _, lang := range Supported() {
		table, ok := tables[lang]
		require.True(t, ok, "missing table for %s", lang)
		for key := range tables[DefaultLanguage] {
			assert.NotEmpty(t, table[key], "%s: missing %q", lang, key)
		}
	}
}

func TestTr(t *testing.T) {
	t.Cleanup(func() { _ = SetLanguage(DefaultLanguage) })

	assert.Equal(t, "Network", Tr("network"))

	require.NoError(t, SetLanguage("de"))
	assert.Equal(t, "de", Language())
	assert.Equal(t, "Netzwerk", Tr("network"))

	require.NoError(t, SetLanguage("ru"))
	assert.Equal(t, "ЦП", Tr("cpu"))

	// Unknown keys come back unchanged
	assert.Equal(t, "no_such_key", Tr("no_such_key"))
}

func TestSetLanguage_Unsupported(t *testing.T) {
	t.Cleanup(func() { _ = SetLanguage(DefaultLanguage) })

	require.NoError(t, SetLanguage("fr"))
	assert.Error(t, SetLanguage("xx"))
	assert.Equal(t, "fr", Language())
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de_DE.UTF-8", "de"},
		{"ru_RU.UTF-8", "ru"},
		{"en_US", "en"},
		{"tr", "tr"},
		{"zh_CN.UTF-8", "cn"},
		{"ja_JP.UTF-8", "en"},
		{"C", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.in))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Setenv("LANG", "it_IT.UTF-8")
	assert.Equal(t, "it", DetectLanguage())

	t.Setenv("LANG", "")
	assert.Equal(t, DefaultLanguage, DetectLanguage())
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, "en", NextLanguage("ru"))
	assert.Equal(t, "cn", NextLanguage("en"))
	assert.Equal(t, "ru", NextLanguage("fr"))
	assert.Equal(t, "ru", NextLanguage("xx"))

	// Cycling visits every language once before returning
	seen := map[string]bool{}
	code := DefaultLanguage
	for range Supported() {
		code = NextLanguage(code)
		seen[code] = true
	}
	assert.Equal(t, DefaultLanguage, code)
	assert.Len(t, seen, len(Supported()))
}

func TestLanguageNames(t *testing.T) {
	t.Cleanup(func() { _ = SetLanguage(DefaultLanguage) })

	require.NoError(t, SetLanguage("de"))
	assert.Equal(t, "Sprache", Tr("language"))
	assert.Equal(t, "Deutsch", Tr("language_name"))
}
