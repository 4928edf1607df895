// Package i18n holds the localized strings shown in the menu and chart.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when the environment names no supported language.
const DefaultLanguage = "en"

// supported lists the language codes in menu order.
var supported = []string{"ru", "en", "cn", "de", "it", "es", "tr", "fr"}

//go:embed locales.yaml
var localesYAML []byte

var (
	mu      sync.RWMutex
	tables  map[string]map[string]string
	current = DefaultLanguage
)

func init() {
	if err := yaml.Unmarshal(localesYAML, &tables); err != nil {
		panic(fmt.Sprintf("i18n: invalid embedded locales: %v", err))
	}
}

// Supported returns the supported language codes.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	for _, s := range supported {
		if s == code {
			return true
		}
	}
	return false
}

// Tr returns the string for key in the current language, falling back to
// English and then to the key itself.
func Tr(key string) string {
	mu.RLock()
	lang := current
	mu.RUnlock()

	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// SetLanguage switches the current language.
func SetLanguage(code string) error {
	if !IsSupported(code) {
		return fmt.Errorf("unsupported language %q", code)
	}
	mu.Lock()
	defer mu.Unlock()
	current = code
	return nil
}

// Language returns the current language code.
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// NextLanguage returns the language after code in menu order, wrapping
// around. An unsupported code yields the first language.
func NextLanguage(code string) string {
	for i, s := range supported {
		if s == code {
			return supported[(i+1)%len(supported)]
		}
	}
	return supported[0]
}

// DetectLanguage derives the language from $LANG, for example "de" from
// "de_DE.UTF-8". Unsupported or missing values yield DefaultLanguage.
func DetectLanguage() string {
	return ParseLocale(os.Getenv("LANG"))
}

// ParseLocale extracts a supported language code from a POSIX locale name.
func ParseLocale(locale string) string {
	code := strings.SplitN(locale, ".", 2)[0]
	code = strings.ToLower(strings.SplitN(code, "_", 2)[0])
	if code == "zh" {
		code = "cn"
	}
	if IsSupported(code) {
		return code
	}
	return DefaultLanguage
}
