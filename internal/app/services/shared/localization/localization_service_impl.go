package localization

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/pkg/constvars"
	"embed"
	"fmt"
	"math/rand"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed catalog/*.toml
var catalogFS embed.FS

// catalog maps a string key to its variants.
type catalog map[string][]string

type localizationService struct {
	DefaultLocale string
	Locales       []string
	Catalogs      map[string]catalog
	Matcher       language.Matcher
	Pick          func(n int) int
	Log           *zap.Logger
}

func NewLocalizationService(defaultLocale string, logger *zap.Logger) (contracts.LocalizationService, error) {
	if defaultLocale == "" {
		defaultLocale = constvars.DefaultLocale
	}

	catalogs, err := loadCatalogs()
	if err != nil {
		return nil, err
	}
	if _, ok := catalogs[defaultLocale]; !ok {
		return nil, fmt.Errorf("no catalog for default locale %s", defaultLocale)
	}

	// The matcher falls back to the first tag, so the default goes first.
	locales := []string{defaultLocale}
	for locale := range catalogs {
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tags = append(tags, language.MustParse(locale))
	}

	logger.Info("localization catalogs loaded",
		zap.Strings(constvars.LoggingLocaleKey, locales),
	)

	return &localizationService{
		DefaultLocale: defaultLocale,
		Locales:       locales,
		Catalogs:      catalogs,
		Matcher:       language.NewMatcher(tags),
		Pick:          rand.Intn,
		Log:           logger,
	}, nil
}

func loadCatalogs() (map[string]catalog, error) {
	entries, err := catalogFS.ReadDir("catalog")
	if err != nil {
		return nil, fmt.Errorf("read catalogs: %w", err)
	}

	catalogs := make(map[string]catalog, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		locale := strings.TrimSuffix(name, path.Ext(name))

		content, err := catalogFS.ReadFile(path.Join("catalog", name))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}

		var strs catalog
		if _, err := toml.Decode(string(content), &strs); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", name, err)
		}
		catalogs[locale] = strs
	}
	return catalogs, nil
}

// Localizer returns the catalog that best matches locale.
func (s *localizationService) Localizer(locale string) contracts.Localizer {
	matched := s.DefaultLocale
	if tag, err := language.Parse(locale); err == nil {
		_, index, confidence := s.Matcher.Match(tag)
		if confidence != language.No {
			matched = s.Locales[index]
		}
	}

	return &localizer{
		locale:   matched,
		strings:  s.Catalogs[matched],
		fallback: s.Catalogs[s.DefaultLocale],
		pick:     s.Pick,
	}
}

type localizer struct {
	locale   string
	strings  catalog
	fallback catalog
	pick     func(n int) int
}

func (l *localizer) Locale() string {
	return l.locale
}

// T picks one variant of key and formats args into it. Unknown keys come
// back unchanged.
func (l *localizer) T(key string, args ...interface{}) string {
	variants := l.strings[key]
	if len(variants) == 0 {
		variants = l.fallback[key]
	}
	if len(variants) == 0 {
		return key
	}

	value := variants[0]
	if len(variants) > 1 {
		value = variants[l.pick(len(variants))]
	}
	if len(args) == 0 {
		return value
	}
	return fmt.Sprintf(value, args...)
}
