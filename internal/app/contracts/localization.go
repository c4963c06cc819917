package contracts

type Localizer interface {
	Locale() string
	T(key string, args ...interface{}) string
}

type LocalizationService interface {
	Localizer(locale string) Localizer
}
