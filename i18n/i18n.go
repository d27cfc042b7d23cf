package i18n

import (
	"fmt"
	"sync/atomic"
)

// locale is read by request goroutines while a config change may replace it.
var locale atomic.Pointer[string]

func init() {
	en := "en"
	locale.Store(&en)
}

func Locale() string {
	return *locale.Load()
}

func L(key string, args ...any) string {
	msg, exist := translations[Locale()][key]

	if !exist {
		msg = EN[key]
	}

	if len(args) == 0 {
		return msg
	}

	return fmt.Sprintf(msg, args...)
}

func SetLocale(name string) error {
	_, exist := translations[name]

	if !exist {
		return fmt.Errorf("unsupported locale %s", name)
	}

	locale.Store(&name)

	return nil
}

func Locales() []string {
	list := make([]string, 0, len(translations))

	for locale := range translations {
		list = append(list, locale)
	}

	return list
}
