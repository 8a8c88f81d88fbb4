// Package translate renders user-facing messages in the locale of the user.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// DefaultLocale is used when the system reports no locale preference.
const DefaultLocale = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter(Locales()...)
}

// Locales returns the preferred locales of the current user.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.Debugf("oneaddr: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	return
}

// NewPrinter returns a message printer for the best match of locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
