// Package translate formats user-facing messages for the host locale.
package translate

import (
	"fmt"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("m6502: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string. Integers are
// printed as fmt prints them, without locale digit grouping, since they
// are byte counts, addresses and cycle numbers.
func From(key message.Reference, args ...any) string {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64, uintptr:
			wrapped[i] = plain{arg}
		default:
			wrapped[i] = arg
		}
	}
	return printer.Sprintf(key, wrapped...)
}

// plain hands formatting back to fmt.
type plain struct {
	v any
}

func (p plain) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), p.v)
}
