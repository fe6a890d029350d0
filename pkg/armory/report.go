package armory

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/randalmurphal/armory/pkg/armory/prototype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Describe returns the report line for a weapon type registered under name:
//
//	Diamond weapons are godlike you have 0.5% chance of finding one.
//
// The name is lowercased with its first letter in upper case, so
// "black STEEL" reads "Black steel".
func Describe(name string, w *prototype.WeaponType) string {
	return fmt.Sprintf("%s weapons are %s you have %s%% chance of finding one.",
		capitalize(name),
		w.Rarity,
		strconv.FormatFloat(w.Percent(), 'f', -1, 64),
	)
}

// Report writes one Describe line per registered weapon type, in
// registration order.
func (a *Armory) Report(w io.Writer) error {
	for name, wt := range a.All() {
		if _, err := fmt.Fprintln(w, Describe(name, wt)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

func capitalize(s string) string {
	s = cases.Lower(language.English).String(s)
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.English).String(s[:size]) + s[size:]
}
