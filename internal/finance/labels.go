package finance

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Locale selects the display language of chart labels.
type Locale string

const (
	LocaleEN   Locale = "en"
	LocalePTBR Locale = "pt-BR"
)

type labelSet struct {
	months     [12]string
	revenue    string
	expense    string
	byCategory string
}

var labelSets = map[Locale]labelSet{
	LocaleEN: {
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		revenue:    "Revenue",
		expense:    "Expense",
		byCategory: "Expenses by Category",
	},
	LocalePTBR: {
		months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		revenue:    "Receitas",
		expense:    "Despesas",
		byCategory: "Despesas por Categoria",
	},
}

var localeNames = map[string]Locale{
	"en":    LocaleEN,
	"pt-BR": LocalePTBR,
	"pt_BR": LocalePTBR,
	"pt-br": LocalePTBR,
	"pt":    LocalePTBR,
}

// LookupLocale reports the Locale named s and whether s is supported.
func LookupLocale(s string) (Locale, bool) {
	l, ok := localeNames[s]
	return l, ok
}

// ParseLocale maps a locale name to a supported Locale, defaulting to English.
func ParseLocale(s string) Locale {
	if l, ok := LookupLocale(s); ok {
		return l
	}
	return LocaleEN
}

func (l labelSet) month(t time.Time) string {
	return fmt.Sprintf("%s %d", l.months[t.Month()-1], t.Year())
}

// fallbackColor derives a stable hex color from a category name.
func fallbackColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprintf("#%06x", h.Sum32()&0xffffff)
}
