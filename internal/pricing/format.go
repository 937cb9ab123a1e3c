package pricing

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tabela fixa de câmbio: idioma da interface → moeda de exibição e taxa
// aplicada sobre o preço armazenado em BRL. As taxas são congeladas.
type locale struct {
	tag  language.Tag
	unit currency.Unit
	rate float64
}

var locales = map[string]locale{
	"pt": {language.BrazilianPortuguese, currency.BRL, 1},
	"en": {language.AmericanEnglish, currency.USD, 0.2},
	"es": {language.Spanish, currency.EUR, 0.18},
	"fr": {language.French, currency.EUR, 0.18},
	"de": {language.German, currency.EUR, 0.18},
	"zh": {language.SimplifiedChinese, currency.CNY, 1.45},
	"ar": {language.Arabic, currency.SAR, 0.75},
	"hi": {language.Hindi, currency.INR, 16.5},
}

func localeFor(lang string) locale {
	if loc, ok := locales[lang]; ok {
		return loc
	}
	return locales["pt"]
}

// Convert converte um preço em BRL para a moeda do idioma.
// Idioma desconhecido cai em pt (BRL, taxa 1).
func Convert(valueBRL float64, lang string) (float64, currency.Unit) {
	loc := localeFor(lang)
	return valueBRL * loc.rate, loc.unit
}

// Format devolve o preço convertido com símbolo e separadores do idioma.
func Format(valueBRL float64, lang string) string {
	loc := localeFor(lang)
	p := message.NewPrinter(loc.tag)
	return p.Sprintf("%v%v",
		currency.Symbol(loc.unit),
		number.Decimal(valueBRL*loc.rate,
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2)))
}
