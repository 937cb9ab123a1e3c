package pricing

import (
	"math"
	"strings"
	"testing"

	"golang.org/x/text/currency"
)

func TestConvertTabelaFixa(t *testing.T) {
	cases := []struct {
		lang string
		want float64
		unit currency.Unit
	}{
		{"pt", 100, currency.BRL},
		{"en", 20, currency.USD},
		{"es", 18, currency.EUR},
		{"fr", 18, currency.EUR},
		{"de", 18, currency.EUR},
		{"zh", 145, currency.CNY},
		{"ar", 75, currency.SAR},
		{"hi", 1650, currency.INR},
	}
	for _, tc := range cases {
		got, unit := Convert(100, tc.lang)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Convert(100, %q) = %v, esperado %v", tc.lang, got, tc.want)
		}
		if unit != tc.unit {
			t.Errorf("Convert(100, %q) moeda = %v, esperado %v", tc.lang, unit, tc.unit)
		}
	}
}

func TestConvertIdiomaDesconhecidoCaiEmPt(t *testing.T) {
	got, unit := Convert(50, "ru")
	if got != 50 || unit != currency.BRL {
		t.Errorf("Convert(50, ru) = %v %v, esperado 50 BRL", got, unit)
	}
}

func TestFormatContemValorConvertido(t *testing.T) {
	out := Format(100, "en")
	if !strings.Contains(out, "20") {
		t.Errorf("Format(100, en) = %q, esperado conter 20", out)
	}
	out = Format(100, "pt")
	if !strings.Contains(out, "100") {
		t.Errorf("Format(100, pt) = %q, esperado conter 100", out)
	}
}
