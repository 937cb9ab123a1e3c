package catalog

import "testing"

func TestMissingRequiredModa(t *testing.T) {
	missing := MissingRequired("fashion", map[string]string{
		"brand": "Shein",
		"size":  "M",
		"color": "Azul",
	})
	// Falta "material" e "gender".
	if len(missing) != 2 {
		t.Fatalf("faltando = %v, esperado 2 campos", missing)
	}
}

func TestMissingRequiredCompleta(t *testing.T) {
	missing := MissingRequired("fashion", map[string]string{
		"brand":    "Shein",
		"size":     "M",
		"color":    "Azul",
		"material": "Algodão",
		"gender":   "Feminino",
	})
	if len(missing) != 0 {
		t.Errorf("faltando = %v, esperado nenhum", missing)
	}
}

func TestMissingRequiredBrancoContaComoAusente(t *testing.T) {
	missing := MissingRequired("fashion", map[string]string{
		"brand":    "   ",
		"size":     "M",
		"color":    "Azul",
		"material": "Algodão",
		"gender":   "Feminino",
	})
	if len(missing) != 1 || missing[0] != "Marca" {
		t.Errorf("faltando = %v, esperado apenas Marca", missing)
	}
}

func TestMissingRequiredCategoriaDesconhecidaPassa(t *testing.T) {
	if missing := MissingRequired("categoria-inexistente", nil); missing != nil {
		t.Errorf("faltando = %v, categoria desconhecida não exige campos", missing)
	}
}
