package catalog

import (
	"strings"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

// MissingRequired devolve os rótulos dos campos obrigatórios da categoria
// que estão ausentes ou em branco no mapa de características.
// Categoria desconhecida não tem contrato de campos e passa sem exigências.
func MissingRequired(categoryID string, characteristics map[string]string) []string {
	cat, ok := models.CategoryByID(categoryID)
	if !ok {
		return nil
	}

	var missing []string
	for _, f := range cat.Fields {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(characteristics[f.Name]) == "" {
			missing = append(missing, f.Label)
		}
	}
	return missing
}
