package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

// Tamanhos de página por dispositivo.
const (
	PageSizeMobile  = 10
	PageSizeDesktop = 50
)

// Ordenações aceitas pela vitrine.
const (
	SortRecent    = "recent"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortViews     = "views"
)

// Query descreve uma consulta da vitrine. Conjuntos vazios não filtram.
type Query struct {
	Stores     []string
	Categories []string
	Search     string
	Sort       string
	Page       int
	Mobile     bool
}

// Result é uma página da vitrine.
type Result struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// Apply executa o pipeline da vitrine sobre o catálogo completo:
// pré-filtro de visibilidade, filtros combinados, ordenação e paginação.
func Apply(products []models.Product, q Query) Result {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Published && p.Active {
			visible = append(visible, p)
		}
	}

	filtered := filter(visible, q)
	sortProducts(filtered, q.Sort)

	pageSize := PageSizeDesktop
	if q.Mobile {
		pageSize = PageSizeMobile
	}

	total := len(filtered)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	page := q.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Products:   filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func filter(products []models.Product, q Query) []models.Product {
	out := products
	if len(q.Stores) > 0 {
		out = keep(out, func(p models.Product) bool { return contains(q.Stores, p.Store) })
	}
	if len(q.Categories) > 0 {
		out = keep(out, func(p models.Product) bool { return contains(q.Categories, p.Category) })
	}
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		out = keep(out, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Store), term) ||
				strings.Contains(strings.ToLower(p.Category), term) ||
				strings.Contains(strings.ToLower(p.Description), term)
		})
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts ordena no lugar. Ordenação desconhecida ou vazia cai em "recent".
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortViews:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Views > products[j].Views
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
