package cart

// Item é um produto dentro do carrinho. O preço é o vigente no momento da
// adição; alterações posteriores no catálogo não reprecificam o carrinho.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Store     string  `json:"store"`
	URL       string  `json:"url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart é a lista de itens de uma sessão.
type Cart struct {
	Items []Item `json:"items"`
}

// Add insere o item ou, se o produto já estiver no carrinho,
// soma a quantidade ao item existente.
func (c *Cart) Add(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity troca a quantidade do produto.
// Quantidade zero ou negativa remove o item.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove tira o produto do carrinho. Produto ausente é um no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// ClearStore remove todos os itens de uma loja, para o fechamento de
// compra loja a loja.
func (c *Cart) ClearStore(store string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.Store != store {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// Total soma preço × quantidade de todos os itens.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count soma as quantidades de todos os itens.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// StoreGroup é o bloco de itens de uma loja para o checkout por loja.
type StoreGroup struct {
	Store    string  `json:"store"`
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// GroupByStore agrupa os itens por loja preservando a ordem de inserção:
// as lojas aparecem na ordem do primeiro item de cada uma.
func (c *Cart) GroupByStore() []StoreGroup {
	index := make(map[string]int)
	var groups []StoreGroup
	for _, it := range c.Items {
		i, ok := index[it.Store]
		if !ok {
			i = len(groups)
			index[it.Store] = i
			groups = append(groups, StoreGroup{Store: it.Store})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Subtotal += it.Price * float64(it.Quantity)
	}
	return groups
}
