package cart

import "testing"

func TestAddMesclaPorProduto(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "p1", Name: "Tênis", Price: 100, Store: "Shopee", Quantity: 1})
	c.Add(Item{ProductID: "p1", Name: "Tênis", Price: 100, Store: "Shopee", Quantity: 2})

	if len(c.Items) != 1 {
		t.Fatalf("itens = %d, esperado 1 (mescla por produto)", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Errorf("quantidade = %d, esperado 3", c.Items[0].Quantity)
	}
}

func TestUpdateQuantityZeroRemove(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "p1", Quantity: 2})
	c.UpdateQuantity("p1", 0)
	if len(c.Items) != 0 {
		t.Errorf("itens = %d, quantidade 0 remove o item", len(c.Items))
	}

	c.Add(Item{ProductID: "p2", Quantity: 1})
	c.UpdateQuantity("p2", -5)
	if len(c.Items) != 0 {
		t.Errorf("itens = %d, quantidade negativa remove o item", len(c.Items))
	}
}

func TestRemoveProdutoAusente(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "p1", Quantity: 1})
	c.Remove("nao-existe")
	if len(c.Items) != 1 {
		t.Errorf("itens = %d, remoção de ausente é no-op", len(c.Items))
	}
}

func TestTotalUsaPrecoDoMomentoDaAdicao(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "p1", Price: 50, Quantity: 2})
	c.Add(Item{ProductID: "p2", Price: 10, Quantity: 1})

	if got := c.Total(); got != 110 {
		t.Errorf("total = %v, esperado 110", got)
	}
	if got := c.Count(); got != 3 {
		t.Errorf("count = %v, esperado 3", got)
	}
}

func TestClearStoreRemoveSomenteDaLoja(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "p1", Store: "Shopee", Quantity: 1})
	c.Add(Item{ProductID: "p2", Store: "Amazon", Quantity: 1})
	c.Add(Item{ProductID: "p3", Store: "Shopee", Quantity: 1})

	c.ClearStore("Shopee")
	if len(c.Items) != 1 || c.Items[0].ProductID != "p2" {
		t.Errorf("itens = %v, esperado só o item da Amazon", c.Items)
	}
}

func TestGroupByStoreOrdemDeInsercao(t *testing.T) {
	c := &Cart{}
	c.Add(Item{ProductID: "p1", Store: "Shopee", Price: 10, Quantity: 1})
	c.Add(Item{ProductID: "p2", Store: "Amazon", Price: 20, Quantity: 1})
	c.Add(Item{ProductID: "p3", Store: "Shopee", Price: 5, Quantity: 2})

	groups := c.GroupByStore()
	if len(groups) != 2 {
		t.Fatalf("grupos = %d, esperado 2", len(groups))
	}
	if groups[0].Store != "Shopee" || groups[1].Store != "Amazon" {
		t.Errorf("ordem = %s, %s; esperado Shopee, Amazon", groups[0].Store, groups[1].Store)
	}
	if groups[0].Subtotal != 20 {
		t.Errorf("subtotal Shopee = %v, esperado 20", groups[0].Subtotal)
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("itens Shopee = %d, esperado 2", len(groups[0].Items))
	}
}
