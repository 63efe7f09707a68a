package store

import "strings"

func cloneProduct(p Product) Product {
	p.Specs = append([]string(nil), p.Specs...)
	return p
}

func cloneProducts(ps []Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneLines(ls []CartLine) []CartLine {
	out := make([]CartLine, len(ls))
	for i, l := range ls {
		l.Product = cloneProduct(l.Product)
		out[i] = l
	}
	return out
}

func cloneOrder(o Order) Order {
	o.Items = cloneLines(o.Items)
	return o
}

func cloneOrders(os []Order) []Order {
	out := make([]Order, len(os))
	for i, o := range os {
		out[i] = cloneOrder(o)
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
