// Package catalog holds the read-only restaurant catalog referenced by orders:
// restaurants and the products they sell.
//
// Catalog data is owned by another bounded context. The order service reads it to check
// that an order's products exist, are available and belong to the order's restaurant,
// and never mutates it.
package catalog
