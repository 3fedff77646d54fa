package models

import (
	"fmt"
	"time"
)

// ProductSection is the closed set of store sections a product belongs to.
type ProductSection string

const (
	SectionClothing    ProductSection = "clothing"
	SectionShoes       ProductSection = "shoes"
	SectionAccessories ProductSection = "accessories"
)

// ParseProductSection converts a stored or transmitted section string.
func ParseProductSection(s string) (ProductSection, error) {
	switch ProductSection(s) {
	case SectionClothing:
		return SectionClothing, nil
	case SectionShoes:
		return SectionShoes, nil
	case SectionAccessories:
		return SectionAccessories, nil
	}
	return "", fmt.Errorf("unknown product section %q", s)
}

// Product is a sellable item. Barcode is unique. Prices are integer cents to
// avoid floating-point money. ExpirationDate is nil for non-perishables.
type Product struct {
	ID             string
	Barcode        string
	Description    string
	PriceCents     int64
	Section        ProductSection
	Inventory      int
	ExpirationDate *time.Time
	CreatedAt      time.Time
}

// ProductFilter narrows and paginates product listings. Zero values mean
// "no filter".
type ProductFilter struct {
	Section       ProductSection
	MaxPriceCents int64
	MinInventory  int
	Limit         int
	Offset        int
}
