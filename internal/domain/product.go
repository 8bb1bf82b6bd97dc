package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics   Category = "Electronics"
	CategoryClothing      Category = "Clothing"
	CategoryBooks         Category = "Books"
	CategoryHomeAndGarden Category = "Home & Garden"
	CategorySports        Category = "Sports"
	CategoryBeauty        Category = "Beauty"
	CategoryAutomotive    Category = "Automotive"
	CategoryFoodBeverage  Category = "Food & Beverage"
)

var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHomeAndGarden,
	CategorySports,
	CategoryBeauty,
	CategoryAutomotive,
	CategoryFoodBeverage,
}

func (c Category) IsValid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	SKU         string    `json:"sku"`
	Stock       int       `json:"stock"`
	Brand       string    `json:"brand,omitempty"`
	Tags        []string  `json:"tags"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfitMargin é calculada em percentual e nunca persistida
func (p Product) ProfitMargin() float64 {
	price := decimal.NewFromFloat(p.Price)
	if price.IsZero() {
		return 0
	}

	margin := price.Sub(decimal.NewFromFloat(p.Cost)).
		Div(price).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	return margin.InexactFloat64()
}

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		ProfitMargin float64 `json:"profitMargin"`
	}{
		alias:        alias(p),
		ProfitMargin: p.ProfitMargin(),
	})
}
