package services

import (
	"strconv"
	"strings"

	"percetakan-backend/src/models"
)

// Pricing resolver: every lookup is total. A reference that cannot be found
// contributes zero, never an error, so broken historical data still gets a
// price (possibly 0) and never crashes a render.

// PriceOrderItem prices one order line:
// (multiplier x tier price + finishing) x qty.
// Multiplier is length x width for per-area categories, 1 otherwise.
func PriceOrderItem(item models.OrderItem, customerName string,
	products []models.Product, categories []models.Category,
	customers []models.Customer, finishings []models.Finishing) float64 {

	level := resolveCustomerLevel(customerName, customers)

	product := findProduct(item.ProductID, products)
	if product == nil {
		return 0
	}
	unitPrice := product.TierPrice(level)

	multiplier := 1.0
	if isAreaCategory(product.CategoryName, categories) {
		multiplier = parseDimension(item.Length) * parseDimension(item.Width)
	}

	surcharge := finishingSurcharge(item.FinishingName, finishings)

	return (multiplier*unitPrice + surcharge) * item.Qty
}

// resolveCustomerLevel finds the customer's tier; unknown names fall back to
// End Customer.
func resolveCustomerLevel(name string, customers []models.Customer) models.CustomerLevel {
	for i := range customers {
		if customers[i].Name == name {
			return customers[i].Level
		}
	}
	return models.LevelEndCustomer
}

func findProduct(id uint, products []models.Product) *models.Product {
	if id == 0 {
		return nil
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// isAreaCategory joins the category by the product's CategoryName (string
// match, not an id). An unknown category is treated as not per-area.
func isAreaCategory(categoryName string, categories []models.Category) bool {
	for i := range categories {
		if categories[i].Name == categoryName {
			return categories[i].UnitType == models.UnitTypeArea
		}
	}
	return false
}

func finishingSurcharge(name string, finishings []models.Finishing) float64 {
	for i := range finishings {
		if finishings[i].Name == name {
			return finishings[i].Surcharge
		}
	}
	return 0
}

// parseDimension turns a decimal string into a float; blank or non-numeric
// input yields 0.
func parseDimension(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
