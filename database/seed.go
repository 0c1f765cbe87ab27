package database

import (
	"context"
	"fmt"
	"time"

	"localspot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var seedCategories = []models.Category{
	{
		ID:            "food",
		Name:          "Food & Dining",
		Description:   "Restaurants, cafes, and food delivery services",
		Icon:          "🍽️",
		Subcategories: []string{"Restaurants", "Cafes", "Bakeries", "Food Delivery"},
	},
	{
		ID:            "housing",
		Name:          "Housing",
		Description:   "Real estate and housing services",
		Icon:          "🏠",
		Subcategories: []string{"Rentals", "Real Estate", "Home Services"},
	},
	{
		ID:            "stationery",
		Name:          "Stationery",
		Description:   "School and office supplies",
		Icon:          "📝",
		Subcategories: []string{"School Supplies", "Office Supplies", "Printing"},
	},
	{
		ID:            "fashion",
		Name:          "Fashion",
		Description:   "Clothing and accessories",
		Icon:          "🛍️",
		Subcategories: []string{"Clothing", "Accessories", "Shoes"},
	},
	{
		ID:            "tech-repair",
		Name:          "Tech Repair",
		Description:   "Mobile and computer repair services",
		Icon:          "🔧",
		Subcategories: []string{"Mobile Repair", "Computer Repair", "Electronics"},
	},
}

var seedProviders = []models.Provider{
	{
		Name:           "John's Restaurant",
		Description:    "Local restaurant serving Nigerian cuisine",
		CategoryID:     "food",
		Subcategory:    "Restaurants",
		Phone:          "+234 801 234 5678",
		Whatsapp:       "+234 801 234 5678",
		Email:          "info@johnsrestaurant.com",
		Address:        "123 Main Street, Anyigba",
		OperatingHours: "8:00 AM - 10:00 PM",
		Services:       []string{"Food Delivery", "Dine In", "Takeaway"},
		Prices:         []string{"1000-2000", "2000-3000"},
	},
	{
		Name:           "TechFix Hub",
		Description:    "Professional mobile and computer repair services",
		CategoryID:     "tech-repair",
		Subcategory:    "Mobile Repair",
		Phone:          "+234 802 345 6789",
		Whatsapp:       "+234 802 345 6789",
		Email:          "support@techfixhub.com",
		Address:        "456 Tech Street, Anyigba",
		OperatingHours: "9:00 AM - 6:00 PM",
		Services:       []string{"Mobile Repair", "Computer Repair", "Data Recovery"},
		Prices:         []string{"500-1000", "1000-2000"},
	},
}

// SeedIfEmpty inserts the launch data set when the database has no categories
// yet. Safe to call on every startup.
func SeedIfEmpty() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db := Database()
	count, err := db.Collection("categories").CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	catByID := make(map[string]models.Category, len(seedCategories))
	for _, cat := range seedCategories {
		cat.CreatedAt = now
		catByID[cat.ID] = cat
		if _, err := db.Collection("categories").InsertOne(ctx, cat); err != nil {
			return fmt.Errorf("seed: failed to insert category %s: %w", cat.ID, err)
		}
	}

	for _, prov := range seedProviders {
		prov.ID = uuid.NewString()
		if cat, ok := catByID[prov.CategoryID]; ok {
			prov.Category = &cat
		}
		prov.IsActive = true
		prov.RatingAverage = 4.5
		prov.RatingCount = 1
		prov.CreatedAt = now
		prov.NormalizePrices()
		if _, err := db.Collection("providers").InsertOne(ctx, prov); err != nil {
			return fmt.Errorf("seed: failed to insert provider %s: %w", prov.Name, err)
		}
	}
	return nil
}
