package entity

// Category is a node in the static business-category catalogue.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

// Categories returns the built-in business-category tree.
func Categories() []Category {
	return []Category{
		{
			ID: "technology", Name: "Technology", Icon: "material-symbols:code",
			Subcategories: []Category{
				{ID: "software", Name: "Software Development", Icon: "material-symbols:code"},
				{ID: "hardware", Name: "Hardware", Icon: "material-symbols:computer"},
				{ID: "ai", Name: "Artificial Intelligence", Icon: "material-symbols:smart-toy"},
				{ID: "cybersecurity", Name: "Cybersecurity", Icon: "material-symbols:shield"},
			},
		},
		{
			ID: "import-export", Name: "Import/Export", Icon: "material-symbols:airplane-ticket",
			Subcategories: []Category{
				{ID: "electronics", Name: "Electronics", Icon: "material-symbols:devices"},
				{ID: "textiles", Name: "Textiles", Icon: "material-symbols:checkroom"},
				{ID: "agriculture", Name: "Agriculture", Icon: "material-symbols:agriculture"},
				{ID: "automotive", Name: "Automotive", Icon: "material-symbols:directions-car"},
			},
		},
		{
			ID: "manufacturing", Name: "Manufacturing", Icon: "material-symbols:factory",
			Subcategories: []Category{
				{ID: "machinery", Name: "Machinery", Icon: "material-symbols:build"},
				{ID: "textiles", Name: "Textiles", Icon: "material-symbols:checkroom"},
				{ID: "food", Name: "Food Processing", Icon: "material-symbols:restaurant"},
				{ID: "chemicals", Name: "Chemicals", Icon: "material-symbols:science"},
			},
		},
		{
			ID: "services", Name: "Services", Icon: "material-symbols:engineering",
			Subcategories: []Category{
				{ID: "consulting", Name: "Consulting", Icon: "material-symbols:groups"},
				{ID: "logistics", Name: "Logistics", Icon: "material-symbols:local-shipping"},
				{ID: "finance", Name: "Financial", Icon: "material-symbols:attach-money"},
				{ID: "healthcare", Name: "Healthcare", Icon: "material-symbols:medical-services"},
			},
		},
		{
			ID: "retail", Name: "Retail", Icon: "material-symbols:storefront",
			Subcategories: []Category{
				{ID: "ecommerce", Name: "E-commerce", Icon: "material-symbols:shopping-cart"},
				{ID: "wholesale", Name: "Wholesale", Icon: "material-symbols:inventory"},
				{ID: "fashion", Name: "Fashion", Icon: "material-symbols:checkroom"},
				{ID: "electronics", Name: "Electronics", Icon: "material-symbols:devices"},
			},
		},
	}
}

// FindCategory walks the catalogue, including subcategories, by id.
func FindCategory(id string) (Category, bool) {
	return findCategory(Categories(), id)
}

func findCategory(categories []Category, id string) (Category, bool) {
	for _, category := range categories {
		if category.ID == id {
			return category, true
		}
		if found, ok := findCategory(category.Subcategories, id); ok {
			return found, true
		}
	}
	return Category{}, false
}
