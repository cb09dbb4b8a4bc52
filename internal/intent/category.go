package intent

import (
	"strings"

	"fjacquet/quicklog/internal/models"
)

// defaultCategories is searched in order; the first category with a hit wins,
// so "gas bill" is Transport, not Bills.
var defaultCategories = []models.CategoryConfig{
	{Name: models.CategoryFood, Keywords: []string{"lunch", "dinner", "breakfast", "coffee", "restaurant", "meal", "food", "pizza", "burger", "sandwich"}},
	{Name: models.CategoryTransport, Keywords: []string{"taxi", "uber", "bus", "train", "fuel", "petrol", "gas", "parking", "transport"}},
	{Name: models.CategoryShopping, Keywords: []string{"shopping", "clothes", "shirt", "shoes", "book", "amazon", "store"}},
	{Name: models.CategoryEntertainment, Keywords: []string{"cinema", "movie", "game", "concert", "ticket", "entertainment"}},
	{Name: models.CategoryHealth, Keywords: []string{"doctor", "medicine", "pharmacy", "hospital", "dentist", "health"}},
	{Name: models.CategoryBills, Keywords: []string{"bill", "electricity", "water", "internet", "phone", "rent", "mortgage"}},
	{Name: models.CategoryGroceries, Keywords: []string{"groceries", "supermarket", "tesco", "sainsbury", "asda", "market"}},
}

// DefaultCategories returns a copy of the built-in category table.
func DefaultCategories() []models.CategoryConfig {
	return cloneCategories(defaultCategories)
}

// categoryFor returns the first category with a keyword in text, or General.
func (p *Parser) categoryFor(normalized string) string {
	for _, category := range p.categories {
		if containsAny(normalized, category.Keywords) {
			return category.Name
		}
	}
	return models.CategoryGeneral
}

func (p *Parser) hasCategoryKeyword(normalized string) bool {
	for _, category := range p.categories {
		if containsAny(normalized, category.Keywords) {
			return true
		}
	}
	return false
}

// normalizeCategories lower-cases keywords and drops blank keywords and
// categories left without any.
func normalizeCategories(categories []models.CategoryConfig) []models.CategoryConfig {
	var out []models.CategoryConfig
	for _, category := range categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			continue
		}
		var keywords []string
		for _, keyword := range category.Keywords {
			if k := strings.ToLower(strings.TrimSpace(keyword)); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			continue
		}
		out = append(out, models.CategoryConfig{Name: name, Keywords: keywords})
	}
	return out
}

func cloneCategories(categories []models.CategoryConfig) []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(categories))
	for i, category := range categories {
		out[i] = models.CategoryConfig{
			Name:     category.Name,
			Keywords: append([]string(nil), category.Keywords...),
		}
	}
	return out
}
