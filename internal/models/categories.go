package models

// Expense categories assigned by keyword lookup.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryBills         = "Bills"
	CategoryGroceries     = "Groceries"
	CategoryGeneral       = "General"
)

// CategoryConfig is one row of the category keyword table.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the layout of a categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
