package models

// Category name constants for the categories referenced across packages.
// The full default rule table lives in the categorize package.
const (
	CategoryEntertainment = "Entertainment"
	CategoryFood          = "Food"
	CategoryTravel        = "Travel"
	CategoryUtilities     = "Utilities"
	CategoryEducation     = "Education"
	CategoryHealthcare    = "Healthcare"
	CategoryShopping      = "Shopping"
	CategorySavings       = "Savings"
	CategorySubscriptions = "Subscriptions"
	CategoryTransport     = "Transport"
	CategoryPayments      = "Payments"
	CategoryOther         = "Other"
)

// CategoryRule maps a set of description keywords to a category.
// Rules are evaluated in order and the first keyword hit wins, so a slice
// of rules is an explicit priority list, not a lookup table.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoryRulesFile is the on-disk shape of the category rules YAML.
type CategoryRulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}
