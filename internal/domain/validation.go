package domain

// StockValidation is the structured result of checking order items
// against the catalog. A failed validation is a normal business outcome,
// not an error: callers branch on Valid and show Errors to the user.
type StockValidation struct {
	Valid  bool
	Errors []string
}
