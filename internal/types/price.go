// README: Common price value object used across modules.
package types

// Price carries an upstream decimal amount as-is. Amount is never parsed or
// converted; flight totals are a literal passthrough from the provider.
type Price struct {
	Amount   string
	Currency string
}
