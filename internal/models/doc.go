// Package models defines the core domain models for billtracker.
//
// # Models
//
//   - Bill: a recurring monthly payment obligation (rent, power, phone, ...)
//   - BillInput: the client-editable subset of a Bill used by create and update
//   - Category, PaymentMethod: closed enumerations with display metadata
//
// # Design Principles
//
// 1. **Day-of-month due dates**: a Bill recurs on DueDate every month and is
// never tied to a specific year or month.
// 2. **Lookup tables over behavior**: display metadata for categories and
// payment methods is kept in maps keyed by the enum value.
// 3. **Money is decimal**: amounts use shopspring/decimal and are rounded to
// two places before they are persisted.
package models

import "github.com/shopspring/decimal"

func init() {
	// Clients read monthlyAmount as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}
