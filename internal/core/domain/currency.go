package domain

// Currency is one of the two currencies the ledger books in.
type Currency string

const (
	USD Currency = "USD"
	PKR Currency = "PKR"
)

// BaseCurrency is the reporting currency every amount is converted into.
const BaseCurrency = PKR

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == USD || c == PKR
}
