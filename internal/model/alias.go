package model

// CompanyAlias maps a normalized free-text key (lowercased company name) to
// its canonical listing. Alias tables are read-only after initialization.
type CompanyAlias struct {
	Ticker      string
	DisplayName string
}
