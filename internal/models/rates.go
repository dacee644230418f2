package models

// Order types the rate table is keyed by.
const (
	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"
)

// RateTable maps country -> order type -> currency -> rate. A refresh
// replaces the whole table for its cache tag, never a part of it.
type RateTable map[string]map[string]map[string]float64

// Total returns the number of rate entries across all countries and order
// types.
func (t RateTable) Total() int {
	total := 0
	for _, byOrderType := range t {
		for _, rates := range byOrderType {
			total += len(rates)
		}
	}
	return total
}

// Countries returns the country codes present in the table.
func (t RateTable) Countries() []string {
	countries := make([]string, 0, len(t))
	for country := range t {
		countries = append(countries, country)
	}
	return countries
}
