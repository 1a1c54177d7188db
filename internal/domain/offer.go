package domain

// Offer grants a percentage discount when a package's distance and weight
// both fall inside the offer's ranges.
type Offer struct {
	Code            string
	DiscountPercent float64
	MinDistanceKm   float64
	MaxDistanceKm   float64
	MinWeightKg     float64
	MaxWeightKg     float64
}

// Applicable reports whether pkg satisfies the offer's distance and weight
// ranges. Bounds are inclusive on both sides.
func (o Offer) Applicable(pkg Package) bool {
	return pkg.DistanceKm >= o.MinDistanceKm && pkg.DistanceKm <= o.MaxDistanceKm &&
		pkg.WeightKg >= o.MinWeightKg && pkg.WeightKg <= o.MaxWeightKg
}

// Catalog is a fixed, read-only offer table loaded once and injected
// wherever eligibility is evaluated, so tests can supply their own tables.
type Catalog struct {
	byCode map[string]Offer
	order  []string
}

func NewCatalog(offers []Offer) *Catalog {
	c := &Catalog{byCode: make(map[string]Offer, len(offers))}
	for _, o := range offers {
		if _, ok := c.byCode[o.Code]; !ok {
			c.order = append(c.order, o.Code)
		}
		c.byCode[o.Code] = o
	}
	return c
}

// Eligible returns the offer matching the package's code when the package
// also satisfies that offer's ranges. An unknown or absent code is simply
// "no discount", never an error.
func (c *Catalog) Eligible(pkg Package) (Offer, bool) {
	offer, ok := c.byCode[pkg.OfferCode]
	if !ok || !offer.Applicable(pkg) {
		return Offer{}, false
	}
	return offer, true
}

// Offers returns the catalog contents in insertion order.
func (c *Catalog) Offers() []Offer {
	out := make([]Offer, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.byCode[code])
	}
	return out
}

// DefaultCatalog returns the standard courier offer table.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Offer{
		{Code: "OFR001", DiscountPercent: 10, MinDistanceKm: 0, MaxDistanceKm: 200, MinWeightKg: 70, MaxWeightKg: 200},
		{Code: "OFR002", DiscountPercent: 7, MinDistanceKm: 50, MaxDistanceKm: 150, MinWeightKg: 100, MaxWeightKg: 250},
		{Code: "OFR003", DiscountPercent: 5, MinDistanceKm: 50, MaxDistanceKm: 250, MinWeightKg: 10, MaxWeightKg: 150},
	})
}
