package services

import (
	"courier-dispatch-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Per-unit delivery rates. These are domain constants of the courier
// service, not configurable inputs.
const (
	costPerKg = 10
	costPerKm = 5
)

// Quote is the cost breakdown for one package.
type Quote struct {
	OriginalCost decimal.Decimal
	Discount     decimal.Decimal
	TotalCost    decimal.Decimal
}

// Pricer computes delivery costs against an injected offer catalog.
// Cost never depends on scheduling order, so pricing runs independently of
// the shipment planner.
type Pricer struct {
	catalog *domain.Catalog
}

// NewPricer builds a Pricer. A nil catalog falls back to the standard offer
// table.
func NewPricer(catalog *domain.Catalog) *Pricer {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Pricer{catalog: catalog}
}

// Offers exposes the catalog read-only for boundary layers.
func (p *Pricer) Offers() []domain.Offer {
	return p.catalog.Offers()
}

// Quote prices a single package: base cost plus weight and distance at the
// fixed per-unit rates, minus the catalog discount when the package is
// eligible. Decimal arithmetic keeps the money exact.
func (p *Pricer) Quote(pkg domain.Package, baseCost float64) Quote {
	original := decimal.NewFromFloat(baseCost).
		Add(decimal.NewFromFloat(pkg.WeightKg).Mul(decimal.NewFromInt(costPerKg))).
		Add(decimal.NewFromFloat(pkg.DistanceKm).Mul(decimal.NewFromInt(costPerKm)))

	discount := decimal.Zero
	if offer, ok := p.catalog.Eligible(pkg); ok {
		discount = original.Mul(decimal.NewFromFloat(offer.DiscountPercent)).Div(decimal.NewFromInt(100))
	}

	return Quote{
		OriginalCost: original,
		Discount:     discount,
		TotalCost:    original.Sub(discount),
	}
}
