package domain

import "testing"

func TestCatalogEligible(t *testing.T) {
	catalog := DefaultCatalog()

	cases := []struct {
		name     string
		pkg      Package
		wantCode string
		wantOK   bool
	}{
		{
			name:     "matching code and ranges",
			pkg:      Package{ID: "PKG1", WeightKg: 100, DistanceKm: 100, OfferCode: "OFR002"},
			wantCode: "OFR002",
			wantOK:   true,
		},
		{
			name:   "weight below range",
			pkg:    Package{ID: "PKG1", WeightKg: 50, DistanceKm: 30, OfferCode: "OFR001"},
			wantOK: false,
		},
		{
			name:   "unknown code",
			pkg:    Package{ID: "PKG1", WeightKg: 100, DistanceKm: 100, OfferCode: "OFR999"},
			wantOK: false,
		},
		{
			name:   "absent code",
			pkg:    Package{ID: "PKG1", WeightKg: 100, DistanceKm: 100},
			wantOK: false,
		},
		{
			name:     "inclusive lower bounds",
			pkg:      Package{ID: "PKG1", WeightKg: 100, DistanceKm: 50, OfferCode: "OFR002"},
			wantCode: "OFR002",
			wantOK:   true,
		},
		{
			name:     "inclusive upper bounds",
			pkg:      Package{ID: "PKG1", WeightKg: 250, DistanceKm: 150, OfferCode: "OFR002"},
			wantCode: "OFR002",
			wantOK:   true,
		},
		{
			name:   "just past upper distance",
			pkg:    Package{ID: "PKG1", WeightKg: 250, DistanceKm: 150.01, OfferCode: "OFR002"},
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offer, ok := catalog.Eligible(tc.pkg)
			if ok != tc.wantOK {
				t.Fatalf("eligible = %v, want %v", ok, tc.wantOK)
			}
			if ok && offer.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", offer.Code, tc.wantCode)
			}
		})
	}
}

func TestCatalogOffersInsertionOrder(t *testing.T) {
	catalog := NewCatalog([]Offer{
		{Code: "B", DiscountPercent: 5},
		{Code: "A", DiscountPercent: 10},
	})

	offers := catalog.Offers()
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}
	if offers[0].Code != "B" || offers[1].Code != "A" {
		t.Fatalf("unexpected order: %q, %q", offers[0].Code, offers[1].Code)
	}
}
