package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courier-dispatch-service/internal/api/dto"
	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/ports"
)

type stubPackageRepo struct {
	packages []domain.Package
}

func (r *stubPackageRepo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return r.packages, nil
}

func (r *stubPackageRepo) SavePackage(ctx context.Context, pkg domain.Package) error {
	r.packages = append(r.packages, pkg)
	return nil
}

type stubVehicleRepo struct {
	vehicles []domain.Vehicle
}

func (r *stubVehicleRepo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return r.vehicles, nil
}

func (r *stubVehicleRepo) SaveVehicle(ctx context.Context, v domain.Vehicle) error {
	r.vehicles = append(r.vehicles, v)
	return nil
}

// countingCache is an in-memory PlanCache that records hit/miss traffic.
type countingCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[string][]byte{}}
}

func (c *countingCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	if body, ok := c.entries[key]; ok {
		return body, nil
	}
	return nil, ports.ErrCacheMiss
}

func (c *countingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func courierFixture() (*stubPackageRepo, *stubVehicleRepo) {
	packages := &stubPackageRepo{packages: []domain.Package{
		{ID: "PKG1", WeightKg: 50, DistanceKm: 30, OfferCode: "OFR001"},
		{ID: "PKG2", WeightKg: 75, DistanceKm: 125, OfferCode: "OFR0008"},
		{ID: "PKG3", WeightKg: 175, DistanceKm: 100, OfferCode: "OFR003"},
		{ID: "PKG4", WeightKg: 110, DistanceKm: 60, OfferCode: "OFR002"},
		{ID: "PKG5", WeightKg: 155, DistanceKm: 95},
	}}
	vehicles := &stubVehicleRepo{vehicles: []domain.Vehicle{
		{ID: 1, MaxSpeedKmh: 70, MaxLoadKg: 200},
		{ID: 2, MaxSpeedKmh: 70, MaxLoadKg: 200},
	}}
	return packages, vehicles
}

func planHandlerUnderTest(cache ports.PlanCache) *PlanHandler {
	packages, vehicles := courierFixture()
	return &PlanHandler{
		Packages: packages,
		Vehicles: vehicles,
		Catalog:  domain.DefaultCatalog(),
		Cache:    cache,
	}
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanReturnsPricedSchedule(t *testing.T) {
	h := planHandlerUnderTest(nil)

	rec := postPlan(t, h, `{"base_delivery_cost": 100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Results) != 5 {
		t.Fatalf("results = %d, want 5", len(res.Results))
	}
	if len(res.Shipments) != 4 {
		t.Fatalf("shipments = %d, want 4", len(res.Shipments))
	}

	byID := map[string]dto.DeliveryResultResponse{}
	for _, r := range res.Results {
		byID[r.PackageID] = r
	}

	pkg4, ok := byID["PKG4"]
	if !ok {
		t.Fatal("PKG4 missing from results")
	}
	if pkg4.Discount != 105 || pkg4.TotalCost != 1395 {
		t.Errorf("PKG4 discount/total = %v/%v, want 105/1395", pkg4.Discount, pkg4.TotalCost)
	}

	pkg2, ok := byID["PKG2"]
	if !ok {
		t.Fatal("PKG2 missing from results")
	}
	if math.Abs(pkg2.DeliveryAt-125.0/70) > 1e-9 {
		t.Errorf("PKG2 delivery_at = %v, want %v", pkg2.DeliveryAt, 125.0/70)
	}

	first := res.Shipments[0]
	if first.VehicleID != 1 || first.DepartureAt != 0 {
		t.Errorf("first shipment = vehicle %d @ %v, want vehicle 1 @ 0", first.VehicleID, first.DepartureAt)
	}
}

func TestPlanDefaultsBaseCost(t *testing.T) {
	h := planHandlerUnderTest(nil)

	rec := postPlan(t, h, `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, r := range res.Results {
		if r.PackageID == "PKG1" && r.TotalCost != 750 {
			t.Errorf("PKG1 total = %v, want 750 at default base cost", r.TotalCost)
		}
	}
}

func TestPlanRejectsNegativeBaseCost(t *testing.T) {
	h := planHandlerUnderTest(nil)

	rec := postPlan(t, h, `{"base_delivery_cost": -10}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPlanRejectsUnknownFields(t *testing.T) {
	h := planHandlerUnderTest(nil)

	rec := postPlan(t, h, `{"base_cost": 100}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPlanMethodNotAllowed(t *testing.T) {
	h := planHandlerUnderTest(nil)

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want %q", allow, http.MethodPost)
	}
}

func TestPlanEmptyFleetUnprocessable(t *testing.T) {
	packages, _ := courierFixture()
	h := &PlanHandler{
		Packages: packages,
		Vehicles: &stubVehicleRepo{},
		Catalog:  domain.DefaultCatalog(),
	}

	rec := postPlan(t, h, `{"base_delivery_cost": 100}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestPlanUnroutableUnprocessable(t *testing.T) {
	packages, _ := courierFixture()
	h := &PlanHandler{
		Packages: packages,
		Vehicles: &stubVehicleRepo{vehicles: []domain.Vehicle{
			{ID: 1, MaxSpeedKmh: 70, MaxLoadKg: 40},
		}},
		Catalog: domain.DefaultCatalog(),
	}

	rec := postPlan(t, h, `{"base_delivery_cost": 100}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestPlanServedFromCacheOnRepeat(t *testing.T) {
	cache := newCountingCache()
	h := planHandlerUnderTest(cache)

	first := postPlan(t, h, `{"base_delivery_cost": 100}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want %d", first.Code, http.StatusOK)
	}
	if cache.gets != 1 || cache.sets != 1 {
		t.Fatalf("after first call gets/sets = %d/%d, want 1/1", cache.gets, cache.sets)
	}

	second := postPlan(t, h, `{"base_delivery_cost": 100}`)
	if second.Code != http.StatusOK {
		t.Fatalf("second status = %d, want %d", second.Code, http.StatusOK)
	}
	if cache.gets != 2 || cache.sets != 1 {
		t.Errorf("after second call gets/sets = %d/%d, want 2/1", cache.gets, cache.sets)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached response differs from planned response")
	}
}
