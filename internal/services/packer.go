package services

import (
	"slices"
	"strings"

	"courier-dispatch-service/internal/domain"
)

// PackShipment selects the subset of the pool to load on a single trip for
// a vehicle with the given capacity, maximizing carried weight.
//
// Candidates are sorted by weight descending (equal weights by package id,
// so runs are reproducible). From every starting index the already-sorted
// tail is accumulated greedily, skipping packages that would overflow the
// capacity; the heaviest accumulation wins, and exact weight ties go to the
// earliest starting index. This is an O(n²) heuristic, not an exact
// knapsack solver: adversarial pools can hide a better-utilized combination
// it never tries. Determinism is the priority over optimality.
//
// An empty pool, or a pool where no single package fits, yields an empty
// load and no error.
func PackShipment(pool []domain.Package, capacityKg float64) []domain.Package {
	if len(pool) == 0 {
		return nil
	}

	sorted := append([]domain.Package(nil), pool...)
	slices.SortFunc(sorted, func(a, b domain.Package) int {
		if a.WeightKg > b.WeightKg {
			return -1
		}
		if a.WeightKg < b.WeightKg {
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})

	var best []domain.Package
	bestWeight := 0.0

	for i := range sorted {
		load := make([]domain.Package, 0, len(sorted)-i)
		weight := 0.0
		for _, pkg := range sorted[i:] {
			if weight+pkg.WeightKg > capacityKg {
				continue
			}
			load = append(load, pkg)
			weight += pkg.WeightKg
		}
		if weight > bestWeight {
			best = load
			bestWeight = weight
		}
	}

	return best
}

// ShipmentDistanceKm is the one-way distance for a load: the farthest
// member drop-off. The round trip must cover the farthest package; nearer
// members are assumed to be detours within it.
func ShipmentDistanceKm(load []domain.Package) float64 {
	distance := 0.0
	for _, pkg := range load {
		if pkg.DistanceKm > distance {
			distance = pkg.DistanceKm
		}
	}
	return distance
}
