package impact

import (
	"errors"
	"math"
	"testing"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

func TestAllocate_MassMethod(t *testing.T) {
	r, err := Allocate(AllocationInputs{
		Method:   MethodMass,
		MassesKg: map[string]float64{"protein_concentrate": 300, "starch": 700},
		Totals:   map[Category]float64{GWP: 1000},
	})
	if err != nil {
		t.Fatalf("Allocate err = %v", err)
	}

	if got := r.Factors["protein_concentrate"]; got != 0.3 {
		t.Errorf("protein factor = %v, want 0.3", got)
	}
	if got := r.Factors["starch"]; got != 0.7 {
		t.Errorf("starch factor = %v, want 0.7", got)
	}
	if got := r.AllocatedImpacts["protein_concentrate"][GWP]; got != 300 {
		t.Errorf("protein gwp share = %v, want 300", got)
	}
	if got := r.AllocatedImpacts["starch"][GWP]; got != 700 {
		t.Errorf("starch gwp share = %v, want 700", got)
	}
}

func TestAllocate_FactorAndImpactSums(t *testing.T) {
	masses := map[string]float64{"protein_concentrate": 1000, "starch": 300, "fiber": 200}
	prices := map[string]float64{"protein_concentrate": 6.50, "starch": 2.30, "fiber": 1.80}
	totals := map[Category]float64{GWP: 812.5, HCT: 3.1e-5, FRS: 297.5, WaterConsumption: 5825}

	for _, method := range []AllocationMethod{MethodMass, MethodEconomic, MethodHybrid} {
		t.Run(string(method), func(t *testing.T) {
			r, err := Allocate(AllocationInputs{
				Method:         method,
				MassesKg:       masses,
				PricesPerKg:    prices,
				EconomicWeight: 0.6,
				Totals:         totals,
			})
			if err != nil {
				t.Fatalf("Allocate err = %v", err)
			}

			var factorSum float64
			for _, f := range r.Factors {
				factorSum += f
			}
			if math.Abs(factorSum-1) > 1e-6 {
				t.Errorf("sum(factors) = %v, want 1", factorSum)
			}

			for category, total := range totals {
				var shareSum float64
				for _, shares := range r.AllocatedImpacts {
					shareSum += shares[category]
				}
				if !approxEqual(shareSum, total, 1e-9) {
					t.Errorf("%s: sum(shares) = %v, want %v", category, shareSum, total)
				}
			}
		})
	}
}

func TestAllocate_EconomicMethod(t *testing.T) {
	r, err := Allocate(AllocationInputs{
		Method:      MethodEconomic,
		MassesKg:    map[string]float64{"protein_concentrate": 100, "starch": 100},
		PricesPerKg: map[string]float64{"protein_concentrate": 6.0, "starch": 2.0},
		Totals:      map[Category]float64{GWP: 400},
	})
	if err != nil {
		t.Fatalf("Allocate err = %v", err)
	}

	if got := r.Factors["protein_concentrate"]; !approxEqual(got, 0.75, 1e-9) {
		t.Errorf("protein factor = %v, want 0.75", got)
	}
	if got := r.AllocatedImpacts["starch"][GWP]; !approxEqual(got, 100, 1e-9) {
		t.Errorf("starch gwp share = %v, want 100", got)
	}
}

func TestAllocate_HybridBlendsAndClampsWeight(t *testing.T) {
	masses := map[string]float64{"a": 100, "b": 100}
	prices := map[string]float64{"a": 6.0, "b": 2.0}

	// Weight 0.5: factor_a = 0.5*0.75 + 0.5*0.5 = 0.625.
	r, err := Allocate(AllocationInputs{
		Method: MethodHybrid, MassesKg: masses, PricesPerKg: prices, EconomicWeight: 0.5,
	})
	if err != nil {
		t.Fatalf("Allocate err = %v", err)
	}
	if got := r.Factors["a"]; !approxEqual(got, 0.625, 1e-9) {
		t.Errorf("hybrid factor = %v, want 0.625", got)
	}

	// Out-of-range weights clamp to the pure methods.
	over, err := Allocate(AllocationInputs{
		Method: MethodHybrid, MassesKg: masses, PricesPerKg: prices, EconomicWeight: 1.7,
	})
	if err != nil {
		t.Fatalf("Allocate err = %v", err)
	}
	if got := over.Factors["a"]; !approxEqual(got, 0.75, 1e-9) {
		t.Errorf("clamped-high factor = %v, want economic 0.75", got)
	}

	under, err := Allocate(AllocationInputs{
		Method: MethodHybrid, MassesKg: masses, PricesPerKg: prices, EconomicWeight: -0.3,
	})
	if err != nil {
		t.Fatalf("Allocate err = %v", err)
	}
	if got := under.Factors["a"]; !approxEqual(got, 0.5, 1e-9) {
		t.Errorf("clamped-low factor = %v, want mass 0.5", got)
	}
}

func TestAllocate_InvalidRequests(t *testing.T) {
	cases := []struct {
		name string
		in   AllocationInputs
	}{
		{"no co-products", AllocationInputs{Method: MethodMass}},
		{"zero total mass", AllocationInputs{
			Method:   MethodMass,
			MassesKg: map[string]float64{"a": 0, "b": 0},
		}},
		{"zero economic value", AllocationInputs{
			Method:      MethodEconomic,
			MassesKg:    map[string]float64{"a": 100},
			PricesPerKg: map[string]float64{"a": 0},
		}},
		{"missing prices for hybrid", AllocationInputs{
			Method:   MethodHybrid,
			MassesKg: map[string]float64{"a": 100},
		}},
		{"unknown method", AllocationInputs{
			Method:   AllocationMethod("volumetric"),
			MassesKg: map[string]float64{"a": 100},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Allocate(tc.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			var allocErr *apperr.InvalidAllocationError
			if !errors.As(err, &allocErr) {
				t.Fatalf("err = %v, want InvalidAllocationError", err)
			}
		})
	}
}

func TestParseAllocationMethod(t *testing.T) {
	for _, valid := range []string{"mass", "economic", "hybrid"} {
		if _, ok := ParseAllocationMethod(valid); !ok {
			t.Errorf("ParseAllocationMethod(%q) not ok", valid)
		}
	}
	if _, ok := ParseAllocationMethod("volumetric"); ok {
		t.Errorf("expected volumetric to be rejected")
	}
}
