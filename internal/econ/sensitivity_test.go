package econ

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

func referenceSensitivityInputs() SensitivityInputs {
	return SensitivityInputs{
		EquipmentCost:          2_500_000,
		MaintenanceCost:        100_000,
		RawMaterialCostPerKg:   0.8,
		UtilityCostPerKg:       0.15,
		LaborCostPerKg:         0.5,
		ProductionVolumeKgYear: 500_000,
	}
}

func TestAnalyze_ReferenceCase(t *testing.T) {
	rows, err := Analyze(referenceSensitivityInputs(), DefaultSensitivityConfig())
	if err != nil {
		t.Fatalf("Analyze err = %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}

	// Base profit: 2.5M revenue - (250k + 100k + 400k + 75k + 250k) = 1.425M.
	want := map[string]struct {
		impact float64
		class  SensitivityClass
	}{
		"equipment_cost":    {-250_000 * 0.1 / 1_425_000 * 100, ClassLow},
		"maintenance_cost":  {-100_000 * 0.1 / 1_425_000 * 100, ClassLow},
		"raw_material_cost": {-400_000 * 0.1 / 1_425_000 * 100, ClassLow},
		"utility_cost":      {-75_000 * 0.1 / 1_425_000 * 100, ClassLow},
		"labor_cost":        {-250_000 * 0.1 / 1_425_000 * 100, ClassLow},
		"production_volume": {177_500.0 / 1_425_000 * 100, ClassMedium},
	}

	for _, row := range rows {
		w, ok := want[row.Parameter]
		if !ok {
			t.Errorf("unexpected parameter %q", row.Parameter)
			continue
		}
		if !approxEqual(row.ImpactPercent, w.impact, 1e-6) {
			t.Errorf("%s impact = %v, want %v", row.Parameter, row.ImpactPercent, w.impact)
		}
		if row.Class != w.class {
			t.Errorf("%s class = %s, want %s", row.Parameter, row.Class, w.class)
		}
	}
}

func TestAnalyze_ZeroBaseProfit_UndefinedImpacts(t *testing.T) {
	// Costs tuned so revenue exactly equals annual cost at 5 USD/kg.
	in := SensitivityInputs{
		EquipmentCost:          2_000_000,
		MaintenanceCost:        100_000,
		RawMaterialCostPerKg:   1.0,
		UtilityCostPerKg:       0.5,
		LaborCostPerKg:         0.5,
		ProductionVolumeKgYear: 100_000,
	}

	rows, err := Analyze(in, DefaultSensitivityConfig())
	if err != nil {
		t.Fatalf("Analyze err = %v", err)
	}
	for _, row := range rows {
		if !math.IsNaN(row.ImpactPercent) {
			t.Errorf("%s impact = %v, want NaN", row.Parameter, row.ImpactPercent)
		}
		if row.Class != ClassUndefined {
			t.Errorf("%s class = %s, want %s", row.Parameter, row.Class, ClassUndefined)
		}
	}
}

func TestAnalyze_InvalidInputs(t *testing.T) {
	in := referenceSensitivityInputs()
	in.ProductionVolumeKgYear = 0
	if _, err := Analyze(in, DefaultSensitivityConfig()); !apperr.IsInvalidInput(err) {
		t.Fatalf("err = %v, want InvalidInputError", err)
	}

	cfg := DefaultSensitivityConfig()
	cfg.SellingPricePerKg = 0
	if _, err := Analyze(referenceSensitivityInputs(), cfg); !apperr.IsInvalidInput(err) {
		t.Fatalf("err = %v, want InvalidInputError", err)
	}
}

func TestClassify_BoundaryConvention(t *testing.T) {
	cases := []struct {
		impact float64
		want   SensitivityClass
	}{
		{0, ClassLow},
		{4.999, ClassLow},
		{-4.999, ClassLow},
		{5.0, ClassMedium},
		{-5.0, ClassMedium},
		{14.999, ClassMedium},
		{15.0, ClassHigh},
		{-15.0, ClassHigh},
		{80, ClassHigh},
		{math.NaN(), ClassUndefined},
	}

	for _, tc := range cases {
		if got := Classify(tc.impact); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.impact, got, tc.want)
		}
	}
}

func TestSortRowsByImpact_DescendingWithNaNLast(t *testing.T) {
	rows := []SensitivityRow{
		{Parameter: "a", ImpactPercent: -3},
		{Parameter: "b", ImpactPercent: math.NaN()},
		{Parameter: "c", ImpactPercent: 12},
		{Parameter: "d", ImpactPercent: -20},
	}
	SortRowsByImpact(rows)

	wantOrder := []string{"d", "c", "a", "b"}
	for i, w := range wantOrder {
		if rows[i].Parameter != w {
			t.Fatalf("rows[%d] = %s, want %s (full: %#v)", i, rows[i].Parameter, w, rows)
		}
	}
}

func TestSensitivityRow_MarshalJSON_UndefinedAsNull(t *testing.T) {
	row := SensitivityRow{
		Parameter:     "equipment_cost",
		BaseValue:     100,
		ImpactPercent: math.NaN(),
		Class:         ClassUndefined,
	}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal err = %v", err)
	}
	if !strings.Contains(string(data), `"impact_percent":null`) {
		t.Errorf("expected null impact, got %s", data)
	}
}
