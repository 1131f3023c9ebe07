// Package report assembles the outputs of both analysis branches into one
// result document and writes it to disk as YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/econ"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/params"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/protein"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/sustainability"
)

// EconomicResults groups the economic branch outputs.
type EconomicResults struct {
	Cost          econ.CostResult           `yaml:"cost" json:"cost"`
	Profitability econ.ProfitabilityMetrics `yaml:"profitability" json:"profitability"`
	Sensitivity   []econ.SensitivityRow     `yaml:"sensitivity" json:"sensitivity"`
}

// EnvironmentalResults groups the environmental branch outputs.
type EnvironmentalResults struct {
	Impact        impact.Result               `yaml:"impact" json:"impact"`
	Allocation    *impact.AllocationResult    `yaml:"allocation,omitempty" json:"allocation,omitempty"`
	EcoEfficiency map[impact.Category]float64 `yaml:"eco_efficiency,omitempty" json:"eco_efficiency,omitempty"`
}

// Analysis is one assembled analysis run. Branch results are nil when the
// corresponding branch was not requested.
type Analysis struct {
	RunID       string    `yaml:"run_id" json:"run_id"`
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`

	Scenario params.Scenario `yaml:"scenario" json:"scenario"`

	Recovery       *protein.RecoveryMetrics `yaml:"recovery,omitempty" json:"recovery,omitempty"`
	Economic       *EconomicResults         `yaml:"economic,omitempty" json:"economic,omitempty"`
	Environmental  *EnvironmentalResults    `yaml:"environmental,omitempty" json:"environmental,omitempty"`
	Sustainability *sustainability.Report   `yaml:"sustainability,omitempty" json:"sustainability,omitempty"`
}

// New creates an empty analysis for the scenario with a fresh run ID.
func New(scenario params.Scenario) *Analysis {
	return &Analysis{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Scenario:    scenario,
	}
}

// Write stores the analysis at path. The format parameter can be "yaml",
// "json" or "auto" (default); "auto" resolves from the file extension and
// falls back to YAML.
func Write(a *Analysis, path string, format string) error {
	actual := strings.ToLower(strings.TrimSpace(format))
	switch actual {
	case "", "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			actual = "json"
		default:
			actual = "yaml"
		}
	case "yaml", "json":
		// ok
	default:
		return fmt.Errorf("unsupported report format: %q", format)
	}

	var (
		data []byte
		err  error
	)
	if actual == "json" {
		data, err = json.MarshalIndent(a, "", "  ")
	} else {
		data, err = yaml.Marshal(a)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
