package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a named batch of calculations loaded from a YAML file.
type Plan struct {
	Name string `yaml:"name" json:"name"`
	// StartDate (YYYY-MM-DD) applies to every calculation that does not set its own.
	StartDate    string      `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	Calculations []PlanEntry `yaml:"calculations" json:"calculations"`
}

// PlanEntry is one calculation inside a plan.
type PlanEntry struct {
	Name      string          `yaml:"name" json:"name"`
	Product   string          `yaml:"product" json:"product"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Years     int             `yaml:"years" json:"years"`
	StartDate string          `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// NamedResult pairs a plan entry name with its projection.
type NamedResult struct {
	Name   string            `json:"name"`
	Result *ProjectionResult `json:"result"`
}

// PlanReport is the output of running every calculation in a plan.
type PlanReport struct {
	Name        string        `json:"name"`
	GeneratedAt time.Time     `json:"generated_at"`
	Results     []NamedResult `json:"results"`
}

// SingleReport wraps one result so it can go through the report formatters.
func SingleReport(name string, result *ProjectionResult, at time.Time) *PlanReport {
	return &PlanReport{
		Name:        name,
		GeneratedAt: at,
		Results:     []NamedResult{{Name: name, Result: result}},
	}
}
