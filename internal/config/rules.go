package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// RulesFile is the layout of an HCL house rules file:
//
//	table {
//	  dealer_stands_on = 17
//	  pace             = "1s"
//	  short_pace       = "500ms"
//	  hide_hole_card   = true
//	}
type RulesFile struct {
	Table *TableSettings `hcl:"table,block"`
}

// TableSettings is the raw table block
type TableSettings struct {
	DealerStandsOn int    `hcl:"dealer_stands_on,optional"`
	Pace           string `hcl:"pace,optional"`
	ShortPace      string `hcl:"short_pace,optional"`
	HideHoleCard   *bool  `hcl:"hide_hole_card,optional"`
}

// TableRules are the decoded house rules
type TableRules struct {
	DealerStandsOn int
	// Pace is the pause after each dealt card
	Pace time.Duration
	// ShortPace is the pause between narration lines
	ShortPace    time.Duration
	HideHoleCard bool
}

// DefaultTableRules returns the standard house rules
func DefaultTableRules() *TableRules {
	return &TableRules{
		DealerStandsOn: 17,
		Pace:           time.Second,
		ShortPace:      500 * time.Millisecond,
		HideHoleCard:   true,
	}
}

// LoadTableRules loads house rules from an HCL file. An empty or missing
// path gives the defaults.
func LoadTableRules(filename string) (*TableRules, error) {
	rules := DefaultTableRules()
	if filename == "" {
		return rules, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return rules, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw RulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if raw.Table == nil {
		return rules, nil
	}

	// Apply values present in the file over the defaults
	if raw.Table.DealerStandsOn != 0 {
		rules.DealerStandsOn = raw.Table.DealerStandsOn
	}
	if raw.Table.Pace != "" {
		pace, err := time.ParseDuration(raw.Table.Pace)
		if err != nil {
			return nil, fmt.Errorf("table pace: %w", err)
		}
		rules.Pace = pace
	}
	if raw.Table.ShortPace != "" {
		pace, err := time.ParseDuration(raw.Table.ShortPace)
		if err != nil {
			return nil, fmt.Errorf("table short_pace: %w", err)
		}
		rules.ShortPace = pace
	}
	if raw.Table.HideHoleCard != nil {
		rules.HideHoleCard = *raw.Table.HideHoleCard
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate validates the house rules
func (r *TableRules) Validate() error {
	if r.DealerStandsOn < 12 || r.DealerStandsOn > 21 {
		return fmt.Errorf("dealer_stands_on must be between 12 and 21, got %d", r.DealerStandsOn)
	}
	if r.Pace < 0 || r.ShortPace < 0 {
		return fmt.Errorf("pace must not be negative")
	}
	return nil
}
