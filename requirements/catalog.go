package requirements

import (
	"encoding/json"
	"fmt"
	"os"
)

// SatisfactionMode determines how a group's requirements combine
type SatisfactionMode string

const (
	// AllRequired means every requirement with Required=true must be uploaded
	AllRequired SatisfactionMode = "ALL_REQUIRED"
	// AnyOne means a single upload from the group satisfies it
	AnyOne SatisfactionMode = "ANY_ONE"
)

// DocumentRequirement is one concrete document type an applicant may be asked for
type DocumentRequirement struct {
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	Description  string   `json:"description,omitempty"`
	Required     *bool    `json:"required,omitempty"`     // nil means required
	CarrierScope []string `json:"carrierScope,omitempty"` // empty means any carrier
	Condition    string   `json:"condition,omitempty"`    // only used for carrier addenda
}

// IsRequired returns the Required flag, defaulting to true when unset.
func (r DocumentRequirement) IsRequired() bool {
	return r.Required == nil || *r.Required
}

// RequirementGroup is a named cluster of requirements sharing one satisfaction rule
type RequirementGroup struct {
	ID               string                `json:"id"`
	Label            string                `json:"label"`
	Description      string                `json:"description,omitempty"`
	Requirements     []DocumentRequirement `json:"requirements"`
	SatisfactionMode SatisfactionMode      `json:"satisfactionMode"`
	Condition        string                `json:"condition,omitempty"`
}

// Catalog holds the configured requirement groups and carrier addenda.
// It is data loaded from configuration, injected into the resolver; the
// engine never mutates it.
type Catalog struct {
	Base        []RequirementGroup               `json:"baseGroups"`
	Conditional []RequirementGroup               `json:"conditionalGroups"`
	Addenda     map[string][]DocumentRequirement `json:"carrierAddenda"`
}

// BaseGroups returns the always-applicable groups in catalog order.
func (c *Catalog) BaseGroups() []RequirementGroup {
	return c.Base
}

// ConditionalGroups returns the condition-gated groups in catalog order.
func (c *Catalog) ConditionalGroups() []RequirementGroup {
	return c.Conditional
}

// CarrierAddenda returns the raw addenda for a carrier, nil when the
// carrier is not in the catalog. Embedded per-requirement conditions are
// evaluated by the resolver, not here.
func (c *Catalog) CarrierAddenda(carrier string) []DocumentRequirement {
	return c.Addenda[carrier]
}

// KnownDocumentTypes returns the set of every document type the catalog
// mentions, across base groups, conditional groups and all carrier addenda.
func (c *Catalog) KnownDocumentTypes() map[string]bool {
	types := make(map[string]bool)
	for _, g := range c.Base {
		for _, r := range g.Requirements {
			types[r.Type] = true
		}
	}
	for _, g := range c.Conditional {
		for _, r := range g.Requirements {
			types[r.Type] = true
		}
	}
	for _, reqs := range c.Addenda {
		for _, r := range reqs {
			types[r.Type] = true
		}
	}
	return types
}

// Validate checks structural invariants of the catalog. Validation is a
// loading concern; the resolver assumes a validated catalog.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, g := range append(append([]RequirementGroup{}, c.Base...), c.Conditional...) {
		if g.ID == "" {
			return fmt.Errorf("requirement group with empty id")
		}
		if seen[g.ID] {
			return fmt.Errorf("duplicate requirement group id %q", g.ID)
		}
		seen[g.ID] = true

		if len(g.Requirements) == 0 {
			return fmt.Errorf("requirement group %q has no requirements", g.ID)
		}
		if g.SatisfactionMode != AllRequired && g.SatisfactionMode != AnyOne {
			return fmt.Errorf("requirement group %q has invalid satisfaction mode %q", g.ID, g.SatisfactionMode)
		}

		groupTypes := make(map[string]bool)
		for _, r := range g.Requirements {
			if r.Type == "" {
				return fmt.Errorf("requirement group %q has a requirement with empty type", g.ID)
			}
			if groupTypes[r.Type] {
				return fmt.Errorf("requirement group %q lists type %q twice", g.ID, r.Type)
			}
			groupTypes[r.Type] = true
		}
	}
	for _, g := range c.Conditional {
		if g.Condition == "" {
			return fmt.Errorf("conditional group %q has no condition", g.ID)
		}
	}
	for carrier, reqs := range c.Addenda {
		for _, r := range reqs {
			if r.Type == "" {
				return fmt.Errorf("carrier %q addendum with empty type", carrier)
			}
		}
	}
	return nil
}

// ParseCatalog decodes a catalog from JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := json.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse requirements catalog: %w", err)
	}
	return catalog, nil
}

// LoadCatalog reads and decodes a catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements catalog: %w", err)
	}
	return ParseCatalog(data)
}
