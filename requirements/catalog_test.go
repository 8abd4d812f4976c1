package requirements

import "testing"

const catalogJSON = `{
	"baseGroups": [
		{
			"id": "payroll_proof",
			"label": "Proof of Payroll",
			"satisfactionMode": "ANY_ONE",
			"requirements": [
				{"type": "DE-9C", "label": "DE-9C Quarterly Report"},
				{"type": "PayrollLedger", "label": "Payroll Ledger", "required": false}
			]
		}
	],
	"conditionalGroups": [
		{
			"id": "prior_coverage",
			"label": "Prior Coverage",
			"satisfactionMode": "ALL_REQUIRED",
			"condition": "has_prior_coverage",
			"requirements": [{"type": "CarrierBill", "label": "Carrier Bill"}]
		}
	],
	"carrierAddenda": {
		"Kaiser": [{"type": "Kaiser-GroupApp", "label": "Kaiser Group Application"}]
	}
}`

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(catalogJSON))
	if err != nil {
		t.Fatalf("failed to parse catalog: %v", err)
	}
	if err := catalog.Validate(); err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}

	base := catalog.BaseGroups()
	if len(base) != 1 || base[0].ID != "payroll_proof" {
		t.Fatalf("unexpected base groups: %+v", base)
	}
	if base[0].SatisfactionMode != AnyOne {
		t.Fatalf("expected ANY_ONE, got %s", base[0].SatisfactionMode)
	}
	if base[0].Requirements[0].IsRequired() != true {
		t.Fatal("required should default to true")
	}
	if base[0].Requirements[1].IsRequired() {
		t.Fatal("explicit required=false should be honored")
	}

	conditional := catalog.ConditionalGroups()
	if len(conditional) != 1 || conditional[0].Condition != "has_prior_coverage" {
		t.Fatalf("unexpected conditional groups: %+v", conditional)
	}

	if len(catalog.CarrierAddenda("Kaiser")) != 1 {
		t.Fatal("expected one Kaiser addendum")
	}
	if catalog.CarrierAddenda("Anthem") != nil {
		t.Fatal("unknown carrier should return nil addenda")
	}
}

func TestParseCatalogRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseCatalog([]byte(`{"baseGroups": [`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateCatalogErrors(t *testing.T) {
	cases := []struct {
		name    string
		catalog Catalog
	}{
		{
			name: "empty group id",
			catalog: Catalog{Base: []RequirementGroup{
				{SatisfactionMode: AnyOne, Requirements: []DocumentRequirement{{Type: "X"}}},
			}},
		},
		{
			name: "duplicate group id",
			catalog: Catalog{Base: []RequirementGroup{
				{ID: "g", SatisfactionMode: AnyOne, Requirements: []DocumentRequirement{{Type: "X"}}},
				{ID: "g", SatisfactionMode: AnyOne, Requirements: []DocumentRequirement{{Type: "Y"}}},
			}},
		},
		{
			name: "empty requirements",
			catalog: Catalog{Base: []RequirementGroup{
				{ID: "g", SatisfactionMode: AnyOne},
			}},
		},
		{
			name: "bad satisfaction mode",
			catalog: Catalog{Base: []RequirementGroup{
				{ID: "g", SatisfactionMode: "SOME", Requirements: []DocumentRequirement{{Type: "X"}}},
			}},
		},
		{
			name: "duplicate type within group",
			catalog: Catalog{Base: []RequirementGroup{
				{ID: "g", SatisfactionMode: AnyOne, Requirements: []DocumentRequirement{{Type: "X"}, {Type: "X"}}},
			}},
		},
		{
			name: "conditional group without condition",
			catalog: Catalog{Conditional: []RequirementGroup{
				{ID: "g", SatisfactionMode: AnyOne, Requirements: []DocumentRequirement{{Type: "X"}}},
			}},
		},
		{
			name: "addendum with empty type",
			catalog: Catalog{Addenda: map[string][]DocumentRequirement{
				"Kaiser": {{Label: "unnamed"}},
			}},
		},
	}

	for _, tc := range cases {
		if err := tc.catalog.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestKnownDocumentTypes(t *testing.T) {
	catalog, err := ParseCatalog([]byte(catalogJSON))
	if err != nil {
		t.Fatalf("failed to parse catalog: %v", err)
	}

	types := catalog.KnownDocumentTypes()
	for _, want := range []string{"DE-9C", "PayrollLedger", "CarrierBill", "Kaiser-GroupApp"} {
		if !types[want] {
			t.Fatalf("expected %s in known document types", want)
		}
	}
	if types["W-2"] {
		t.Fatal("unexpected document type in catalog")
	}
}
