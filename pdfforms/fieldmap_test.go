package pdfforms

import (
	"reflect"
	"testing"
)

const fieldMapJSON = `{
	"Kaiser": {
		"company_name": "GroupName_1",
		"tax_id": "FEIN_Field",
		"employee_count": "EligibleEmployees"
	},
	"Anthem": {
		"company_name": "employer.legal_name",
		"tax_id": "employer.fein"
	}
}`

func TestLookup(t *testing.T) {
	maps, err := Parse([]byte(fieldMapJSON))
	if err != nil {
		t.Fatalf("failed to parse field maps: %v", err)
	}

	name, ok := maps.Lookup("Kaiser", "company_name")
	if !ok || name != "GroupName_1" {
		t.Fatalf("expected GroupName_1, got %q ok=%v", name, ok)
	}

	// Same logical field, different carrier naming.
	name, ok = maps.Lookup("Anthem", "company_name")
	if !ok || name != "employer.legal_name" {
		t.Fatalf("expected employer.legal_name, got %q ok=%v", name, ok)
	}
}

func TestLookupUnknownIsNotAnError(t *testing.T) {
	maps, err := Parse([]byte(fieldMapJSON))
	if err != nil {
		t.Fatalf("failed to parse field maps: %v", err)
	}

	if _, ok := maps.Lookup("Unknown", "company_name"); ok {
		t.Fatal("unknown carrier should report ok=false")
	}
	if _, ok := maps.Lookup("Kaiser", "nonexistent_field"); ok {
		t.Fatal("unknown logical field should report ok=false")
	}
}

func TestCarrierFieldsReturnsCopy(t *testing.T) {
	maps, err := Parse([]byte(fieldMapJSON))
	if err != nil {
		t.Fatalf("failed to parse field maps: %v", err)
	}

	fields, ok := maps.CarrierFields("Kaiser")
	if !ok || len(fields) != 3 {
		t.Fatalf("expected 3 Kaiser fields, got %v ok=%v", fields, ok)
	}

	fields["company_name"] = "tampered"
	name, _ := maps.Lookup("Kaiser", "company_name")
	if name != "GroupName_1" {
		t.Fatal("mutating the returned map must not affect the field maps")
	}

	if _, ok := maps.CarrierFields("Unknown"); ok {
		t.Fatal("unknown carrier should report ok=false")
	}
}

func TestCarriersSorted(t *testing.T) {
	maps, err := Parse([]byte(fieldMapJSON))
	if err != nil {
		t.Fatalf("failed to parse field maps: %v", err)
	}

	want := []string{"Anthem", "Kaiser"}
	if !reflect.DeepEqual(maps.Carriers(), want) {
		t.Fatalf("expected carriers %v, got %v", want, maps.Carriers())
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"Kaiser": [`)); err == nil {
		t.Fatal("expected parse error")
	}
}
