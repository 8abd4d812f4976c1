package requirements

import "testing"

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestEvaluateHasPriorCoverage(t *testing.T) {
	ctx := ApplicantContext{HasPriorCoverage: boolPtr(true)}
	if !Evaluate("has_prior_coverage", ctx) {
		t.Fatal("expected has_prior_coverage to hold")
	}

	ctx.HasPriorCoverage = boolPtr(false)
	if Evaluate("has_prior_coverage", ctx) {
		t.Fatal("expected has_prior_coverage to be false")
	}
	if !Evaluate("no_prior_coverage", ctx) {
		t.Fatal("expected no_prior_coverage to hold")
	}
}

func TestEvaluateUnsetFieldsAreFalse(t *testing.T) {
	ctx := ApplicantContext{}
	if Evaluate("has_prior_coverage", ctx) {
		t.Fatal("unset prior coverage should evaluate false")
	}
	if Evaluate("no_prior_coverage", ctx) {
		t.Fatal("no_prior_coverage needs an explicit answer, not absence")
	}
	if Evaluate("employee_count_over:10", ctx) {
		t.Fatal("unset employee count should evaluate false")
	}
}

func TestEvaluateEmployeeCountThresholds(t *testing.T) {
	ctx := ApplicantContext{EmployeeCount: intPtr(50)}

	if Evaluate("employee_count_over:50", ctx) {
		t.Fatal("50 is not over 50")
	}
	if !Evaluate("employee_count_over:49", ctx) {
		t.Fatal("50 is over 49")
	}
	if !Evaluate("employee_count_at_most:50", ctx) {
		t.Fatal("50 is at most 50")
	}
	if Evaluate("employee_count_at_most:49", ctx) {
		t.Fatal("50 is not at most 49")
	}
}

func TestEvaluateMissingDocument(t *testing.T) {
	ctx := ApplicantContext{UploadedDocumentTypes: []string{"DE-9C"}}

	if Evaluate("missing_document:DE-9C", ctx) {
		t.Fatal("DE-9C is uploaded, should not be missing")
	}
	if !Evaluate("missing_document:BusinessLicense", ctx) {
		t.Fatal("BusinessLicense is not uploaded, should be missing")
	}
	if Evaluate("missing_document", ctx) {
		t.Fatal("missing_document without an argument should evaluate false")
	}
}

func TestEvaluateUnknownConditionIsFalse(t *testing.T) {
	ctx := ApplicantContext{HasPriorCoverage: boolPtr(true), EmployeeCount: intPtr(100)}

	if Evaluate("has_pryor_coverage", ctx) {
		t.Fatal("mistyped condition name must evaluate false")
	}
	if Evaluate("", ctx) {
		t.Fatal("empty condition name must evaluate false")
	}
	if Lookup("has_pryor_coverage") {
		t.Fatal("mistyped condition name should not be recognized")
	}
	if !Lookup("employee_count_over:50") {
		t.Fatal("parameterized condition head should be recognized")
	}
}

func TestEvaluateMalformedThresholdIsFalse(t *testing.T) {
	ctx := ApplicantContext{EmployeeCount: intPtr(100)}
	if Evaluate("employee_count_over:many", ctx) {
		t.Fatal("non-numeric threshold should evaluate false")
	}
	if Evaluate("employee_count_over", ctx) {
		t.Fatal("threshold condition without an argument should evaluate false")
	}
}
