package requirements

import "testing"

func TestAnyOneSatisfaction(t *testing.T) {
	group := RequirementGroup{
		ID:               "payroll_proof",
		SatisfactionMode: AnyOne,
		Requirements: []DocumentRequirement{
			{Type: "DE-9C"},
			{Type: "PayrollLedger", Required: boolPtr(false)},
		},
	}

	if IsGroupSatisfied(group, map[string]bool{}) {
		t.Fatal("empty upload set cannot satisfy ANY_ONE")
	}
	if !IsGroupSatisfied(group, map[string]bool{"DE-9C": true}) {
		t.Fatal("one matching upload should satisfy ANY_ONE")
	}
	// Required flags are irrelevant under ANY_ONE.
	if !IsGroupSatisfied(group, map[string]bool{"PayrollLedger": true}) {
		t.Fatal("an optional requirement still counts under ANY_ONE")
	}
	if IsGroupSatisfied(group, map[string]bool{"Unrelated": true}) {
		t.Fatal("non-member uploads should not satisfy ANY_ONE")
	}
}

func TestAllRequiredSatisfaction(t *testing.T) {
	group := RequirementGroup{
		ID:               "business_docs",
		SatisfactionMode: AllRequired,
		Requirements: []DocumentRequirement{
			{Type: "BusinessLicense"},
			{Type: "ArticlesOfIncorporation"},
			{Type: "StatementOfInformation", Required: boolPtr(false)},
		},
	}

	if IsGroupSatisfied(group, map[string]bool{"BusinessLicense": true}) {
		t.Fatal("missing required document should block ALL_REQUIRED")
	}

	uploaded := map[string]bool{"BusinessLicense": true, "ArticlesOfIncorporation": true}
	if !IsGroupSatisfied(group, uploaded) {
		t.Fatal("optional requirement must not block ALL_REQUIRED")
	}

	// Adding unrelated documents never flips the result.
	uploaded["Unrelated"] = true
	if !IsGroupSatisfied(group, uploaded) {
		t.Fatal("extra uploads must not affect satisfaction")
	}
}

func TestEmptyGroupIsVacuouslySatisfied(t *testing.T) {
	for _, mode := range []SatisfactionMode{AllRequired, AnyOne} {
		group := RequirementGroup{ID: "empty", SatisfactionMode: mode}
		if !IsGroupSatisfied(group, map[string]bool{}) {
			t.Fatalf("empty group under %s should be vacuously satisfied", mode)
		}
	}
}

func TestStatusEmptyGroupsIsComplete(t *testing.T) {
	status := Status(nil, map[string]bool{"DE-9C": true})
	if !status.IsComplete {
		t.Fatal("no groups means nothing is required")
	}
	if status.TotalGroupCount != 0 || status.SatisfiedGroupCount != 0 {
		t.Fatalf("expected zero counts, got %+v", status)
	}
	if len(status.MissingGroups) != 0 {
		t.Fatalf("expected no missing groups, got %d", len(status.MissingGroups))
	}
}

func TestStatusCountsAndMissingOrder(t *testing.T) {
	groups := []RequirementGroup{
		{
			ID:               "payroll_proof",
			SatisfactionMode: AnyOne,
			Requirements:     []DocumentRequirement{{Type: "DE-9C"}, {Type: "PayrollLedger"}},
		},
		{
			ID:               "business_docs",
			SatisfactionMode: AllRequired,
			Requirements:     []DocumentRequirement{{Type: "BusinessLicense"}},
		},
		{
			ID:               "prior_coverage",
			SatisfactionMode: AllRequired,
			Requirements:     []DocumentRequirement{{Type: "CarrierBill"}},
		},
	}

	status := Status(groups, map[string]bool{})
	if status.IsComplete {
		t.Fatal("nothing uploaded, status cannot be complete")
	}
	if status.SatisfiedGroupCount != 0 || status.TotalGroupCount != 3 {
		t.Fatalf("expected 0/3, got %d/%d", status.SatisfiedGroupCount, status.TotalGroupCount)
	}
	if len(status.MissingGroups) != 3 {
		t.Fatalf("expected 3 missing groups, got %d", len(status.MissingGroups))
	}

	status = Status(groups, map[string]bool{"DE-9C": true})
	if status.SatisfiedGroupCount != 1 {
		t.Fatalf("expected 1 satisfied group, got %d", status.SatisfiedGroupCount)
	}
	if status.MissingGroups[0].ID != "business_docs" || status.MissingGroups[1].ID != "prior_coverage" {
		t.Fatalf("missing groups out of order: %v", groupIDs(status.MissingGroups))
	}

	status = Status(groups, map[string]bool{"DE-9C": true, "BusinessLicense": true, "CarrierBill": true})
	if !status.IsComplete {
		t.Fatal("all groups satisfied, expected complete")
	}
	if status.SatisfiedGroupCount != status.TotalGroupCount {
		t.Fatalf("complete status must have equal counts, got %d/%d",
			status.SatisfiedGroupCount, status.TotalGroupCount)
	}
}

func TestStatusMonotonicUnderUploads(t *testing.T) {
	groups := []RequirementGroup{
		{
			ID:               "payroll_proof",
			SatisfactionMode: AnyOne,
			Requirements:     []DocumentRequirement{{Type: "DE-9C"}, {Type: "PayrollLedger"}},
		},
		{
			ID:               "business_docs",
			SatisfactionMode: AllRequired,
			Requirements:     []DocumentRequirement{{Type: "BusinessLicense"}, {Type: "ArticlesOfIncorporation"}},
		},
	}

	uploads := []string{"PayrollLedger", "Unrelated", "BusinessLicense", "DE-9C", "ArticlesOfIncorporation"}
	uploaded := map[string]bool{}
	prev := Status(groups, uploaded).SatisfiedGroupCount

	for _, doc := range uploads {
		uploaded[doc] = true
		count := Status(groups, uploaded).SatisfiedGroupCount
		if count < prev {
			t.Fatalf("satisfied count decreased from %d to %d after uploading %s", prev, count, doc)
		}
		prev = count
	}
}

func TestResolveAndStatusEndToEnd(t *testing.T) {
	r := NewResolver(testCatalog(), ResolverOptions{})
	ctx := ApplicantContext{EmployeeCount: intPtr(10)}

	groups := r.Resolve(ctx)
	status := Status(groups, ctx.UploadedSet())
	if status.IsComplete || len(status.MissingGroups) != 2 {
		t.Fatalf("expected 2 missing groups on a fresh context, got %+v", status)
	}

	ctx.UploadedDocumentTypes = []string{"DE-9C"}
	status = Status(groups, ctx.UploadedSet())
	if status.SatisfiedGroupCount != 1 || status.IsComplete {
		t.Fatalf("expected 1/2 after DE-9C upload, got %+v", status)
	}

	ctx.UploadedDocumentTypes = []string{"DE-9C", "BusinessLicense"}
	status = Status(groups, ctx.UploadedSet())
	if !status.IsComplete {
		t.Fatalf("expected completion, got %+v", status)
	}
}
