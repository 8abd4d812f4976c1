package requirements

// ResolverOptions tunes resolution policy.
type ResolverOptions struct {
	// StrictConditions flips unknown-condition handling from fail-open
	// (omit the group) to fail-closed (include it). Whether a typo in a
	// rule name should under-require or over-require documents is a
	// business policy call, so it is configurable rather than fixed.
	StrictConditions bool
}

// Resolver computes the requirement groups that apply to one applicant.
// It is a pure view over an injected catalog; resolving twice with the
// same context and catalog yields the same ordered output.
type Resolver struct {
	catalog *Catalog
	opts    ResolverOptions
}

// NewResolver creates a resolver over a catalog.
func NewResolver(catalog *Catalog, opts ResolverOptions) *Resolver {
	return &Resolver{catalog: catalog, opts: opts}
}

// Resolve returns the ordered requirement groups for the context: base
// groups first, then conditional groups in catalog order, then a single
// carrier group appended last when the selected carrier has applicable
// addenda. Generic requirements sort before carrier-specific ones so the
// presentation order is stable across calls.
func (r *Resolver) Resolve(ctx ApplicantContext) []RequirementGroup {
	var groups []RequirementGroup

	for _, g := range r.catalog.BaseGroups() {
		groups = append(groups, r.scopeGroup(g, ctx))
	}

	for _, g := range r.catalog.ConditionalGroups() {
		if r.conditionHolds(g.Condition, ctx) {
			groups = append(groups, r.scopeGroup(g, ctx))
		}
	}

	if carrierGroup, ok := r.carrierGroup(ctx); ok {
		groups = append(groups, carrierGroup)
	}

	return groups
}

// conditionHolds evaluates a group condition under the configured
// unknown-name policy.
func (r *Resolver) conditionHolds(name string, ctx ApplicantContext) bool {
	if !Lookup(name) {
		return r.opts.StrictConditions
	}
	return Evaluate(name, ctx)
}

// scopeGroup copies a group, dropping requirements whose carrier scope
// excludes the selected carrier. Requirements without a scope always
// apply. The catalog's slice is never mutated.
func (r *Resolver) scopeGroup(g RequirementGroup, ctx ApplicantContext) RequirementGroup {
	scoped := g
	scoped.Requirements = make([]DocumentRequirement, 0, len(g.Requirements))
	for _, req := range g.Requirements {
		if inCarrierScope(req, ctx.SelectedCarrier) {
			scoped.Requirements = append(scoped.Requirements, req)
		}
	}
	return scoped
}

// carrierGroup builds the trailing carrier-specific group. Addenda with an
// embedded condition are filtered by it; an unknown carrier or an empty
// filtered list means no group, not an error.
func (r *Resolver) carrierGroup(ctx ApplicantContext) (RequirementGroup, bool) {
	if ctx.SelectedCarrier == "" {
		return RequirementGroup{}, false
	}

	var reqs []DocumentRequirement
	for _, req := range r.catalog.CarrierAddenda(ctx.SelectedCarrier) {
		if req.Condition != "" && !r.conditionHolds(req.Condition, ctx) {
			continue
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		return RequirementGroup{}, false
	}

	return RequirementGroup{
		ID:               "carrier:" + ctx.SelectedCarrier,
		Label:            ctx.SelectedCarrier + " Carrier Forms",
		Requirements:     reqs,
		SatisfactionMode: AllRequired,
	}, true
}

func inCarrierScope(req DocumentRequirement, carrier string) bool {
	if len(req.CarrierScope) == 0 {
		return true
	}
	for _, c := range req.CarrierScope {
		if c == carrier {
			return true
		}
	}
	return false
}
