package requirements

import (
	"strconv"
	"strings"
)

// ApplicantContext is the read-only snapshot of employer attributes and
// uploads that requirement resolution runs against. Ownership of the data
// stays with the calling flow; the engine never mutates it.
type ApplicantContext struct {
	HasPriorCoverage      *bool
	SelectedCarrier       string
	EmployeeCount         *int
	UploadedDocumentTypes []string
}

// UploadedSet returns the uploaded document types as a set.
func (c ApplicantContext) UploadedSet() map[string]bool {
	set := make(map[string]bool, len(c.UploadedDocumentTypes))
	for _, t := range c.UploadedDocumentTypes {
		set[t] = true
	}
	return set
}

// conditionFunc evaluates one condition head against a context. arg is the
// text after the colon in a parameterized condition name, empty otherwise.
type conditionFunc func(arg string, ctx ApplicantContext) bool

// conditionRegistry is the closed set of recognized condition heads.
// Condition names are either a bare head ("has_prior_coverage") or a
// parameterized head:arg pair ("employee_count_over:50").
var conditionRegistry = map[string]conditionFunc{
	"has_prior_coverage": func(_ string, ctx ApplicantContext) bool {
		return ctx.HasPriorCoverage != nil && *ctx.HasPriorCoverage
	},
	"no_prior_coverage": func(_ string, ctx ApplicantContext) bool {
		return ctx.HasPriorCoverage != nil && !*ctx.HasPriorCoverage
	},
	"employee_count_over": func(arg string, ctx ApplicantContext) bool {
		threshold, err := strconv.Atoi(arg)
		if err != nil || ctx.EmployeeCount == nil {
			return false
		}
		return *ctx.EmployeeCount > threshold
	},
	"employee_count_at_most": func(arg string, ctx ApplicantContext) bool {
		threshold, err := strconv.Atoi(arg)
		if err != nil || ctx.EmployeeCount == nil {
			return false
		}
		return *ctx.EmployeeCount <= threshold
	},
	"missing_document": func(arg string, ctx ApplicantContext) bool {
		if arg == "" {
			return false
		}
		return !ctx.UploadedSet()[arg]
	},
}

// Lookup reports whether a condition name is recognized, without
// evaluating it.
func Lookup(name string) bool {
	head, _, _ := strings.Cut(name, ":")
	_, ok := conditionRegistry[strings.TrimSpace(head)]
	return ok
}

// Evaluate maps a named condition to a boolean for the given context.
// Unrecognized names evaluate to false rather than erroring: a mistyped
// rule name in configuration must never spuriously block an applicant.
func Evaluate(name string, ctx ApplicantContext) bool {
	head, arg, _ := strings.Cut(name, ":")
	fn, ok := conditionRegistry[strings.TrimSpace(head)]
	if !ok {
		return false
	}
	return fn(strings.TrimSpace(arg), ctx)
}
