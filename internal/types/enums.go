package types

const (
	ScopeCompile  = "compile"
	ScopeRuntime  = "runtime"
	ScopeProvided = "provided"
	ScopeTest     = "test"
	ScopeSystem   = "system"
	ScopeImport   = "import"
)

// KnownScope reports whether value is a Maven dependency scope.
func KnownScope(value string) bool {
	switch value {
	case ScopeCompile, ScopeRuntime, ScopeProvided, ScopeTest, ScopeSystem, ScopeImport:
		return true
	default:
		return false
	}
}

const PackagingPOM = "pom"

type ResolutionOutcome string

const (
	OutcomeSeeded     ResolutionOutcome = "seeded"
	OutcomeInserted   ResolutionOutcome = "inserted"
	OutcomeReplaced   ResolutionOutcome = "replaced"
	OutcomeKept       ResolutionOutcome = "kept"
	OutcomeExcluded   ResolutionOutcome = "excluded"
	OutcomeUnresolved ResolutionOutcome = "unresolved"
	OutcomeMalformed  ResolutionOutcome = "malformed"
	OutcomeForced     ResolutionOutcome = "forced"
)
