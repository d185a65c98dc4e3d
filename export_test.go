package sunbreeze

// Test-only exports for internal functions.
var (
	CompilePattern = compilePattern
	MatchPath      = matchPath
)
