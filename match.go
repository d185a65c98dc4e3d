package sunbreeze

import "strings"

// Params holds the path parameters bound during route matching, keyed by
// placeholder name.
type Params map[string]string

// segment is one compiled element of a route pattern: either a literal that
// must match exactly, or a placeholder that binds a single path segment.
type segment struct {
	literal string
	param   string // placeholder name; empty for literals
}

// compilePattern splits a route pattern into segments and validates its
// placeholders. Placeholders have the form {name}, where name is a non-empty
// identifier unique within the pattern. Compilation happens once at
// registration time; matching never re-parses the pattern.
func compilePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, &PatternError{Pattern: pattern, Reason: "must begin with '/'"}
	}

	parts := strings.Split(pattern[1:], "/")
	segs := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for _, part := range parts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if !validParamName(name) {
				return nil, &PatternError{Pattern: pattern, Reason: "invalid placeholder " + part}
			}
			if seen[name] {
				return nil, &PatternError{Pattern: pattern, Reason: "duplicate placeholder {" + name + "}"}
			}
			seen[name] = true
			segs = append(segs, segment{param: name})
			continue
		}
		if strings.ContainsAny(part, "{}") {
			return nil, &PatternError{Pattern: pattern, Reason: "malformed placeholder in segment " + part}
		}
		segs = append(segs, segment{literal: part})
	}

	return segs, nil
}

// validParamName reports whether name is a non-empty Go-style identifier.
func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// matchPath tests a concrete request path against compiled segments. A match
// requires equal segment counts, exact literal equality, and a non-empty
// value for every placeholder. Returns the bound parameters and whether the
// path matched.
func matchPath(segs []segment, path string) (Params, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}

	parts := strings.Split(path[1:], "/")
	if len(parts) != len(segs) {
		return nil, false
	}

	params := make(Params)
	for i, seg := range segs {
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			params[seg.param] = parts[i]
			continue
		}
		if parts[i] != seg.literal {
			return nil, false
		}
	}

	return params, true
}
