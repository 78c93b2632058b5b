// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package framework

import "strings"

// Relevant returns the functions to analyze for a policy type, in catalog
// order. Every policy type maps to a fixed subset; unrecognized types
// default to all five functions.
func Relevant(policyType string) []Function {
	t := strings.ToLower(policyType)

	switch {
	case strings.Contains(t, "isms"), strings.Contains(t, "information security"):
		return catalog
	case strings.Contains(t, "data privacy"), strings.Contains(t, "data security"):
		return subset(Identify, Protect, Detect)
	case strings.Contains(t, "patch"):
		return subset(Identify, Protect, Detect)
	case strings.Contains(t, "risk"):
		return subset(Identify, Respond, Recover)
	default:
		return catalog
	}
}

func subset(names ...string) []Function {
	funcs := make([]Function, 0, len(names))
	for _, name := range names {
		if f, ok := Lookup(name); ok {
			funcs = append(funcs, f)
		}
	}
	return funcs
}
