package parser

import (
	"fmt"

	"sift/internal/diag"
	"sift/internal/source"
)

// scopeStack is the one-pass binding table behind the duplicate-symbol
// check. Redeclaring a name in the same scope is a warning, not an
// error: the later binding wins, as in the fixture language runtime.
type scopeStack struct {
	scopes []map[string]source.Span
}

func newScopeStack() *scopeStack {
	return &scopeStack{scopes: []map[string]source.Span{{}}}
}

func (s *scopeStack) push() {
	s.scopes = append(s.scopes, map[string]source.Span{})
}

func (s *scopeStack) pop() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

func (s *scopeStack) declare(r diag.Reporter, name string, sp source.Span) {
	top := s.scopes[len(s.scopes)-1]
	if prev, ok := top[name]; ok {
		r.Report(diag.SemaDuplicateSymbol, diag.SevWarning, sp,
			fmt.Sprintf("%q is already declared in this scope", name),
			[]diag.Note{{Span: prev, Msg: "previous declaration here"}})
		return
	}
	top[name] = sp
}
