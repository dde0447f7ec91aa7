// Package packagec is a minimal fixture exercised by an external
// packaging harness. It exposes a module-level constant and a trivial
// holder type; the harness verifies that both survive packaging intact.
package packagec

// Result is the sentinel returned by ReturnResult regardless of what a
// holder was constructed with.
const Result = "package_c"

// ResultHolder stores a single opaque caller-supplied value.
type ResultHolder struct {
	Obj any
}

// NewResultHolder stores obj verbatim. Any value is accepted, including nil.
func NewResultHolder(obj any) *ResultHolder {
	return &ResultHolder{Obj: obj}
}

// ReturnResult returns the package-level Result constant. It does not
// read Obj; the harness relies on that to distinguish module-level state
// from instance state.
func (h *ResultHolder) ReturnResult() string {
	return Result
}
