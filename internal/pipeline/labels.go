package pipeline

import "sort"

// Label namespaces. Cross-reference keys must be unique within a namespace.
const (
	NamespaceFigure     = "fig"
	NamespaceSuppFigure = "sfig"
	NamespaceTable      = "table"
	NamespaceSuppTable  = "stable"
	NamespaceEquation   = "eq"
	NamespaceSuppNote   = "snote"
	NamespaceSection    = "sec"
)

// knownNamespaces lists every namespace the cross-reference converter
// recognizes. Anything else after "@" is treated as a citation key.
var knownNamespaces = map[string]bool{
	NamespaceFigure:     true,
	NamespaceSuppFigure: true,
	NamespaceTable:      true,
	NamespaceSuppTable:  true,
	NamespaceEquation:   true,
	NamespaceSuppNote:   true,
	NamespaceSection:    true,
}

// labelKey identifies a label within the registry.
type labelKey struct {
	namespace string
	key       string
}

// LabelRegistry maps user-declared labels to their resolved LaTeX label
// strings. It is scoped to one document build and populated as the figure,
// table, header, and note converters encounter {#namespace:key} declarations.
// Redeclaration overwrites the previous entry with a recorded warning; no
// entry is ever deleted during a build.
type LabelRegistry struct {
	entries  map[labelKey]string
	warnings *WarningList
}

// NewLabelRegistry returns an empty registry reporting duplicates to warnings.
func NewLabelRegistry(warnings *WarningList) *LabelRegistry {
	return &LabelRegistry{
		entries:  make(map[labelKey]string),
		warnings: warnings,
	}
}

// Declare records a label. The resolved LaTeX label string is
// "namespace:key". Declaring the same key twice in one namespace overwrites
// the first declaration and records a warning; LaTeX itself will report the
// duplicate label at compile time.
func (r *LabelRegistry) Declare(namespace, key string) string {
	k := labelKey{namespace: namespace, key: key}
	resolved := namespace + ":" + key
	if _, exists := r.entries[k]; exists && r.warnings != nil {
		r.warnings.Addf(CategoryLabel, "duplicate label %q", resolved)
	}
	r.entries[k] = resolved
	return resolved
}

// Resolve looks up a label. Resolution is best-effort: an unresolved
// reference returns "namespace:key" anyway, with ok=false, so the caller can
// still emit the reference command and let LaTeX report the dangling
// reference.
func (r *LabelRegistry) Resolve(namespace, key string) (string, bool) {
	k := labelKey{namespace: namespace, key: key}
	if resolved, ok := r.entries[k]; ok {
		return resolved, true
	}
	return namespace + ":" + key, false
}

// Declared reports whether a label has been declared.
func (r *LabelRegistry) Declared(namespace, key string) bool {
	_, ok := r.entries[labelKey{namespace: namespace, key: key}]
	return ok
}

// Keys returns all declared labels in a namespace, sorted.
func (r *LabelRegistry) Keys(namespace string) []string {
	var keys []string
	for k := range r.entries {
		if k.namespace == namespace {
			keys = append(keys, k.key)
		}
	}
	sort.Strings(keys)
	return keys
}
