package metadata

import "strings"

// Insertion ordered set of type tokens that have no Java mapping.
type UnsupportedTypes struct {
	types []string
	seen  map[string]struct{}
}

func NewUnsupportedTypes() *UnsupportedTypes {
	return &UnsupportedTypes{
		make([]string, 0),
		make(map[string]struct{}),
	}
}

// Adds token unless it was already registered. Reports whether it was new.
func (registry *UnsupportedTypes) Add(token string) bool {
	if _, found := registry.seen[token]; found {
		return false
	}

	registry.seen[token] = struct{}{}
	registry.types = append(registry.types, token)
	return true
}

// Registers every type of signature that is not a dictionary target.
func (registry *UnsupportedTypes) Classify(signature FunctionSignature, dictionary *TypeDictionary) {
	for _, token := range signature.Types() {
		if !dictionary.HasTarget(token) {
			registry.Add(token)
		}
	}
}

func (registry *UnsupportedTypes) List() []string {
	types := make([]string, len(registry.types))
	copy(types, registry.types)
	return types
}

func (registry *UnsupportedTypes) Len() int {
	return len(registry.types)
}

// Formats the registry as `[a, b, c]`.
func (registry *UnsupportedTypes) String() string {
	return "[" + strings.Join(registry.types, ", ") + "]"
}
