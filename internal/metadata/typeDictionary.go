// The package used for describing C declarations and mapping their types to Java.
package metadata

// A single raw C token to Java token mapping.
type TypeMapping struct {
	Raw    string
	Target string
}

// The marker and primitive mappings every run starts with.
// Order matters: the rewriter applies the entries one after another.
var seedTypes []TypeMapping = []TypeMapping{
	{"*", "Pointer"},
	{"*[]", "Pointer"},
	{"byte[]", "byte[]"},
	{"*char", "String"},
	{"void", "void"},
	{"bool", "boolean"},
	{"float", "float"},
	{"double", "double"},
	{"int", "int"},
	{"int32_t", "int"},
	{"int32", "int"},
	{"int64", "long"},
	{"uint8_t", "short"},
	{"uint16_t", "short"},
	{"uint32", "int"},
	{"uint64", "long"},
	{"uintptr_t", "long"},
	{"size_t", "long"},
	{"interpType", "int"}, // enum in C
}

// The Java token for declarations that return nothing.
const VoidType string = "void"

// Returns a copy of the seed mappings.
func SeedTypes() []TypeMapping {
	seed := make([]TypeMapping, len(seedTypes))
	copy(seed, seedTypes)
	return seed
}

// Ordered dictionary of C to Java type tokens.
// Enumeration order is insertion order; re-setting a key keeps its position.
type TypeDictionary struct {
	entries []TypeMapping
	index   map[string]int
}

func NewTypeDictionary(seed []TypeMapping) *TypeDictionary {
	dictionary := &TypeDictionary{
		make([]TypeMapping, 0, len(seed)),
		make(map[string]int, len(seed)),
	}

	for _, mapping := range seed {
		dictionary.Set(mapping.Raw, mapping.Target)
	}

	return dictionary
}

func (dictionary *TypeDictionary) Set(raw string, target string) {
	if position, found := dictionary.index[raw]; found {
		dictionary.entries[position].Target = target
		return
	}

	dictionary.index[raw] = len(dictionary.entries)
	dictionary.entries = append(dictionary.entries, TypeMapping{raw, target})
}

// Tries to get the Java token for given raw token
func (dictionary *TypeDictionary) Lookup(raw string) (target string, found bool) {
	position, found := dictionary.index[raw]
	if !found {
		return "", false
	}

	return dictionary.entries[position].Target, true
}

// Reports whether token is one of the Java tokens the dictionary maps to.
func (dictionary *TypeDictionary) HasTarget(token string) bool {
	for _, mapping := range dictionary.entries {
		if mapping.Target == token {
			return true
		}
	}

	return false
}

func (dictionary *TypeDictionary) Entries() []TypeMapping {
	entries := make([]TypeMapping, len(dictionary.entries))
	copy(entries, dictionary.entries)
	return entries
}

func (dictionary *TypeDictionary) Len() int {
	return len(dictionary.entries)
}
