package metadata

import "regexp"

var typedefPattern = regexp.MustCompile(`^typedef\s(\w+)\s(\w+);`)

// Registers the aliases declared by typedef lines, in file order.
// The underlying type is looked up once in the dictionary as it stands when the line is read;
// unknown underlying types are registered verbatim.
// Lines that do not match the typedef grammar are skipped and reported.
func ResolveTypedefs(dictionary *TypeDictionary, lines []string) []Diagnostic {
	diagnostics := make([]Diagnostic, 0)

	for _, line := range lines {
		match := typedefPattern.FindStringSubmatch(line)
		if match == nil {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    TypedefExtractionFailure,
				Line:    line,
				Message: "Cannot extract type for row",
			})
			continue
		}

		rawType, alias := match[1], match[2]
		if target, found := dictionary.Lookup(rawType); found {
			rawType = target
		}

		dictionary.Set(alias, rawType)
	}

	return diagnostics
}
