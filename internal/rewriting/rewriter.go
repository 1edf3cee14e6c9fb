// The package used for turning C declarations into Java declarations, one line at a time.
package rewriting

import (
	"meosgen/internal/metadata"
	"regexp"
	"strings"
)

// Keywords that carry no meaning at the FFI boundary.
var qualifiers []string = []string{"extern ", "const ", "static inline "}

var (
	charPointerPattern   = regexp.MustCompile(`\bchar\s\*`)
	doublePointerPattern = regexp.MustCompile(`\w+\s\*\*`)
	singlePointerPattern = regexp.MustCompile(`\w+\s\*([^*]|$)`)

	tzStrPattern        = regexp.MustCompile(`\*char\stz_str\b`)
	voidParamsPattern   = regexp.MustCompile(`\(void\)`)
	synchronizedPattern = regexp.MustCompile(`\bsynchronized\b`)
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rewrites raw C declarations with a fixed dictionary.
type Rewriter struct {
	rules []rule
}

// Compiles one substitution rule per dictionary entry, in enumeration order.
// The dictionary must not change afterwards.
func NewRewriter(dictionary *metadata.TypeDictionary) Rewriter {
	rules := make([]rule, 0, dictionary.Len())
	for _, mapping := range dictionary.Entries() {
		rules = append(rules, rule{
			regexp.MustCompile(`((?:^|\(|\s)+)` + regexp.QuoteMeta(mapping.Raw) + `\s`),
			"${1}" + strings.ReplaceAll(mapping.Target, "$", "$$") + " ",
		})
	}

	return Rewriter{rules}
}

// Rewrites a single declaration line. Blank lines are returned unchanged.
func (rewriter Rewriter) Rewrite(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}

	line = StripQualifiers(line)
	line = NormalizePointers(line)
	line = ApplyOverrides(line)
	return rewriter.Substitute(line)
}

func (rewriter Rewriter) RewriteAll(lines []string) []string {
	rewritten := make([]string, len(lines))
	for i, line := range lines {
		rewritten[i] = rewriter.Rewrite(line)
	}

	return rewritten
}

// Replaces dictionary tokens following the start of line, `(` or whitespace.
// Every rule runs over the output of the previous one.
func (rewriter Rewriter) Substitute(line string) string {
	for _, r := range rewriter.rules {
		line = r.pattern.ReplaceAllString(line, r.replacement)
	}

	return line
}

func StripQualifiers(line string) string {
	for _, qualifier := range qualifiers {
		line = strings.ReplaceAll(line, qualifier, "")
	}

	return line
}

// Replaces pointer notation with marker tokens.
// Double pointers are handled before single ones.
func NormalizePointers(line string) string {
	line = charPointerPattern.ReplaceAllString(line, "*char ")
	line = doublePointerPattern.ReplaceAllString(line, "*[] ")
	return singlePointerPattern.ReplaceAllString(line, "* ${1}")
}

// Applies the hand written fixes for known declarations.
func ApplyOverrides(line string) string {
	line = tzStrPattern.ReplaceAllString(line, "byte[] tz_str")      // meos_initialize(const char *tz_str)
	line = voidParamsPattern.ReplaceAllString(line, "()")            // meos_finish(void)
	return synchronizedPattern.ReplaceAllString(line, "synchronize") // reserved in Java
}
