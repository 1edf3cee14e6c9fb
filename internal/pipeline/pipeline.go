// Package pipeline drives a whole generator run without touching the filesystem.
package pipeline

import (
	"fmt"
	"meosgen/internal/generation"
	"meosgen/internal/metadata"
	"meosgen/internal/rewriting"
	"strings"
)

type Input struct {
	Seed             []metadata.TypeMapping
	TypedefLines     []string
	DeclarationLines []string
}

type Options struct {
	LibraryName string

	// Empty disables the Go artifact.
	GoPackage string

	// Written as a comment on top of every artifact when not empty.
	Banner string
}

type Result struct {
	Artifact       string
	GoArtifact     []byte
	RewrittenLines []string
	Signatures     []metadata.FunctionSignature
	Unsupported    []string
	Diagnostics    []metadata.Diagnostic
}

// Run builds the dictionary, rewrites and parses every declaration and emits the artifacts.
func Run(input Input, options Options) Result {
	dictionary := metadata.NewTypeDictionary(input.Seed)
	diagnostics := metadata.ResolveTypedefs(dictionary, input.TypedefLines)

	rewriter := rewriting.NewRewriter(dictionary)
	rewritten := rewriter.RewriteAll(input.DeclarationLines)

	unsupported := metadata.NewUnsupportedTypes()
	generator := generation.NewGenerator(options.LibraryName)
	generator.Banner = options.Banner
	goGenerator := generation.NewGoGenerator(options.GoPackage, options.LibraryName)
	goGenerator.Banner = options.Banner

	signatures := make([]metadata.FunctionSignature, 0, len(rewritten))
	for _, line := range rewritten {
		if strings.TrimSpace(line) == "" {
			continue
		}

		signature := metadata.ParseSignature(line)
		unsupported.Classify(signature, dictionary)
		if !signature.IsConsistent() {
			message := fmt.Sprintf("Found %d parameter names but %d parameter types", len(signature.ParamNames), len(signature.ParamTypes))
			diagnostics = append(diagnostics, metadata.Diagnostic{Kind: metadata.ParameterMismatch, Line: line, Message: message})
		}

		generator.RegisterFunction(line, signature)
		goGenerator.RegisterFunction(signature)
		signatures = append(signatures, signature)
	}

	result := Result{
		Artifact:       generator.Generate(),
		RewrittenLines: rewritten,
		Signatures:     signatures,
		Unsupported:    unsupported.List(),
		Diagnostics:    diagnostics,
	}

	if options.GoPackage != "" {
		result.GoArtifact, result.Diagnostics = generateGo(goGenerator, result.Diagnostics)
	}

	return result
}

func generateGo(goGenerator generation.GoGenerator, diagnostics []metadata.Diagnostic) ([]byte, []metadata.Diagnostic) {
	for _, name := range goGenerator.Skipped {
		diagnostics = append(diagnostics, metadata.Diagnostic{
			Kind:    metadata.EmissionFailure,
			Line:    name,
			Message: "Skipped go binding for function",
		})
	}

	content, err := goGenerator.Generate()
	if err != nil {
		diagnostics = append(diagnostics, metadata.Diagnostic{
			Kind:    metadata.EmissionFailure,
			Message: err.Error(),
		})
		return nil, diagnostics
	}

	return content, diagnostics
}

// Formats the unsupported types the way they are reported at the end of a run.
func FormatUnsupported(types []string) string {
	return "Unsupported types: [" + strings.Join(types, ", ") + "]"
}
