// Generates the Java bindings of the MEOS library from extracted C declarations.
package main

import (
	"log"
	"log/slog"
	"meosgen/internal"
	"meosgen/internal/config"
	"meosgen/internal/logger"
	"meosgen/internal/metadata"
	"meosgen/internal/pipeline"
	"os"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger.Init(cfg.Log)

	if !run(cfg) {
		os.Exit(1)
	}
}

// Runs the generator. Returns false only when the Java class could not be written.
func run(cfg *config.Config) bool {
	input := pipeline.Input{
		Seed:             metadata.SeedTypes(),
		TypedefLines:     readSource(cfg.TypedefsPath),
		DeclarationLines: readSource(cfg.FunctionsPath),
	}

	options := pipeline.Options{LibraryName: cfg.LibraryName, Banner: cfg.Banner()}
	if cfg.GoOutputPath != "" {
		options.GoPackage = cfg.GoPackage
	}

	result := pipeline.Run(input, options)
	for _, diagnostic := range result.Diagnostics {
		slog.Warn(diagnostic.String(), "kind", diagnostic.Kind.String())
	}
	slog.Info(pipeline.FormatUnsupported(result.Unsupported), "count", len(result.Unsupported))

	if err := internal.WriteFileAtomic(cfg.OutputPath, []byte(result.Artifact)); err != nil {
		slog.Error("Error creating file "+cfg.OutputPath, "error", err)
		return false
	}
	slog.Info("The file " + cfg.OutputPath + " was created successfully!")

	if cfg.GoOutputPath != "" && result.GoArtifact != nil {
		if err := internal.WriteFileAtomic(cfg.GoOutputPath, result.GoArtifact); err != nil {
			slog.Error("Error creating file "+cfg.GoOutputPath, "error", err)
		} else {
			slog.Info("The file " + cfg.GoOutputPath + " was created successfully!")
		}
	}

	return true
}

// An unreadable source is reported and treated as empty.
func readSource(path string) []string {
	lines, err := internal.ReadLines(path)
	if err != nil {
		slog.Error("Error reading file", "error", err)
		return nil
	}

	slog.Debug("Read source", "path", path, "lines", len(lines))
	return lines
}
