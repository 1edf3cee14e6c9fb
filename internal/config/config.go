package config

import (
	"errors"
	"flag"
	"fmt"
	"meosgen/internal/logger"
	"os"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/joho/godotenv"
)

const (
	defaultTypedefsPath  string = "tmp/types.h"
	defaultFunctionsPath string = "tmp/functions.h"
	defaultOutputPath    string = "../functions.java"
	defaultLibraryName   string = "meos"
	defaultGoPackage     string = "meos"
)

type Config struct {
	TypedefsPath  string
	FunctionsPath string
	OutputPath    string
	LibraryName   string
	GoOutputPath  string
	GoPackage     string
	NativeVersion *version.Version
	Log           logger.Config
}

// The comment stamped on generated artifacts, empty when no version was configured.
func (config *Config) Banner() string {
	if config.NativeVersion == nil {
		return ""
	}

	return fmt.Sprintf("Generated against %s %s", config.LibraryName, config.NativeVersion.String())
}

// Load reads an optional .env file, the environment and then args.
// Flags win over environment variables, which win over the defaults.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	flags := flag.NewFlagSet("meosgen", flag.ContinueOnError)

	typedefsPath := flags.String("typedefs", fromEnv("MEOSGEN_TYPEDEFS", defaultTypedefsPath), "The file with one C typedef per line.")
	functionsPath := flags.String("functions", fromEnv("MEOSGEN_FUNCTIONS", defaultFunctionsPath), "The file with one C function declaration per line.")
	outputPath := flags.String("output", fromEnv("MEOSGEN_OUTPUT", defaultOutputPath), "The path of the generated Java class.")
	libraryName := flags.String("library", fromEnv("MEOSGEN_LIBRARY", defaultLibraryName), "The name of the native library to load.")
	goOutputPath := flags.String("go-output", fromEnv("MEOSGEN_GO_OUTPUT", ""), "If given, the path of the generated Go bindings.")
	goPackage := flags.String("go-package", fromEnv("MEOSGEN_GO_PACKAGE", defaultGoPackage), "The package name of the generated Go bindings.")
	nativeVersion := flags.String("meos-version", fromEnv("MEOSGEN_MEOS_VERSION", ""), "The version of the native library the inputs were extracted from.")
	logLevel := flags.String("log-level", fromEnv("MEOSGEN_LOG_LEVEL", "info"), "One of debug, info, warn, error.")
	logFormat := flags.String("log-format", fromEnv("MEOSGEN_LOG_FORMAT", "text"), "Either text or json.")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing arguments: %w", err)
	}

	config := &Config{
		TypedefsPath:  *typedefsPath,
		FunctionsPath: *functionsPath,
		OutputPath:    *outputPath,
		LibraryName:   *libraryName,
		GoOutputPath:  *goOutputPath,
		GoPackage:     *goPackage,
		Log:           logger.DefaultConfig(),
	}

	if strings.TrimSpace(config.LibraryName) == "" {
		return nil, errors.New("library name must not be empty")
	}

	if config.GoOutputPath != "" && strings.TrimSpace(config.GoPackage) == "" {
		return nil, errors.New("go package must not be empty when go output is requested")
	}

	if raw := strings.TrimSpace(*nativeVersion); raw != "" {
		parsed, err := version.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid native library version %q: %w", raw, err)
		}
		config.NativeVersion = parsed
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(*logFormat)
	if err != nil {
		return nil, err
	}
	config.Log.Level = level
	config.Log.Format = format

	return config, nil
}

func fromEnv(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}
