package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/driver"
)

const cliToolVersion = "pascaline 0.1.0-dev"

var errManifestNotFound = errors.New("program.yml not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runProgram(args[1:])
	case "check":
		return checkProgram(args[1:])
	default:
		return runProgram(args)
	}
}

// runProgram executes a source file: an explicit path argument, or the
// main program of the nearest program.yml when invoked bare. Program
// output and diagnostics share stdout; exit code 1 means the parse
// reported errors, 2 means execution stopped on a runtime error.
func runProgram(args []string) int {
	path, manifest, err := resolveSource(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if manifest != nil && len(manifest.Args) > 0 {
		fmt.Fprintf(os.Stderr, "warning: program arguments are not supported yet; ignoring %s\n", strings.Join(manifest.Args, " "))
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}

	outcome, err := driver.New(os.Stdout).Run(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if outcome.Errors > 0 {
		fmt.Fprintln(os.Stderr, color.RedString("%d error(s) found in %s", outcome.Errors, path))
		return 1
	}
	if outcome.RuntimeErr != nil {
		return 2
	}
	return 0
}

// checkProgram parses a source file without executing it. With -ast the
// parsed tree is dumped to stdout, errors or not.
func checkProgram(args []string) int {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	dumpTree := flags.Bool("ast", false, "print the parsed tree")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	path, _, err := resolveSource(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}

	outcome := driver.New(os.Stdout).Check(source)
	if *dumpTree && outcome.Tree != nil {
		ast.Dump(os.Stdout, outcome.Tree)
	}
	if outcome.Errors > 0 {
		fmt.Fprintln(os.Stderr, color.RedString("%d error(s) found in %s", outcome.Errors, path))
		return 1
	}
	fmt.Fprintln(os.Stderr, color.GreenString("%s: no errors found", path))
	return 0
}

// resolveSource decides which source file a subcommand operates on: the
// explicit path argument when one is given, otherwise the main program
// named by the nearest program.yml.
func resolveSource(args []string) (string, *driver.Manifest, error) {
	switch len(args) {
	case 0:
		manifestPath, err := findManifest(".")
		if err != nil {
			return "", nil, err
		}
		manifest, err := driver.LoadManifest(manifestPath)
		if err != nil {
			return "", nil, err
		}
		mainPath, err := manifest.MainPath()
		if err != nil {
			return "", nil, err
		}
		return mainPath, manifest, nil
	case 1:
		return args[0], nil, nil
	default:
		return "", nil, fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
}

// findManifest walks from start upwards to the filesystem root looking
// for a program.yml.
func findManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, "program.yml")
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no program.yml found from %s upwards: %w", origin, errManifestNotFound)
		}
		dir = parent
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pascaline run [file.pas]")
	fmt.Fprintln(os.Stderr, "  pascaline check [-ast] [file.pas]")
	fmt.Fprintln(os.Stderr, "  pascaline <file.pas>")
	fmt.Fprintln(os.Stderr, "  pascaline --version")
}
