package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	filedeps "github.com/pfragkiad/filedeps"
	_ "github.com/pfragkiad/filedeps/source/hclsrc"
	_ "github.com/pfragkiad/filedeps/source/jsonc"
	_ "github.com/pfragkiad/filedeps/source/yamlsrc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `filedeps CLI

Usage:
  filedeps validate -f manifest.json [flags]

Flags:
  -f path          manifest file to validate (.json/.jsonc/.yaml/.yml/.hcl)
  -name string     validator name used as the error-code prefix (default FileValidator)
  -root string     name of the root dependency node (default dependencies)
  -single path     property declaring a single file (repeatable)
  -multi path      property declaring an array of files (repeatable)
  -objects a:f     array property a of objects carrying file field f (repeatable)
  -require list    comma-separated property paths to treat as required
  -log level       report failures via slog: warning, error or critical`)
}

// multiFlag collects repeatable string flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var (
		manifest string
		name     string
		rootName string
		logLevel string
		requires string
		singles  multiFlag
		multis   multiFlag
		objects  multiFlag
	)
	fs.StringVar(&manifest, "f", "", "manifest file to validate")
	fs.StringVar(&name, "name", "FileValidator", "validator name (error-code prefix)")
	fs.StringVar(&rootName, "root", "dependencies", "root dependency node name")
	fs.StringVar(&requires, "require", "", "comma-separated required property paths")
	fs.StringVar(&logLevel, "log", "", "report failures at this severity (warning, error, critical)")
	fs.Var(&singles, "single", "single-file property path")
	fs.Var(&multis, "multi", "array-of-files property path")
	fs.Var(&objects, "objects", "arrayPath:fileField pair")
	_ = fs.Parse(args)

	if manifest == "" || (len(singles) == 0 && len(multis) == 0 && len(objects) == 0) {
		fs.Usage()
		os.Exit(2)
	}

	required := map[string]bool{}
	for _, p := range strings.Split(requires, ",") {
		if p = strings.TrimSpace(p); p != "" {
			required[p] = true
		}
	}

	spec := filedeps.NewFormat(rootName)
	for _, p := range singles {
		ref := spec.Single(p)
		if required[p] {
			ref.Required()
		}
	}
	for _, p := range multis {
		ref := spec.Multi(p)
		if required[p] {
			ref.Required()
		}
	}
	for _, pair := range objects {
		arrayPath, fileField, ok := strings.Cut(pair, ":")
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid -objects value %q, want arrayPath:fileField\n", pair)
			os.Exit(2)
		}
		ref := spec.Objects(arrayPath, fileField)
		if required[arrayPath] {
			ref.Required()
		}
	}

	var opt filedeps.ValidatorOpt
	if logLevel != "" {
		sev, ok := severityFromFlag(logLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown -log level %q\n", logLevel)
			os.Exit(2)
		}
		opt.Sink = filedeps.NewSlogSink(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		opt.Severity = sev
	}

	v := filedeps.NewValidator(name, opt)
	res := v.Validate(manifest, spec)
	res.Switch(
		func(d *filedeps.Dependencies) { printTree(d, "") },
		func(err *filedeps.ValidationError) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", err.Code, err.Message)
			for _, detail := range err.Details {
				fmt.Fprintf(os.Stderr, "  %s\n", detail)
			}
			os.Exit(1)
		},
	)
}

func severityFromFlag(s string) (filedeps.Severity, bool) {
	switch strings.ToLower(s) {
	case "warning":
		return filedeps.SeverityWarning, true
	case "error":
		return filedeps.SeverityError, true
	case "critical":
		return filedeps.SeverityCritical, true
	}
	return 0, false
}

func printTree(d *filedeps.Dependencies, indent string) {
	fmt.Printf("%s%s\n", indent, d.Name)
	for _, s := range d.SingleFiles {
		if s.IsEmpty() {
			fmt.Printf("%s  %s: (not declared)\n", indent, s.Name)
			continue
		}
		fmt.Printf("%s  %s: %s\n", indent, s.Name, s.File.FullPath)
	}
	for _, m := range d.MultipleFiles {
		fmt.Printf("%s  %s:\n", indent, m.Name)
		for _, f := range m.Files {
			fmt.Printf("%s    %s\n", indent, f.FullPath)
		}
	}
	for _, sub := range d.Subdependencies {
		printTree(sub, indent+"  ")
	}
}
