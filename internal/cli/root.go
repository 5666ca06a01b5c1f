package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dshills/code-review/internal/config"
	"github.com/dshills/code-review/internal/diag"
	"github.com/dshills/code-review/internal/metaphor"
	"github.com/dshills/code-review/internal/output"
	"github.com/dshills/code-review/internal/review"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1"

// Exit codes.
const (
	ExitSuccess     = 0
	ExitUsageError  = 1
	ExitFormatError = 2
	ExitInputError  = 3
	ExitOutputError = 4
)

var (
	flagOutput        string
	flagGuidelineDirs []string
)

// compiler renders the assembled review document.
var compiler review.Compiler = metaphor.NewCompiler()

func newRootCmd(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code-review [flags] file...",
		Short: "Generate an AI prompt for code review from input files",
		Long: "code-review builds a review prompt from the given source files and the .m6r\n" +
			"guideline files found in the guideline directories. The prompt is written to\n" +
			"standard output or to the file named by --output.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args, stdout)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&flagOutput, "output", "o", "", "Output file (default: stdout)")
	flags.StringArrayVarP(&flagGuidelineDirs, "guideline-dir", "g", nil,
		"Add a directory to search for .m6r files (repeatable, default: current directory)")
	flags.SetNormalizeFunc(normalizeFlagName)

	return cmd
}

// normalizeFlagName accepts --guideline-path as a spelling of
// --guideline-dir.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "guideline-path" {
		name = "guideline-dir"
	}
	return pflag.NormalizedName(name)
}

func runReview(cmd *cobra.Command, args []string, stdout io.Writer) error {
	if cmd.Flags().Changed("output") && flagOutput == "" {
		return diag.Usagef("output file name must not be empty")
	}

	cfg, err := config.Load(config.Flags{
		Output:        flagOutput,
		GuidelineDirs: flagGuidelineDirs,
		Inputs:        args,
	})
	if err != nil {
		return err
	}
	slog.Debug("resolved configuration",
		"guidelineDirs", cfg.GuidelineDirs(),
		"inputs", len(cfg.Inputs()),
		"output", cfg.Output())

	artifact, err := review.Run(cfg, compiler)
	if err != nil {
		return err
	}
	return output.WriteArtifact(stdout, artifact, cfg.Output())
}

// resetFlags resets the package-level flag variables to their zero values.
func resetFlags() {
	flagOutput = ""
	flagGuidelineDirs = nil
}

// Run executes the root command and returns an exit code.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	slog.SetDefault(newLogger(config.ReadEnv().LogLevel, stderr))
	resetFlags()

	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	diag.Write(stderr, err)
	code := exitCodeFor(err)
	if code == ExitUsageError {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	}
	return code
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	switch diag.KindOf(err) {
	case diag.KindFormat:
		return ExitFormatError
	case diag.KindInputOpen:
		return ExitInputError
	case diag.KindOutputWrite:
		return ExitOutputError
	default:
		return ExitUsageError
	}
}
