// Package cli implements peoplegen's command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/peoplegen/internal/config"
	"github.com/zarlcorp/peoplegen/internal/corpus"
	"github.com/zarlcorp/peoplegen/internal/output"
	"github.com/zarlcorp/peoplegen/internal/store"
	"golang.org/x/term"
)

// state is shared by every subcommand of one invocation.
type state struct {
	version string
	verbose bool
	logger  *slog.Logger
	now     func() time.Time

	// readPassword prompts on w and reads a line without echo.
	readPassword func(prompt string, w io.Writer) (string, error)
}

// Execute runs the command line in args (without the program name).
func Execute(ctx context.Context, version string, args []string) error {
	root := NewRootCmd(version)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCmd builds the peoplegen command tree.
func NewRootCmd(version string) *cobra.Command {
	st := &state{
		version:      version,
		now:          time.Now,
		readPassword: ReadPassword,
	}

	root := &cobra.Command{
		Use:           "peoplegen",
		Short:         "Generate realistic fake people from census name lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if st.verbose {
				level = slog.LevelDebug
			}
			st.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "log progress and debug detail to stderr")

	root.AddCommand(
		generateCmd(st),
		runsCmd(st),
		serveCmd(st),
		versionCmd(st),
	)
	return root
}

func versionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "peoplegen %s\n", st.version)
		},
	}
}

// corpusFlags are the name list options shared by generate and serve.
type corpusFlags struct {
	paths    corpus.Paths
	builtin  bool
	keepCase bool
}

func (c *corpusFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&c.paths.Male, "male-names", "M", "", "male first names file (env "+config.EnvMaleFirstNames+")")
	f.StringVarP(&c.paths.Female, "female-names", "F", "", "female first names file (env "+config.EnvFemaleFirstNames+")")
	f.StringVarP(&c.paths.Last, "last-names", "L", "", "last names file (env "+config.EnvLastNames+")")
	f.BoolVar(&c.builtin, "builtin", false, "use the small built-in name lists instead of files")
	f.BoolVar(&c.keepCase, "keep-case", false, "keep names as written instead of title-casing ALL-CAPS entries")
}

func (c *corpusFlags) load(logger *slog.Logger) (corpus.Set, error) {
	if c.builtin {
		return corpus.Builtin(), nil
	}

	paths := config.CorpusPaths(c.paths)
	if err := config.CheckCorpusPaths(paths); err != nil {
		return corpus.Set{}, err
	}

	var opts []corpus.Option
	if !c.keepCase {
		opts = append(opts, corpus.TitleCase())
	}

	set, err := corpus.LoadSet(paths, opts...)
	if err != nil {
		return corpus.Set{}, err
	}
	logger.Debug("loaded corpora",
		"male", set.Male.Len(), "female", set.Female.Len(), "last", set.Last.Len())
	return set, nil
}

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// IsFirstRun checks whether the archive in dir has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "salt"))
	return errors.Is(err, fs.ErrNotExist)
}

func (st *state) archivePassword(dir string, w io.Writer) (string, error) {
	if p := os.Getenv(config.EnvArchivePassword); p != "" {
		return p, nil
	}

	if !IsFirstRun(dir) {
		return st.readPassword("archive password: ", w)
	}

	pass, err := st.readPassword("new archive password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := st.readPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", errors.New("passwords do not match")
	}
	return pass, nil
}

// openStore opens the run archive in the data directory, prompting for the
// password unless the environment provides it.
func (st *state) openStore(w io.Writer) (*store.Store, error) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	pass, err := st.archivePassword(dir, w)
	if err != nil {
		return nil, err
	}

	return store.Open(zfilesystem.NewOSFileSystem(dir), pass)
}

// writeOutput writes data to path, or to w when path is "-".
func writeOutput(path string, data []byte, w io.Writer) error {
	if path == "-" {
		_, err := w.Write(data)
		return err
	}

	fsys := zfilesystem.NewOSFileSystem(filepath.Dir(path))
	if err := fsys.WriteFile(filepath.Base(path), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// resolveOutput picks the output format and header style. An explicit format
// wins over the extension of path; "-" (stdout) defaults to JSON Lines.
func resolveOutput(path, format, header string) (output.Format, output.HeaderStyle, error) {
	h, err := output.ParseHeaderStyle(header)
	if err != nil {
		return 0, 0, err
	}

	var f output.Format
	switch {
	case format != "":
		f, err = output.ParseFormat(format)
	case path == "-":
		f = output.JSONL
	default:
		f, err = output.FormatFromPath(path)
	}
	if err != nil {
		return 0, 0, err
	}
	return f, h, nil
}
