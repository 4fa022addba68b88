package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/peoplegen/internal/output"
	"github.com/zarlcorp/peoplegen/internal/store"
)

func runsCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Manage archived runs",
	}
	cmd.AddCommand(runsListCmd(st), runsExportCmd(st), runsForgetCmd(st))
	return cmd
}

// runInfo is a run without its people, for listings.
type runInfo struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Note      string       `json:"note,omitempty"`
	Params    store.Params `json:"params"`
}

func runsListCmd(st *state) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := st.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				infos := make([]runInfo, 0, len(runs))
				for _, r := range runs {
					infos = append(infos, runInfo{ID: r.ID, CreatedAt: r.CreatedAt, Note: r.Note, Params: r.Params})
				}
				return printJSON(out, infos)
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, zstyle.MutedText.Render("no archived runs"))
				return nil
			}

			for _, r := range runs {
				fmt.Fprintf(out, "  %-36s %8d  seed %-20d %s  %s\n",
					r.ID,
					r.Params.Total,
					r.Params.Seed,
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Note,
				)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func runsExportCmd(st *state) *cobra.Command {
	var format, header string

	cmd := &cobra.Command{
		Use:   "export ID OUTPUT",
		Short: "Write an archived run to OUTPUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, path := args[0], args[1]

			f, h, err := resolveOutput(path, format, header)
			if err != nil {
				return err
			}

			s, err := st.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			run, err := s.Get(id)
			if err != nil {
				return fmt.Errorf("export %s: %w", id, err)
			}

			data, err := output.Render(run.People, f, output.Options{Header: h})
			if err != nil {
				return err
			}
			return writeOutput(path, data, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format, overriding the OUTPUT extension")
	cmd.Flags().StringVarP(&header, "header-format", "H", "snake", "column names: snake, camel or pretty")
	return cmd
}

func runsForgetCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "forget ID",
		Short: "Delete an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := st.openStore(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(args[0]); err != nil {
				return fmt.Errorf("forget %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
