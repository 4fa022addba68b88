package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/peoplegen/internal/server"
)

func serveCmd(st *state) *cobra.Command {
	var (
		cf       corpusFlags
		addr     string
		maxCount int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated people over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := cf.load(st.logger)
			if err != nil {
				return err
			}

			srv := server.New(set,
				server.WithLogger(st.logger),
				server.WithClock(st.now),
				server.WithMaxCount(maxCount),
			)
			fmt.Fprintln(cmd.ErrOrStderr(), zstyle.MutedText.Render("listening on "+addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&maxCount, "max-count", server.DefaultMaxCount, "largest population one request may ask for")
	return cmd
}
