package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/peoplegen/internal/output"
	"github.com/zarlcorp/peoplegen/internal/people"
	"github.com/zarlcorp/peoplegen/internal/report"
	"github.com/zarlcorp/peoplegen/internal/store"
)

type generateFlags struct {
	corpus corpusFlags

	femalePct float64
	malePct   float64

	ssn     bool
	ssnMode string

	salary      bool
	salaryMean  float64
	salarySigma float64

	ids      bool
	idFormat string

	header  string
	format  string
	yearMin int
	yearMax int
	seed    uint64

	noShuffle bool
	save      bool
	quiet     bool
}

func generateCmd(st *state) *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate OUTPUT TOTAL",
		Short: "Generate TOTAL people into OUTPUT (.csv, .json, .jsonl or .xlsx; - for stdout)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, st, &gf, args[0], args[1])
		},
	}

	gf.corpus.register(cmd)

	f := cmd.Flags()
	f.Float64VarP(&gf.femalePct, "female-pct", "f", 50, "percentage of women")
	f.Float64VarP(&gf.malePct, "male-pct", "m", 50, "percentage of men")
	f.BoolVarP(&gf.ssn, "ssn", "s", false, "include fake social security numbers")
	f.StringVar(&gf.ssnMode, "ssn-mode", "random", "ssn generation: random or sequential")
	f.BoolVarP(&gf.salary, "salary", "S", false, "include a normally distributed salary")
	f.Float64Var(&gf.salaryMean, "salary-mean", people.DefaultSalaryMean, "salary mean")
	f.Float64Var(&gf.salarySigma, "salary-sigma", people.DefaultSalarySigma, "salary standard deviation")
	f.BoolVarP(&gf.ids, "id", "i", false, "include an id column")
	f.StringVar(&gf.idFormat, "id-format", "seq", "id format: seq or uuid")
	f.StringVarP(&gf.header, "header-format", "H", "snake", "column names: snake, camel or pretty")
	f.StringVar(&gf.format, "format", "", "output format, overriding the OUTPUT extension")
	f.IntVarP(&gf.yearMin, "year-min", "y", 0, fmt.Sprintf("earliest birth year (default %d years ago)", people.DefaultMaxAge))
	f.IntVarP(&gf.yearMax, "year-max", "Y", 0, fmt.Sprintf("latest birth year (default %d years ago)", people.DefaultMinAge))
	f.Uint64Var(&gf.seed, "seed", 0, "seed for a reproducible run (default random)")
	f.BoolVar(&gf.noShuffle, "no-shuffle", false, "keep men first, then women")
	f.BoolVar(&gf.save, "save", false, "store the run in the encrypted archive")
	f.BoolVarP(&gf.quiet, "quiet", "q", false, "do not print the run summary")

	return cmd
}

func runGenerate(cmd *cobra.Command, st *state, gf *generateFlags, out, totalArg string) error {
	total, err := strconv.Atoi(totalArg)
	if err != nil {
		return fmt.Errorf("total %q is not a number", totalArg)
	}
	if total <= 0 {
		return fmt.Errorf("%w: %d (must be at least 1)", people.ErrInvalidCount, total)
	}

	cfg, err := gf.config(cmd, total, st.now())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, header, err := resolveOutput(out, gf.format, gf.header)
	if err != nil {
		return err
	}

	set, err := gf.corpus.load(st.logger)
	if err != nil {
		return err
	}

	opts := []people.BuildOption{people.WithLogger(st.logger)}
	var bar *progressbar.ProgressBar
	if st.verbose {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, people.WithProgress(func(done, _ int) { _ = bar.Set(done) }))
	}

	pop, err := people.Build(set, cfg, opts...)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	data, err := output.Render(pop, format, output.Options{Header: header})
	if err != nil {
		return err
	}
	if err := writeOutput(out, data, cmd.OutOrStdout()); err != nil {
		return err
	}
	st.logger.Debug("wrote population", "path", out, "format", format, "bytes", len(data))

	errOut := cmd.ErrOrStderr()
	if !gf.quiet {
		sum, err := report.Summarize(pop, st.now())
		if err != nil {
			return err
		}
		fmt.Fprint(errOut, sum.Render(out))
	}

	if gf.save {
		s, err := st.openStore(errOut)
		if err != nil {
			return err
		}
		defer s.Close()

		run := store.Run{
			ID:        uuid.NewString(),
			CreatedAt: st.now().UTC(),
			Note:      out,
			Params:    store.ParamsOf(cfg, pop.Seed),
			People:    pop,
		}
		if err := s.Save(run); err != nil {
			return err
		}
		fmt.Fprintln(errOut, zstyle.StatusOK.Render("saved run "+run.ID))
	}

	return nil
}

// config turns the flags into a run config. It does not validate it.
func (gf *generateFlags) config(cmd *cobra.Command, total int, now time.Time) (people.Config, error) {
	cfg := people.DefaultConfig(total, now)

	female := gf.femalePct
	f := cmd.Flags()
	switch {
	case f.Changed("female-pct") && f.Changed("male-pct"):
		if gf.femalePct+gf.malePct != 100 {
			return cfg, fmt.Errorf("%w: female %v%% and male %v%% must add up to 100",
				people.ErrInvalidRatio, gf.femalePct, gf.malePct)
		}
	case f.Changed("male-pct"):
		female = 100 - gf.malePct
	}
	cfg.FemaleFraction = female / 100

	minYear, maxYear := cfg.BirthFrom.Year(), cfg.BirthTo.Year()
	if gf.yearMin != 0 {
		minYear = gf.yearMin
	}
	if gf.yearMax != 0 {
		maxYear = gf.yearMax
	}
	cfg.BirthFrom, cfg.BirthTo = people.YearRange(minYear, maxYear)

	var err error
	cfg.IncludeSSN = gf.ssn
	if cfg.SSNMode, err = people.ParseSSNMode(gf.ssnMode); err != nil {
		return cfg, err
	}

	cfg.IncludeSalary = gf.salary
	cfg.SalaryMean = gf.salaryMean
	cfg.SalarySigma = gf.salarySigma

	if gf.ids {
		if cfg.IDs, err = people.ParseIDMode(gf.idFormat); err != nil {
			return cfg, err
		}
		if cfg.IDs == people.IDNone {
			cfg.IDs = people.IDSequential
		}
	}

	if f.Changed("seed") {
		seed := gf.seed
		cfg.Seed = &seed
	}
	cfg.Shuffle = !gf.noShuffle

	return cfg, nil
}
