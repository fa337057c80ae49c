package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edp1096/natural-unit/internal/config"
	"github.com/edp1096/natural-unit/internal/logging"
	"github.com/edp1096/natural-unit/pkg/dimension"
	"github.com/edp1096/natural-unit/pkg/factor"
	"github.com/edp1096/natural-unit/pkg/system"
	"github.com/edp1096/natural-unit/pkg/util"
)

type app struct {
	out    io.Writer
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "natunit",
		Short:         "Convert values between CGS, SI, geometrized and natural units",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}
	config.BindFlags(root.PersistentFlags())
	root.SetOut(out)

	root.AddCommand(a.factorsCmd(), a.convertCmd(), a.dimensionsCmd())
	return root
}

func (a *app) factorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "Print the conversion factor of every dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := system.Between(a.cfg.From, a.cfg.To)
			a.logger.Debug("derived conversion factor",
				zap.Stringer("from", a.cfg.From),
				zap.Stringer("to", a.cfg.To),
				zap.Float64("mass", f.Mass),
				zap.Float64("length", f.Length),
				zap.Float64("time", f.Time))

			fmt.Fprintf(a.out, "%s -> %s\n", a.cfg.From, a.cfg.To)
			return util.FormatFactorTable(a.out, f, a.cfg.Precision)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var (
		dimName string
		invert  bool
	)

	cmd := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Convert values of one dimension between unit systems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dimension.Parse(dimName)
			if err != nil {
				return err
			}

			f := system.Between(a.cfg.From, a.cfg.To)
			for _, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}

				var converted float64
				if invert {
					converted = factor.Invert(value, d, f)
				} else {
					converted = factor.Apply(value, d, f)
				}
				a.logger.Debug("converted value",
					zap.Stringer("dimension", d),
					zap.Bool("invert", invert),
					zap.Float64("in", value),
					zap.Float64("out", converted))

				fmt.Fprintln(a.out, util.FormatPrecision(converted, a.cfg.Precision))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dimName, "dim", "d", "", "dimension of the values (e.g. mass, energy_density)")
	cmd.Flags().BoolVar(&invert, "invert", false, "convert from the target system back into the source system")
	_ = cmd.MarkFlagRequired("dim")

	return cmd
}

func (a *app) dimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List supported dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range dimension.All() {
				fmt.Fprintf(a.out, "%-17s %s\n", d, util.FormatExponents(d))
			}
			return nil
		},
	}
}

func main() {
	root := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		logger := logging.NewOrNop(false)
		logger.Error("natunit failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
