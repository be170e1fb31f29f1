package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ChicagoDave/tradecalc/internal/server"
	"github.com/ChicagoDave/tradecalc/pkg/bending"
	"github.com/ChicagoDave/tradecalc/pkg/circuit"
	"github.com/ChicagoDave/tradecalc/pkg/conduit"
	"github.com/ChicagoDave/tradecalc/pkg/nec"
	"github.com/ChicagoDave/tradecalc/pkg/wiring"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "tradecalc",
		Short:        "Residential electrical-trade calculators and reference tables",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(voltageDropCmd())
	rootCmd.AddCommand(fillCmd())
	rootCmd.AddCommand(fillFactorCmd())
	rootCmd.AddCommand(shrinkCmd())
	rootCmd.AddCommand(offsetCmd())
	rootCmd.AddCommand(switchCmd())
	rootCmd.AddCommand(troubleshootCmd())
	rootCmd.AddCommand(checklistCmd())
	rootCmd.AddCommand(lotoCmd())
	rootCmd.AddCommand(groundCmd())
	rootCmd.AddCommand(tablesCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

func voltageDropCmd() *cobra.Command {
	var material string

	cmd := &cobra.Command{
		Use:   "vd [voltage] [current] [length-ft] [gauge]",
		Short: "Percent voltage drop for a branch circuit",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args[:3], "voltage", "current", "length")
			if err != nil {
				return err
			}
			gauge, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("gauge: %w", err)
			}
			run := wiring.Run{
				Voltage:  nums[0],
				Current:  nums[1],
				Length:   nums[2],
				Gauge:    gauge,
				Material: wiring.ParseMaterial(material),
			}
			logger.Debug("voltage drop", zap.Any("run", run))
			d, err := wiring.VoltageDrop(run)
			if err != nil {
				return err
			}
			printVoltageDrop(cmd.OutOrStdout(), run, d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&material, "material", "m", "copper", "conductor material (copper or aluminum)")
	return cmd
}

func fillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill [conduit-area] [conductor-area] [conductors]",
		Short: "Check conduit fill against the max for the conductor count",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args[:2], "conduit-area", "conductor-area")
			if err != nil {
				return err
			}
			count, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("conductors: %w", err)
			}
			if nums[0] <= 0 {
				return errors.New("conduit-area must be > 0")
			}
			printFill(cmd.OutOrStdout(), conduit.Fill(nums[0], nums[1], count))
			return nil
		},
	}
}

func fillFactorCmd() *cobra.Command {
	var wireType string

	cmd := &cobra.Command{
		Use:   "fill-factor [conductors]",
		Short: "Max fill ratio for a conductor count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("conductors: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", conduit.MaxFillFactor(wireType, count))
			return nil
		},
	}

	cmd.Flags().StringVar(&wireType, "wire-type", "THHN", "conductor insulation type")
	return cmd
}

func shrinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shrink [height-in] [angle]",
		Short: "Conduit shrink for an offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args, "height", "angle")
			if err != nil {
				return err
			}
			shrink, report := bending.OffsetShrink(nums[0], nums[1])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shrink: %.3f in\n", shrink)
			if report.HasWarnings() {
				fmt.Fprintln(out)
				printValidationReport(out, report)
			}
			return nil
		},
	}
}

func offsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offset [height-in] [angle]",
		Short: "Bend marks and shrink for a two-bend offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args, "height", "angle")
			if err != nil {
				return err
			}
			layout, report := bending.Offset(nums[0], nums[1])
			out := cmd.OutOrStdout()
			printOffset(out, layout)
			if report.HasWarnings() {
				fmt.Fprintln(out)
				printValidationReport(out, report)
			}
			return nil
		},
	}
}

func switchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [door-switch] [bed-switch]",
		Short: "Lamp state for a pair of 3-way switches (true/false)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			door, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("door-switch: %w", err)
			}
			bed, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("bed-switch: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), circuit.SolveThreeWay(door, bed))
			return nil
		},
	}
}

func troubleshootCmd() *cobra.Command {
	var tripped bool

	cmd := &cobra.Command{
		Use:   "troubleshoot [panel-voltage] [continuity-ohms]",
		Short: "Walk the no-power diagnostic tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args, "panel-voltage", "continuity-ohms")
			if err != nil {
				return err
			}
			d := circuit.TroubleshootNoPower(nums[0], tripped, nums[1])
			fmt.Fprintln(cmd.OutOrStdout(), d.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&tripped, "tripped", false, "breaker handle is tripped")
	return cmd
}

func checklistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Systematic troubleshooting steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, step := range circuit.TroubleshootingChecklist() {
				fmt.Fprintln(cmd.OutOrStdout(), step)
			}
			return nil
		},
	}
}

func lotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loto",
		Short: "Lockout/tagout procedure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), circuit.LOTOProcedure())
			return nil
		},
	}
}

func groundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ground [ocpd-amps]",
		Short: "Minimum copper equipment grounding conductor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amps, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ocpd-amps: %w", err)
			}
			gauge, err := nec.SizeGroundConductor(amps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d A -> %d AWG copper\n", amps, gauge)
			return nil
		},
	}
}

func tablesCmd() *cobra.Command {
	var xlsxPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the reference lookup tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd.OutOrStdout(), xlsxPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the tables to an .xlsx workbook")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func runCmd() *cobra.Command {
	var xlsxPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run [project-path]",
		Short: "Evaluate every calculation in a project's job.yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd.OutOrStdout(), args[0], xlsxPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write results to an .xlsx workbook")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the JSON API server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			project := ""
			if len(args) == 1 {
				project = args[0]
			}
			srv := server.New(project, port, logger)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		out[i] = v
	}
	return out, nil
}
