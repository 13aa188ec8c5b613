package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"electric-field/internal/logging"
	"electric-field/internal/scene"
	"electric-field/internal/viewer"
)

var (
	outDir   string
	format   string
	logLevel string
	save     bool
	show     bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "electric-field",
	Short: "Plot electric fields of superposed point charges",
	Long: `Plot the electric field of discrete point charges approximating
typical distributions: dipole, capacitor plates, intersecting planes,
quadrupole, octupole and nested boxes.

Figures are written to the output directory as PDF unless --format
says otherwise. The boxes scene opens a window unless --save is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the dipole, quadrupole, octupole, capacitor and planes scenes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := newRunner().Demo()
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return err
	},
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render a charge layout described in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := scene.LoadLayoutFile(args[0])
		if err != nil {
			return err
		}
		return present(cmd, l)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in scenes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scene.Names() {
			e, _ := scene.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, e.Short)
		}
	},
}

func newRunner() *scene.Runner {
	r := scene.NewRunner(outDir, logger)
	r.Format = format
	return r
}

// present shows interactive layouts in a window and writes the rest.
func present(cmd *cobra.Command, l scene.Layout) error {
	if (l.Interactive || show) && !save {
		logger.Info("opening window", zap.String("scene", l.Name))
		return viewer.Show(l, logger)
	}
	path, err := newRunner().Run(l)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// sceneCommand exposes a catalog entry with one flag per parameter.
func sceneCommand(e scene.Entry) *cobra.Command {
	args := e.Defaults()
	values := make(map[string]*float64, len(e.Params))

	cmd := &cobra.Command{
		Use:   e.Name,
		Short: e.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for name, v := range values {
				args[name] = *v
			}
			l, err := e.Build(args)
			if err != nil {
				return err
			}
			return present(cmd, l)
		},
	}
	for _, p := range e.Params {
		values[p.Name] = cmd.Flags().Float64(p.Name, p.Default, p.Usage)
	}
	return cmd
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "output directory")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format overriding the file extension (pdf, svg, png, eps)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&save, "save", false, "write interactive scenes to a file instead of opening a window")
	rootCmd.PersistentFlags().BoolVar(&show, "show", false, "open a window instead of writing a file")

	for _, name := range scene.Names() {
		e, _ := scene.Lookup(name)
		rootCmd.AddCommand(sceneCommand(e))
	}
	rootCmd.AddCommand(demoCmd, renderCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	_ = logger.Sync()
}
