package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	resizable "github.com/grindlemire/go-resizable"
	"github.com/grindlemire/go-resizable/internal/config"
	"github.com/grindlemire/go-resizable/pkg/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the settings and logger shared by every subcommand.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}
	a.log.SetFormatter(&LogFormatter{})

	root := &cobra.Command{
		Use:   "resizable",
		Short: "Distribute and resize panel group layouts",
		Long: `resizable loads a panel group from a YAML or TOML layout file and runs the
allocation engine on it: the initial distribution, boundary drags with
collapse snapping, a rendered preview, or an interactive session.

Every flag can also be set through a RESIZABLE_<FLAG> environment variable,
for example RESIZABLE_STATE_FILE.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "show debug output, including drag session events")
	flags.BoolP("quiet", "q", false, "only show errors")
	flags.Float64("hysteresis", resizable.CollapseHysteresisRatio, "collapse dead zone as a fraction of the collapsed-to-min gap")
	flags.String("normalize", resizable.NormalizeExactSum.String(), "how distribution fixes the sum: exact-sum, respect-bounds or none")
	flags.String("state-file", "", "YAML file sizes are loaded from and saved to, keyed by group id")

	_ = a.v.BindPFlags(flags)
	a.v.SetEnvPrefix("RESIZABLE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.distributeCmd(),
		a.adjustCmd(),
		a.previewCmd(),
		a.demoCmd(),
		versionCmd(),
	)
	return root, a
}

// configure sets up logging for the command about to run.
func (a *app) configure(cmd *cobra.Command) error {
	verbose := a.v.GetBool("verbose")
	quiet := a.v.GetBool("quiet")
	if quiet && verbose {
		return errors.New("both \"-q\" and \"-v\" were specified, please pick only one verbosity option")
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(logrus.InfoLevel)
	if quiet {
		a.log.SetLevel(logrus.ErrorLevel)
	}
	if verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func (a *app) policy() (resizable.Policy, error) {
	norm, err := resizable.ParseNormalization(a.v.GetString("normalize"))
	if err != nil {
		return resizable.Policy{}, err
	}
	return resizable.Policy{
		HysteresisRatio: a.v.GetFloat64("hysteresis"),
		Normalization:   norm,
	}, nil
}

// loadGroup builds the group described by the layout file at path.
func (a *app) loadGroup(path string, extra ...resizable.GroupOption) (*resizable.Group, error) {
	l, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	policy, err := a.policy()
	if err != nil {
		return nil, err
	}

	opts := []resizable.GroupOption{
		resizable.WithPolicy(policy),
		resizable.WithLogger(a.log),
	}
	if state := a.v.GetString("state-file"); state != "" {
		a.log.Debugf("using state file %s", state)
		opts = append(opts, resizable.WithStorage(store.NewFile(state)))
	}

	g, err := l.NewGroup(append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return g, nil
}

// formatSizes renders a size vector as space separated percentages.
func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%.2f", s)
	}
	return strings.Join(parts, " ")
}

func printPanels(w io.Writer, g *resizable.Group) {
	panels := g.Panels()
	sizes := g.Sizes()

	width := 0
	for _, p := range panels {
		width = max(width, len(panelName(p)))
	}
	for i, p := range panels {
		fmt.Fprintf(w, "%-*s %6.2f\n", width, panelName(p), sizes[i])
	}
}

func panelName(p resizable.Panel) string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}
