// terrace - LOD terrain meshing with Transvoxel stitching.
//
// Commands:
//
//	generate  - Mesh the regions around a viewer and export them as GLB
//	inspect   - Print the regions and triangle counts of a GLB export
//	fly       - Stream terrain around a moving viewer in the terminal
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/charmbracelet/fang"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/taigrr/terrace/pkg/config"
)

var version = "dev"

// options are the flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	policy     string
	seed       int64
	seedSet    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "terrace",
		Short: "Seamless level-of-detail terrain meshing",
		Long: "terrace samples a noise density field in cube regions sized by their " +
			"distance to a viewer and meshes them with Transvoxel, stitching every " +
			"face that borders a coarser region.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.seedSet = cmd.Flags().Changed("seed")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides the configuration")
	flags.StringVar(&opts.policy, "policy", "", `subdivision policy, "distance" or "branch"`)
	flags.Int64Var(&opts.seed, "seed", 0, "noise seed, overrides the configuration")

	root.AddCommand(
		newGenerateCmd(&opts),
		newInspectCmd(),
		newFlyCmd(&opts),
	)
	return root
}

// load reads the configuration, applies flag overrides and sets up logging.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.policy != "" {
		cfg.Streaming.Policy = o.policy
	}
	if o.seedSet {
		cfg.Noise.Seed = o.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("invalid flags").Wrap(err)
	}

	logs.SetLevel(logs.ParseLevel(cfg.Log.Level))
	logs.Encoder = json.Marshal
	errors.Encoder = json.Marshal
	return cfg, nil
}
