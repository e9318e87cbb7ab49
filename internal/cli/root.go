// Package cli implements the agingd command line: the HTTP server and
// one-shot generation commands sharing the same configuration.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"agingd/internal/config"
)

// options collects persistent flags and the resolved configuration.
type options struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	datasetDir string
	modelsDir  string
	zChannels  int
	backend    string
	backendURL string
	seed       int64
	addr       string

	cfg config.Config
	log zerolog.Logger
	out io.Writer
	err io.Writer
}

// Main runs the CLI with args (without the program name) and returns the
// process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := buildRootCmd(&options{out: stdout, err: stderr})
	root.SetOut(stdout)
	root.SetErr(stderr)
	if len(args) == 0 {
		_ = root.Help()
		return 2
	}
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "agingd:", err)
		return 1
	}
	return 0
}

func buildRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "agingd",
		Short:         "Face aging, morphing and kids generation over a demographic face dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "Config file (.yaml, .yml, .json or .toml)")
	pf.StringVar(&o.envFile, "env-file", "", "dotenv file loaded before reading AGINGD_* variables")
	pf.StringVar(&o.logLevel, "log-level", "", "Log level: debug|info|warn|error (default info)")
	pf.StringVar(&o.logFormat, "log-format", "", "Log format: console|json (default console)")
	pf.StringVar(&o.datasetDir, "dataset-dir", "", "Directory of dataset images (default ./data/UTKFace/unlabeled)")
	pf.StringVar(&o.modelsDir, "models-dir", "", "Directory holding trained checkpoints (default ./trained_models)")
	pf.IntVar(&o.zChannels, "z-channels", 0, "Latent channel count selecting the checkpoint (default 100)")
	pf.StringVar(&o.backend, "backend", "", "Model backend: http|none (default http)")
	pf.StringVar(&o.backendURL, "backend-url", "", "Model worker base URL for the http backend")
	pf.Int64Var(&o.seed, "seed", 0, "Seed for sample selection (0 = random)")

	root.AddCommand(newServeCmd(o), newAgeCmd(o), newMorphCmd(o), newKidsCmd(o), newCheckpointsCmd(o))
	return root
}

// resolve builds the effective configuration: dotenv file, config file,
// AGINGD_* environment, then flags, then defaults.
func (o *options) resolve(cmd *cobra.Command) error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}
	var cfg config.Config
	if o.configPath != "" {
		c, err := config.Load(o.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("log-level", func() { cfg.LogLevel = o.logLevel })
	set("log-format", func() { cfg.LogFormat = o.logFormat })
	set("dataset-dir", func() { cfg.DatasetDir = o.datasetDir; cfg.DatasetBucket = "" })
	set("models-dir", func() { cfg.ModelsDir = o.modelsDir })
	set("z-channels", func() { cfg.ZChannels = o.zChannels })
	set("backend", func() { cfg.Backend = o.backend })
	set("backend-url", func() { cfg.BackendURL = o.backendURL })
	set("seed", func() { cfg.SampleSeed = o.seed })
	set("addr", func() { cfg.Addr = o.addr })
	o.cfg = config.Defaults(cfg)

	log, err := newLogger(o.err, o.cfg.LogLevel, o.cfg.LogFormat)
	if err != nil {
		return err
	}
	o.log = log
	return nil
}
