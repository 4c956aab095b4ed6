package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/showcase/internal/config"
	"github.com/Bitlatte/showcase/internal/content"
	"github.com/Bitlatte/showcase/internal/logging"
)

var (
	cfgFile   string
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Blog & project showcase",
	Long: `showcase serves a homepage of blog posts and projects with search,
type and tag filters and sorting, Markdown detail pages and a small JSON API.
Content comes from a directory of Markdown files or the built-in sample.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, found, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logger = l

	if found {
		logger.Debug("using config file", zap.String("path", cfgFile))
	} else {
		logger.Debug("no config file found, using defaults and environment")
	}
	return nil
}

func loadStore() (*content.Store, error) {
	c, err := content.Load(appConfig.ContentDir, logger)
	if err != nil {
		return nil, err
	}
	return content.NewStore(c)
}
