package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhorod/satori-cli/lib/configutil"
	"github.com/mhorod/satori-cli/lib/satori"
	"github.com/mhorod/satori-cli/lib/satori/interactive"
	"github.com/mhorod/satori-cli/lib/satori/pagecache"
	"github.com/mhorod/satori-cli/lib/satori/session"
	"github.com/mhorod/satori-cli/lib/satori/terminal"
	"github.com/mhorod/satori-cli/lib/satori/tokenfile"
	"github.com/mhorod/satori-cli/lib/satori/web"
	"github.com/mhorod/satori-cli/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseURL   string `json:"base_url"`
	TokenPath string `json:"token_path"`
	CacheDir  string `json:"cache_dir"`
}

const defaultBaseURL = "https://satori.tcs.uj.edu.pl"

var (
	app     satori.Satori
	cache   *pagecache.Cache
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "satori",
	Short: "satori is a CLI for the Satori contest judging platform.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func readConfig() Config {
	cfg, err := configutil.ReadRecursively[Config]("satori.json5")
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = tokenfile.DefaultPath()
	}
	if cfg.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.CacheDir = filepath.Join(dir, "satori-cli")
		}
	}
	return cfg
}

func setup() error {
	cfg := readConfig()

	client, err := web.NewClient(web.ClientOptions{BaseURL: cfg.BaseURL})
	if err != nil {
		return err
	}
	cache, err = pagecache.Open(cfg.BaseURL, cfg.CacheDir)
	if err != nil {
		return err
	}

	sess := session.New(session.Options{
		Client: client,
		Parser: web.Parser{},
		Tokens: tokenfile.New(cfg.TokenPath),
		Cache:  cache,
	})
	app = interactive.New(sess, terminal.NewDisplay(), terminal.NewPrompt())
	return nil
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if cache != nil {
		cache.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exit ends the run with a failing status. The display layer has already
// reported the error by the time this is called.
func exit(err error) {
	if err == nil {
		return
	}
	if cache != nil {
		cache.Close()
	}
	os.Exit(1)
}
