package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/apimgr/cityweather/src/config"
	"github.com/apimgr/cityweather/src/owm"
	"github.com/apimgr/cityweather/src/paths"
	"github.com/apimgr/cityweather/src/renderer"
	"github.com/apimgr/cityweather/src/utils"
)

// options holds parsed command-line flags
type options struct {
	city       []string
	imperial   bool
	noColor    bool
	configPath string
	secrets    string
	debug      bool
	setup      bool
	version    bool
	help       bool
}

// Execute is the main entry point for the CLI
func Execute(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return NewUsageError(err.Error())
	}

	if opts.version {
		printVersion(stdout)
		return nil
	}
	if opts.help {
		printUsage(stdout)
		return nil
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return NewConfigError(err.Error())
	}

	// Override config with flags
	if opts.noColor {
		cfg.Output.Color = "never"
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if opts.secrets != "" {
		cfg.SecretsFile = opts.secrets
	}

	logger := utils.NewLogger(stderr, utils.ParseLevel(cfg.Logging.Level))

	if opts.setup {
		return runSetupWizard(paths.FindSecrets(cfg.SecretsFile), stdout)
	}

	if len(opts.city) == 0 {
		printUsage(stderr)
		return NewUsageError("the following arguments are required: city")
	}

	return showWeather(cfg, opts, logger, stdout)
}

// showWeather builds the query, fetches and prints one line
func showWeather(cfg *config.CLIConfig, opts *options, logger *utils.Logger, stdout io.Writer) error {
	var keys owm.KeySource
	if cfg.APIKey != "" {
		logger.Debugf("using API key from CITYWEATHER_API_KEY")
		keys = config.EnvKeySource(cfg.APIKey)
	} else {
		secretsPath := paths.FindSecrets(cfg.SecretsFile)
		logger.Debugf("reading API key from %s", secretsPath)
		keys = config.FileKeySource(secretsPath)
	}

	query, err := owm.BuildQuery(opts.city, opts.imperial, keys)
	if err != nil {
		if errors.Is(err, owm.ErrEmptyCity) {
			return NewUsageError(err.Error())
		}
		return NewConfigError(err.Error())
	}

	client := owm.NewClient(cfg.BaseURL(), cfg.Timeout())
	client.UserAgent = UserAgent()
	client.Logger = logger.DebugLogger()

	if cfg.Cache.Enabled {
		cache, err := owm.OpenCache(paths.CacheFile(), cfg.CacheTTL())
		if err != nil {
			logger.Debugf("cache unavailable: %v", err)
		}
		client.Cache = cache
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	report, err := client.Current(ctx, query)
	if err != nil {
		logger.Debugf("fetch failed: %v", err)
		return fetchExitError(err)
	}

	if err := client.Cache.Save(); err != nil {
		logger.Debugf("cache not saved: %v", err)
	}

	logger.Debugf("condition %d (%s)", report.ConditionCode, renderer.ConditionName(report.ConditionCode))

	out, _ := stdout.(*os.File)
	r := renderer.NewOneLineRenderer(renderer.Options{
		Color:   utils.ColorEnabled(cfg.Output.Color, out),
		Emoji:   utils.EmojiEnabled(cfg.Output.Emoji),
		Padding: cfg.Padding(),
	})
	if err := r.Render(stdout, report, opts.imperial); err != nil {
		return NewExitError(fmt.Sprintf("failed to write output: %v", err), ExitGeneralError)
	}
	return nil
}

// parseArgs parses flags that may appear before, between or after city words
func parseArgs(args []string) (*options, error) {
	opts := &options{}

	flagSet := flag.NewFlagSet("cityweather", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	flagSet.BoolVar(&opts.imperial, "i", false, "Display the temperature in imperial units")
	flagSet.BoolVar(&opts.imperial, "imperial", false, "Display the temperature in imperial units")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flagSet.StringVar(&opts.configPath, "config", "", "Config file path")
	flagSet.StringVar(&opts.secrets, "secrets", "", "Path to secrets.ini")
	flagSet.BoolVar(&opts.debug, "debug", false, "Log diagnostics to stderr")
	flagSet.BoolVar(&opts.setup, "setup", false, "Store an API key interactively")
	flagSet.BoolVar(&opts.version, "version", false, "Show version information")
	flagSet.BoolVar(&opts.help, "h", false, "Show help")
	flagSet.BoolVar(&opts.help, "help", false, "Show help")

	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			return nil, err
		}
		rest = flagSet.Args()
		if len(rest) == 0 {
			break
		}
		opts.city = append(opts.city, rest[0])
		rest = rest[1:]
	}

	return opts, nil
}

// printUsage prints the usage information
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "cityweather - gets weather and temperature information for a city")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cityweather <city...> [-i|--imperial]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --imperial     Display the temperature in imperial units")
	fmt.Fprintln(w, "  --no-color         Disable colored output")
	fmt.Fprintln(w, "  --config <path>    Config file path (default: ~/.config/cityweather/cli.yml)")
	fmt.Fprintln(w, "  --secrets <path>   Path to secrets.ini")
	fmt.Fprintln(w, "  --debug            Log diagnostics to stderr")
	fmt.Fprintln(w, "  --setup            Store an API key interactively")
	fmt.Fprintln(w, "  --version          Show version information")
	fmt.Fprintln(w, "  -h, --help         Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cityweather London")
	fmt.Fprintln(w, "  cityweather New York -i")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Credentials:")
	fmt.Fprintln(w, "  secrets.ini in the working directory or ~/.config/cityweather/:")
	fmt.Fprintln(w, "    [openweather]")
	fmt.Fprintln(w, "    api_key = <YOUR-OPENWEATHER-API-KEY>")
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cityweather version %s\n", Version)
	fmt.Fprintf(w, "Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
}
