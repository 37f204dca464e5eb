// Package cli implements quotectl, a command line client for the quote
// service REST API.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/quote-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

const commandName = "quotectl"

// BuildInfo identifies the quotectl binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// options holds the persistent flags and the client built from them.
type options struct {
	baseURL  string
	profile  string
	logLevel string

	build  BuildInfo
	client ports.QuoteClient
}

// NewRootCommand returns the quotectl command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	opts := &options{build: build}

	root := &cobra.Command{
		Use:           commandName,
		Short:         "Work with quotes stored in a quote service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			return opts.connect(cmd)
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", "", "quote service URL (default services.quote.base_url)")
	flags.StringVar(&opts.profile, "profile", profile, "configuration profile to load from configs/")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newListCommand(opts),
		newRandomCommand(opts),
		newAddCommand(opts),
		newDeleteCommand(opts),
		newVersionCommand(opts),
	)

	return root
}

// connect loads the configuration profile and builds the quote client.
func (o *options) connect(cmd *cobra.Command) error {
	cfg, err := config.Load(o.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = cfg.Services.Quote.BaseURL
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   o.logLevel,
		Format:  "text",
		Service: commandName,
		Version: o.build.Version,
	}, cmd.ErrOrStderr())

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	o.client = acl.NewQuoteClient(acl.QuoteClientConfig{
		Client:      httpClient,
		ServiceName: cfg.Services.Quote.Name,
		Logger:      logger,
	})

	logger.Debug("quote client ready", slog.String("base_url", baseURL))

	return nil
}

// printQuotes writes quotes as an indented JSON array.
func printQuotes(w io.Writer, quotes []domain.Quote) error {
	return printJSON(w, dto.NewQuoteListResponse(quotes))
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))

	return err
}
