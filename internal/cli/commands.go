package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

func newListCommand(opts *options) *cobra.Command {
	var subject, attributedTo string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes, optionally filtered by subject or attribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var (
				quotes []domain.Quote
				err    error
			)

			switch {
			case cmd.Flags().Changed("subject"):
				quotes, err = opts.client.ListBySubject(ctx, subject)
			case cmd.Flags().Changed("attributed-to"):
				quotes, err = opts.client.ListByAttributedTo(ctx, attributedTo)
			default:
				quotes, err = opts.client.ListQuotes(ctx)
			}

			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), quotes)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "only quotes tagged with this subject")
	cmd.Flags().StringVar(&attributedTo, "attributed-to", "", "only quotes attributed to this person")
	cmd.MarkFlagsMutuallyExclusive("subject", "attributed-to")

	return cmd
}

func newRandomCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quote, err := opts.client.RandomQuote(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), dto.NewQuoteResponse(quote))
		},
	}
}

func newAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file.json>",
		Short: "Add the quotes listed in a JSON file",
		Long: "Add the quotes listed in a JSON file. The file holds an array of\n" +
			`{"text": ..., "attributedTo": ..., "subjects": [...]} objects, added in order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readQuoteFile(args[0])
			if err != nil {
				return err
			}

			added := make([]domain.Quote, 0, len(data))
			for _, d := range data {
				quote, err := opts.client.AddQuote(cmd.Context(), d)
				if err != nil {
					return fmt.Errorf("added %d of %d quotes: %w", len(added), len(data), err)
				}

				added = append(added, quote)
			}

			if len(added) != len(data) {
				return fmt.Errorf("added %d of %d quotes", len(added), len(data))
			}

			return printQuotes(cmd.OutOrStdout(), added)
		},
	}
}

// readQuoteFile reads a JSON array of quotes. Each entry must pass the
// same checks the service applies.
func readQuoteFile(path string) ([]domain.QuoteData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var reqs []dto.QuoteRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	data := make([]domain.QuoteData, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return nil, fmt.Errorf("quote %d in %s: %w", i, path, err)
		}

		data = append(data, reqs[i].ToDomain())
	}

	return data, nil
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quote by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return domain.NewValidationErrorWithValue("id", "must be an integer", args[0])
			}

			if err := opts.client.DeleteQuote(cmd.Context(), id); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]int64{"deleted": id})
		},
	}
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		Short:                 "Print " + commandName + " version",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			b := opts.build
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (commit %s, built %s)\n",
				commandName, b.Version, b.Commit, b.BuildTime)
		},
	}
}
