package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resourceCommandConfig wires one catalog resource type into the standard
// list/get/related command set.
type resourceCommandConfig[T any] struct {
	Use      string
	Aliases  []string
	Short    string
	Long     string
	Singular string

	// ClientFor selects the typed resource client from the API client.
	ClientFor func(client marvel.Client) marvel.ResourceClient[T]

	// Header and Row shape the table output of list and get.
	Header []string
	Row    func(resource *T) []string
}

// newResourceCommand builds the command group for one resource type.
func newResourceCommand[T any](config resourceCommandConfig[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.Use,
		Aliases: config.Aliases,
		Short:   config.Short,
		Long:    config.Long,
	}

	cmd.AddCommand(newResourceListCommand(config))
	cmd.AddCommand(newResourceGetCommand(config))
	cmd.AddCommand(newResourceRelatedCommand(config))

	return cmd
}

func newResourceListCommand[T any](config resourceCommandConfig[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + config.Use,
		Long:  "List " + config.Use + " from the Marvel catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := buildListParams(cmd)

			page, err := config.ClientFor(client).List(ctx, params)
			if err != nil {
				return fmt.Errorf("listing %s: %w", config.Use, err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncodable(page, output)
			}

			if len(page.Results) == 0 {
				_, _ = fmt.Fprintf(os.Stdout, "No %s found\n", config.Use)

				return nil
			}

			rows := make([][]string, 0, len(page.Results))
			for i := range page.Results {
				rows = append(rows, config.Row(&page.Results[i]))
			}

			err = renderTable(config.Header, rows)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Showing %d-%d of %d %s\n",
				page.Offset+1, page.Offset+page.Count, page.Total, config.Use)

			return nil
		},
	}

	addListFlags(cmd)

	return cmd
}

func newResourceGetCommand[T any](config resourceCommandConfig[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get " + strings.ToUpper(config.Singular) + "_ID",
		Short: "Get a " + config.Singular,
		Long:  "Get a single " + config.Singular + " by its catalog ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resource, err := config.ClientFor(client).Get(context.Background(), id)
			if err != nil {
				if marvel.IsNotFound(err) {
					return fmt.Errorf("%s %d: %w", config.Singular, id, err)
				}

				return fmt.Errorf("getting %s %d: %w", config.Singular, id, err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncodable(resource, output)
			}

			return renderTable(config.Header, [][]string{config.Row(resource)})
		},
	}
}

func newResourceRelatedCommand[T any](config resourceCommandConfig[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related " + strings.ToUpper(config.Singular) + "_ID TYPE",
		Short: "List related resources",
		Long: "List resources of another type related to one " + config.Singular +
			", e.g. the comics a character appears in",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			sub := marvel.ResourceType(args[1])

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := buildListParams(cmd)

			query, err := config.ClientFor(client).QueryRelated(id, sub, params)
			if err != nil {
				return fmt.Errorf("building related query: %w", err)
			}

			_, err = query.Fetch(context.Background())
			if err != nil {
				return fmt.Errorf("listing related %s: %w", sub, err)
			}

			output := viper.GetString("output")

			err = renderRawResults(query.Results(), output)
			if err != nil {
				return err
			}

			if output != OutputFormatJSON && output != OutputFormatYAML {
				_, _ = fmt.Fprintf(os.Stdout, "Showing %d of %d %s\n",
					query.Count(), query.Total(), sub)
			}

			return nil
		},
	}

	addListFlags(cmd)

	return cmd
}
