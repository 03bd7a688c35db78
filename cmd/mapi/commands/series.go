package commands

import (
	"strconv"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
)

// NewSeriesCommand creates the series command group
func NewSeriesCommand() *cobra.Command {
	return newResourceCommand(resourceCommandConfig[marvel.Series]{
		Use:      "series",
		Short:    "Browse series",
		Long:     "List and fetch Marvel series",
		Singular: "series",
		ClientFor: func(client marvel.Client) marvel.ResourceClient[marvel.Series] {
			return client.Series()
		},
		Header: []string{"ID", "Title", "Years", "Rating"},
		Row: func(series *marvel.Series) []string {
			return []string{
				strconv.Itoa(series.ID),
				series.Title,
				strconv.Itoa(series.StartYear) + "-" + strconv.Itoa(series.EndYear),
				stringOrDefault(series.Rating),
			}
		},
	})
}
