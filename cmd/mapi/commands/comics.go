package commands

import (
	"strconv"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
)

// NewComicsCommand creates the comics command group
func NewComicsCommand() *cobra.Command {
	return newResourceCommand(resourceCommandConfig[marvel.Comic]{
		Use:      "comics",
		Aliases:  []string{"comic"},
		Short:    "Browse comics",
		Long:     "List and fetch Marvel comics",
		Singular: "comic",
		ClientFor: func(client marvel.Client) marvel.ResourceClient[marvel.Comic] {
			return client.Comics()
		},
		Header: []string{"ID", "Title", "Issue", "Format", "Series"},
		Row: func(comic *marvel.Comic) []string {
			return []string{
				strconv.Itoa(comic.ID),
				comic.Title,
				strconv.FormatFloat(comic.IssueNumber, 'f', -1, 64),
				stringOrDefault(comic.Format),
				stringOrDefault(comic.Series.Name),
			}
		},
	})
}
