package commands

import (
	"strconv"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
)

// NewCreatorsCommand creates the creators command group
func NewCreatorsCommand() *cobra.Command {
	return newResourceCommand(resourceCommandConfig[marvel.Creator]{
		Use:      "creators",
		Aliases:  []string{"creator"},
		Short:    "Browse creators",
		Long:     "List and fetch Marvel creators",
		Singular: "creator",
		ClientFor: func(client marvel.Client) marvel.ResourceClient[marvel.Creator] {
			return client.Creators()
		},
		Header: []string{"ID", "Full Name", "Comics", "Series"},
		Row: func(creator *marvel.Creator) []string {
			return []string{
				strconv.Itoa(creator.ID),
				creator.FullName,
				strconv.Itoa(creator.Comics.Available),
				strconv.Itoa(creator.Series.Available),
			}
		},
	})
}
