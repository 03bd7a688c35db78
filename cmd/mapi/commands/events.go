package commands

import (
	"strconv"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	return newResourceCommand(resourceCommandConfig[marvel.Event]{
		Use:      "events",
		Aliases:  []string{"event"},
		Short:    "Browse events",
		Long:     "List and fetch Marvel crossover events",
		Singular: "event",
		ClientFor: func(client marvel.Client) marvel.ResourceClient[marvel.Event] {
			return client.Events()
		},
		Header: []string{"ID", "Title", "Start", "End"},
		Row: func(event *marvel.Event) []string {
			return []string{
				strconv.Itoa(event.ID),
				event.Title,
				stringOrDefault(event.Start),
				stringOrDefault(event.End),
			}
		},
	})
}
