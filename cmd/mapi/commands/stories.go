package commands

import (
	"strconv"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
)

// NewStoriesCommand creates the stories command group
func NewStoriesCommand() *cobra.Command {
	return newResourceCommand(resourceCommandConfig[marvel.Story]{
		Use:      "stories",
		Aliases:  []string{"story"},
		Short:    "Browse stories",
		Long:     "List and fetch Marvel stories",
		Singular: "story",
		ClientFor: func(client marvel.Client) marvel.ResourceClient[marvel.Story] {
			return client.Stories()
		},
		Header: []string{"ID", "Title", "Type", "Original Issue"},
		Row: func(story *marvel.Story) []string {
			originalIssue := NotAvailable
			if story.OriginalIssue != nil {
				originalIssue = story.OriginalIssue.Name
			}

			return []string{
				strconv.Itoa(story.ID),
				stringOrDefault(story.Title),
				stringOrDefault(story.Type),
				originalIssue,
			}
		},
	})
}
