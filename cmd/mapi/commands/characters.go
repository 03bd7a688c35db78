package commands

import (
	"strconv"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/spf13/cobra"
)

// NewCharactersCommand creates the characters command group
func NewCharactersCommand() *cobra.Command {
	return newResourceCommand(resourceCommandConfig[marvel.Character]{
		Use:      "characters",
		Aliases:  []string{"character", "char"},
		Short:    "Browse characters",
		Long:     "List and fetch Marvel characters",
		Singular: "character",
		ClientFor: func(client marvel.Client) marvel.ResourceClient[marvel.Character] {
			return client.Characters()
		},
		Header: []string{"ID", "Name", "Comics", "Modified"},
		Row: func(character *marvel.Character) []string {
			return []string{
				strconv.Itoa(character.ID),
				character.Name,
				strconv.Itoa(character.Comics.Available),
				stringOrDefault(character.Modified),
			}
		},
	})
}
