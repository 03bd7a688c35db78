package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/cmd/mapi/commands"
	"github.com/spf13/cobra"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

func TestResourceCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command *cobra.Command
		use     string
		aliases []string
	}{
		{name: "characters", command: commands.NewCharactersCommand(), use: "characters", aliases: []string{"character", "char"}},
		{name: "comics", command: commands.NewComicsCommand(), use: "comics", aliases: []string{"comic"}},
		{name: "creators", command: commands.NewCreatorsCommand(), use: "creators", aliases: []string{"creator"}},
		{name: "events", command: commands.NewEventsCommand(), use: "events", aliases: []string{"event"}},
		{name: "series", command: commands.NewSeriesCommand(), use: "series", aliases: nil},
		{name: "stories", command: commands.NewStoriesCommand(), use: "stories", aliases: []string{"story"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.use, testCase.command.Use)
			assert.Equal(t, testCase.aliases, testCase.command.Aliases)

			// Every resource group carries the same subcommand set
			names := subcommandNames(testCase.command)
			assert.Contains(t, names, "list")
			assert.Contains(t, names, "get")
			assert.Contains(t, names, "related")
		})
	}
}

func TestResourceListFlags(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCharactersCommand()

	var listCmd *cobra.Command

	for _, subcmd := range cmd.Commands() {
		if subcmd.Name() == "list" {
			listCmd = subcmd
		}
	}

	require.NotNil(t, listCmd)
	assert.NotNil(t, listCmd.Flags().Lookup("limit"))
	assert.NotNil(t, listCmd.Flags().Lookup("offset"))
	assert.NotNil(t, listCmd.Flags().Lookup("order-by"))
	assert.NotNil(t, listCmd.Flags().Lookup("modified-since"))
	assert.NotNil(t, listCmd.Flags().Lookup("filter"))
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.0.0", "abc123", "2026-08-31")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "view")
	assert.Contains(t, names, "set-keys")
	assert.Contains(t, names, "set")
}
