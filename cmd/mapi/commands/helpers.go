package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/excelsior-io/mapi-client/pkg/mclient"
	"github.com/hashicorp/go-hclog"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrPublicKeyRequired = errors.New("public key is required (use --public-key, MAPI_PUBLIC_KEY, or 'mapi config set-keys')")
	ErrInvalidResourceID = errors.New("resource ID must be a positive integer")
	ErrConfigKeyUnknown  = errors.New("unknown configuration key")
)

// hclogAdapter bridges an hclog.Logger to the client's Logger interface.
type hclogAdapter struct {
	logger hclog.Logger
}

func (a hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flattenFields(fields)...)
}

func (a hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flattenFields(fields)...)
}

func (a hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flattenFields(fields)...)
}

func (a hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flattenFields(fields)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	flat := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		flat = append(flat, key, value)
	}

	return flat
}

// CreateClient builds a Marvel API client from the effective configuration
// (flags, environment, config file).
func CreateClient() (marvel.Client, error) {
	publicKey := viper.GetString("public-key")
	if publicKey == "" {
		return nil, ErrPublicKeyRequired
	}

	level := hclog.Warn
	if viper.GetBool("verbose") {
		level = hclog.Info
	}

	if viper.GetBool("debug") {
		level = hclog.Debug
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "mapi",
		Level:  level,
		Output: os.Stderr,
	})

	client, err := mclient.New(&marvel.Config{
		BaseURL:    viper.GetString("base-url"),
		PublicKey:  publicKey,
		PrivateKey: viper.GetString("private-key"),
		AutoQuery:  viper.GetBool("auto-query"),
		Logger:     hclogAdapter{logger: logger},
		Debug:      viper.GetBool("debug"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// addListFlags registers the pagination and filter flags shared by every list
// command.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "results per page (1-100)")
	cmd.Flags().Int("offset", 0, "number of results to skip")
	cmd.Flags().String("order-by", "", "sort field, prefix with - for descending")
	cmd.Flags().String("modified-since", "", "only results modified since this date (YYYY-MM-DD)")
	cmd.Flags().StringToString("filter", nil, "additional query parameters (key=value)")
}

// buildListParams translates list flags into query parameters. Filter values
// are passed through as strings; the gateway coerces them.
func buildListParams(cmd *cobra.Command) marvel.Params {
	params := marvel.Params{}

	if cmd.Flags().Changed("limit") {
		limit, _ := cmd.Flags().GetInt("limit")
		params["limit"] = limit
	}

	if cmd.Flags().Changed("offset") {
		offset, _ := cmd.Flags().GetInt("offset")
		params["offset"] = offset
	}

	if orderBy, _ := cmd.Flags().GetString("order-by"); orderBy != "" {
		params["orderBy"] = strings.Split(orderBy, ",")
	}

	if modifiedSince, _ := cmd.Flags().GetString("modified-since"); modifiedSince != "" {
		params["modifiedSince"] = modifiedSince
	}

	filters, _ := cmd.Flags().GetStringToString("filter")
	for key, value := range filters {
		params[key] = value
	}

	return params
}

// parseResourceID parses a positional resource ID argument.
func parseResourceID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResourceID, arg)
	}

	return id, nil
}

// renderEncodable writes data as JSON or YAML to stdout.
func renderEncodable(data interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	default:
		return nil
	}
}

// renderTable writes a header and rows as a table to stdout.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, row := range rows {
		_ = table.Append(toAnySlice(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

// renderRawResults prints dynamic results, as returned by related-resource
// queries, in the selected output format.
func renderRawResults(results []marvel.Result, format string) error {
	if format == OutputFormatJSON || format == OutputFormatYAML {
		return renderEncodable(results, format)
	}

	rows := make([][]string, 0, len(results))

	for _, result := range results {
		id := NotAvailable
		if resultID, ok := result.ID(); ok {
			id = strconv.Itoa(resultID)
		}

		name := NotAvailable
		if value, ok := result["name"].(string); ok {
			name = value
		} else if value, ok := result["title"].(string); ok {
			name = value
		}

		rows = append(rows, []string{id, name})
	}

	return renderTable([]string{"ID", "Name"}, rows)
}

// stringOrDefault substitutes a placeholder for empty display values.
func stringOrDefault(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
