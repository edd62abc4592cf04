package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

const defaultIndent = 2

// Table collects rows for tablewriter.
type Table struct {
	header []string
	rows   [][]string
	footer string
}

// Header sets the column names.
func (t *Table) Header(columns ...string) {
	t.header = columns
}

// Footer sets a line printed below the table.
func (t *Table) Footer(text string) {
	t.footer = text
}

// Row appends a row.
func (t *Table) Row(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) render(w io.Writer) error {
	header := make([]any, len(t.header))
	for i, column := range t.header {
		header[i] = column
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, row := range t.rows {
		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("appending table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if t.footer != "" {
		_, _ = fmt.Fprintln(w, t.footer)
	}

	return nil
}

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	output := viper.GetString("output")

	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrUnknownOutput, output)
	}
}

// JSONRenderer writes data as indented JSON.
func JSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// YAMLRenderer writes data as YAML.
func YAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// render writes data in the configured format. fill populates the table
// used for the table format.
func render[T any](cmd *cobra.Command, data T, fill func(table *Table)) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return JSONRenderer(w, data)
	case constants.FormatYAML:
		return YAMLRenderer(w, data)
	default:
		table := &Table{}
		fill(table)

		return table.render(w)
	}
}

func formatTime(t outseta.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format("2006-01-02 15:04")
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
