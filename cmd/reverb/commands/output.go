package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NotAvailable fills empty table cells.
const NotAvailable = "N/A"

func outputFormat() string {
	return strings.ToLower(viper.GetString("output"))
}

func renderJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(value)
}

func renderYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return encoder.Close()
}

// renderDocument writes a decoded JSON document in the structured formats.
// It reports false for table output so the caller can draw its own table.
func renderDocument(w io.Writer, document interface{}) (bool, error) {
	switch outputFormat() {
	case constants.FormatJSON:
		return true, renderJSON(w, document)
	case constants.FormatYAML:
		return true, renderYAML(w, document)
	default:
		return false, nil
	}
}

// responseDocument decodes a response body for structured output. Bodies that
// are not JSON are returned as a string.
func responseDocument(resp *reverb.Response) interface{} {
	var document interface{}

	err := json.Unmarshal(resp.Body, &document)
	if err != nil {
		return string(resp.Body)
	}

	return document
}

func renderPropertyTable(w io.Writer, rows [][2]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row[0], orNotAvailable(row[1]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderResponse prints the status and message of a write operation and
// fails on a non-2xx status.
func renderResponse(w io.Writer, resp *reverb.Response) error {
	handled, err := renderDocument(w, map[string]interface{}{
		"status_code": resp.StatusCode,
		"body":        responseDocument(resp),
	})
	if err != nil {
		return err
	}

	if !handled {
		err = renderPropertyTable(w, [][2]string{
			{"Status", fmt.Sprintf("%d", resp.StatusCode)},
			{"Message", resp.Message()},
		})
		if err != nil {
			return err
		}
	}

	return checkStatus(resp)
}

func checkStatus(resp *reverb.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	if message := resp.Message(); message != "" {
		return fmt.Errorf("%w: %d: %s", constants.ErrUnexpectedStatus, resp.StatusCode, message)
	}

	return fmt.Errorf("%w: %d", constants.ErrUnexpectedStatus, resp.StatusCode)
}

func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
