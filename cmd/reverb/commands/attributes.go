package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// buildAttributes merges an optional YAML or JSON attribute file with
// path=value assignments into a JSON request body. Values that parse as JSON
// (numbers, booleans, objects, quoted strings) are set as such; anything
// else is set as a string.
func buildAttributes(file string, assignments []string) ([]byte, error) {
	body := []byte("{}")

	if file != "" {
		loaded, err := loadAttributesFile(file)
		if err != nil {
			return nil, err
		}

		body = loaded
	}

	for _, assignment := range assignments {
		path, value, found := strings.Cut(assignment, "=")
		path = strings.TrimSpace(path)

		if !found || path == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidAssignment, assignment)
		}

		var err error
		if gjson.Valid(value) {
			body, err = sjson.SetRawBytes(body, path, []byte(value))
		} else {
			body, err = sjson.SetBytes(body, path, value)
		}

		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", path, err)
		}
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() || len(parsed.Map()) == 0 {
		return nil, constants.ErrNoAttributes
	}

	return body, nil
}

// loadAttributesFile reads a YAML or JSON object and returns it as JSON.
func loadAttributesFile(file string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("reading attributes file: %w", err)
	}

	var attributes map[string]interface{}

	err = yaml.Unmarshal(data, &attributes)
	if err != nil {
		return nil, fmt.Errorf("parsing attributes file %s: %w", file, err)
	}

	if attributes == nil {
		attributes = map[string]interface{}{}
	}

	body, err := json.Marshal(attributes)
	if err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}

	return body, nil
}
