// Package convert narrows a Slackbot custom-responses export down to the
// trigger/response pairs read by the bot configuration.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/slackconv/pkg/jsonvalue"
	"github.com/sirupsen/logrus"
)

const (
	responsesKey = "responses"
	triggersKey  = "triggers"
	indent       = "  "
)

var (
	// ErrFileAccess is returned when the input file cannot be opened or read.
	ErrFileAccess = errors.New("cannot read input file")
	// ErrParse is returned when the input is not valid JSON.
	ErrParse = errors.New("cannot parse input")
	// ErrShape is returned when the document or one of its records lacks a
	// required key or holds the wrong kind of value.
	ErrShape = errors.New("unexpected document shape")
)

// Record is a single trigger/response pairing. Both values are copied from
// the input untouched.
type Record struct {
	Triggers  jsonvalue.Value
	Responses jsonvalue.Value
}

// Project walks the responses list of doc in order and returns one Record per
// element. It stops at the first element that does not carry both keys.
func Project(doc jsonvalue.Value) ([]Record, error) {
	if doc.Kind != jsonvalue.Object {
		return nil, fmt.Errorf("%w: top-level value is %s, want object", ErrShape, doc.Kind)
	}
	list, ok := doc.Get(responsesKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrShape, responsesKey)
	}
	if list.Kind != jsonvalue.Array {
		return nil, fmt.Errorf("%w: %q is %s, want array", ErrShape, responsesKey, list.Kind)
	}

	records := make([]Record, 0, len(list.Items))
	for i, item := range list.Items {
		if item.Kind != jsonvalue.Object {
			return nil, fmt.Errorf("%w: record %d is %s, want object", ErrShape, i, item.Kind)
		}
		triggers, ok := item.Get(triggersKey)
		if !ok {
			return nil, fmt.Errorf("%w: record %d: missing %q key", ErrShape, i, triggersKey)
		}
		responses, ok := item.Get(responsesKey)
		if !ok {
			return nil, fmt.Errorf("%w: record %d: missing %q key", ErrShape, i, responsesKey)
		}
		records = append(records, Record{Triggers: triggers, Responses: responses})
	}
	return records, nil
}

// Render serializes records as {"responses": [...]} with two-space
// indentation. The result has no trailing newline.
func Render(records []Record) ([]byte, error) {
	items := make([]jsonvalue.Value, len(records))
	for i, r := range records {
		items[i] = jsonvalue.NewObject(
			jsonvalue.Member{Key: triggersKey, Value: r.Triggers},
			jsonvalue.Member{Key: responsesKey, Value: r.Responses},
		)
	}
	doc := jsonvalue.NewObject(jsonvalue.Member{Key: responsesKey, Value: jsonvalue.NewArray(items...)})

	out, err := jsonvalue.MarshalIndent(doc, indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return out, nil
}

// Convert parses data, projects its records and renders the result.
func Convert(data []byte) ([]byte, error) {
	_, out, err := convert(data)
	return out, err
}

func convert(data []byte) ([]Record, []byte, error) {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	records, err := Project(doc)
	if err != nil {
		return nil, nil, err
	}
	out, err := Render(records)
	if err != nil {
		return nil, nil, err
	}
	return records, out, nil
}

// ConvertFile reads the export at path and converts it.
func ConvertFile(path string, log *logrus.Logger) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"path": path, "bytes": len(data)}).Debug("Read input")

	records, out, err := convert(data)
	if err != nil {
		return nil, err
	}
	log.WithField("records", len(records)).Debug("Projected responses")
	return out, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, path, err)
	}
	return data, nil
}
