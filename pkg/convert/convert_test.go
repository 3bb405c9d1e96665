package convert_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/slackconv/pkg/convert"
	"github.com/grovetools/slackconv/pkg/jsonvalue"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("EndToEnd", func(t *testing.T) {
		out, err := convert.Convert([]byte(`{"responses": [{"triggers": ["hi"], "responses": ["hello"], "extra": 1}]}`))
		require.NoError(t, err)

		want := `{
  "responses": [
    {
      "triggers": [
        "hi"
      ],
      "responses": [
        "hello"
      ]
    }
  ]
}`
		assert.Equal(t, want, string(out))
	})

	t.Run("EmptyList", func(t *testing.T) {
		out, err := convert.Convert([]byte(`{"responses": []}`))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"responses\": []\n}", string(out))
	})

	t.Run("UnicodePreserved", func(t *testing.T) {
		out, err := convert.Convert([]byte(`{"responses": [{"triggers": ["café"], "responses": ["☕"]}]}`))
		require.NoError(t, err)
		assert.Contains(t, string(out), "café")
		assert.Contains(t, string(out), "☕")
		assert.NotContains(t, string(out), `\u`)
	})

	t.Run("FixedKeyOrder", func(t *testing.T) {
		out, err := convert.Convert([]byte(`{"responses": [{"responses": "b", "id": 3, "triggers": "a"}]}`))
		require.NoError(t, err)
		s := string(out)
		assert.Less(t, strings.Index(s, `"triggers"`), strings.LastIndex(s, `"responses"`))
		assert.NotContains(t, s, `"id"`)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := convert.Convert([]byte(`{"responses": [{"triggers": {"z": 1, "a": [true, null]}, "responses": 2.50, "x": "y"}]}`))
		require.NoError(t, err)
		second, err := convert.Convert(first)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("ShapeErrors", func(t *testing.T) {
		inputs := []string{
			`[]`,
			`{"other": []}`,
			`{"responses": {}}`,
			`{"responses": null}`,
			`{"responses": ["hi"]}`,
			`{"responses": [{"triggers": ["hi"]}]}`,
			`{"responses": [{"responses": ["hi"]}]}`,
		}
		for _, input := range inputs {
			out, err := convert.Convert([]byte(input))
			assert.ErrorIs(t, err, convert.ErrShape, input)
			assert.Nil(t, out, input)
		}
	})

	t.Run("ParseError", func(t *testing.T) {
		out, err := convert.Convert([]byte(`{"responses": [`))
		assert.ErrorIs(t, err, convert.ErrParse)
		assert.ErrorIs(t, err, jsonvalue.ErrSyntax)
		assert.Nil(t, out)
	})
}

func TestProject(t *testing.T) {
	doc, err := jsonvalue.Parse([]byte(`{
		"meta": {"team": "T1"},
		"responses": [
			{"id": 1, "triggers": ["a"], "responses": ["1"]},
			{"id": 2, "triggers": "b", "responses": {"r": 2}},
			{"id": 3, "triggers": [], "responses": null}
		]
	}`))
	require.NoError(t, err)

	records, err := convert.Project(doc)
	require.NoError(t, err)
	require.Len(t, records, 3)

	list, _ := doc.Get("responses")
	for i, r := range records {
		triggers, _ := list.Items[i].Get("triggers")
		responses, _ := list.Items[i].Get("responses")
		assert.Equal(t, triggers, r.Triggers, "record %d", i)
		assert.Equal(t, responses, r.Responses, "record %d", i)
	}

	t.Run("StopsAtFirstBadRecord", func(t *testing.T) {
		doc, err := jsonvalue.Parse([]byte(`{"responses": [{"triggers": 1, "responses": 2}, {"triggers": 3}, {}]}`))
		require.NoError(t, err)
		records, err := convert.Project(doc)
		assert.ErrorIs(t, err, convert.ErrShape)
		assert.Contains(t, err.Error(), "record 1")
		assert.Nil(t, records)
	})
}

func TestConvertFile(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	t.Run("ReadsFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"responses": [{"triggers": ["hi"], "responses": ["hello"]}]}`), 0o644))

		out, err := convert.ConvertFile(path, log)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"hello"`)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := convert.ConvertFile(filepath.Join(t.TempDir(), "missing.json"), log)
		assert.ErrorIs(t, err, convert.ErrFileAccess)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := convert.ConvertFile(t.TempDir(), log)
		assert.ErrorIs(t, err, convert.ErrFileAccess)
	})
}
