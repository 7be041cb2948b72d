package bank

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/problem"
)

func TestExportImport_RoundTrip(t *testing.T) {
	catalog := problem.AddMultiplication(nil)
	catalog[0].CheckGuess(-1, time.Second) // give one problem some history
	catalog[0].CheckGuess(-1, 4*time.Second)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, catalog))

	loaded, err := Import(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, len(catalog))

	for i, p := range loaded {
		w := catalog[i]
		assert.Equal(t, w.String(), p.String(), "problem %d text", i)
		assert.Equal(t, w.NumWrong(), p.NumWrong(), "problem %d wrong count", i)
		assert.Equal(t, w.Score(), p.Score(), "problem %d score", i)
	}
}

func TestImport_ValidDocument(t *testing.T) {
	doc := `{
  "problems": [
    {"operands": [4, 5], "operator": "+", "num_wrong": 2, "latest_time_secs": 7}
  ]
}`

	catalog, err := Import(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	p := catalog[0]
	assert.Equal(t, 9, p.Answer())
	assert.Equal(t, 2, p.NumWrong())
	assert.Equal(t, 7*time.Second, p.LatestTime())
}

func TestImport_RejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{problems`},
		{"missing problems", `{}`},
		{"wrong operand count", `{"problems": [{"operands": [4], "operator": "+", "num_wrong": 0, "latest_time_secs": 5}]}`},
		{"operand out of range", `{"problems": [{"operands": [4, 300], "operator": "+", "num_wrong": 0, "latest_time_secs": 5}]}`},
		{"unknown operator", `{"problems": [{"operands": [4, 5], "operator": "/", "num_wrong": 0, "latest_time_secs": 5}]}`},
		{"negative wrong count", `{"problems": [{"operands": [4, 5], "operator": "+", "num_wrong": -1, "latest_time_secs": 5}]}`},
		{"missing field", `{"problems": [{"operands": [4, 5], "operator": "+", "num_wrong": 0}]}`},
		{"extra field", `{"problems": [{"operands": [4, 5], "operator": "+", "num_wrong": 0, "latest_time_secs": 5, "answer": 9}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestImport_SubtractionUnderflowFailsConstruction(t *testing.T) {
	// Structurally valid but violates the operand-order invariant; the
	// schema cannot express that, so construction must catch it.
	doc := `{"problems": [{"operands": [3, 7], "operator": "-", "num_wrong": 0, "latest_time_secs": 5}]}`

	_, err := Import(strings.NewReader(doc))
	require.ErrorIs(t, err, problem.ErrUnderflow)
}
