package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentDiff_Equal(t *testing.T) {
	doc := []byte(`{"name": "react-ts", "private": true}`)
	out, err := DocumentDiff(doc, doc, false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDocumentDiff_NameChange(t *testing.T) {
	before := []byte(`{"name": "batteries-react-ts", "private": true}`)
	after := []byte(`{"name": "my-app", "private": true}`)

	out, err := DocumentDiff(before, after, false)
	require.NoError(t, err)
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "my-app")
}

func TestDocumentDiff_Malformed(t *testing.T) {
	_, err := DocumentDiff([]byte(`{"name": `), []byte(`{}`), false)
	assert.Error(t, err)
}

func TestTable_String(t *testing.T) {
	out := NewTable("TEMPLATE", "FRAMEWORK").Row("react-ts", "react").String()
	assert.Contains(t, out, "TEMPLATE")
	assert.Contains(t, out, "react-ts")
}
