package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	for _, p := range []string{"/ingredientes", "/ingredientes/{id}", "/ingredientes/{id}/quantidade", "/painel", "/relatorio.pdf", "/health"} {
		assert.Contains(t, doc.Paths, p)
	}
}
