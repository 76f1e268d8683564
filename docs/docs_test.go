package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_IsRegisteredAndValid(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	for _, path := range []string{
		"/bloomLogic/chat",
		"/bloomLogic/insights",
		"/bloomLogic/processFile",
		"/bloomLogic/healthScore",
		"/bloomLogic/importCSV",
		"/bloomLogic/importCSV/export",
		"/bloomLogic/geminiResponse",
	} {
		assert.Contains(t, parsed.Paths, path)
	}
}
