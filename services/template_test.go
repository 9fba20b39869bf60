package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoiceHtml = `<h1>Invoice {{ orderCode }}</h1><p>Patient: {{patientName}}</p><p>Total: {{total}}</p><p>{{orderCode}}</p>`

func TestExtractPlaceholders(t *testing.T) {
	keys := ExtractPlaceholders(invoiceHtml)
	assert.Equal(t, []string{"orderCode", "patientName", "total"}, keys)
	assert.Empty(t, ExtractPlaceholders("<p>static</p>"))
}

func TestRenderTemplate(t *testing.T) {
	values := map[string]interface{}{
		"orderCode":   "ORD-1a2b3c4d",
		"patientName": "Asha Rao",
		"total":       412.50,
	}
	out, err := RenderTemplate(invoiceHtml, []string{"orderCode", "patientName"}, values)
	require.NoError(t, err)
	assert.Contains(t, out, "Invoice ORD-1a2b3c4d")
	assert.Contains(t, out, "Patient: Asha Rao")
	assert.NotContains(t, out, "{{")
}

func TestRenderTemplate_MissingRequired(t *testing.T) {
	_, err := RenderTemplate(invoiceHtml, []string{"patientName"}, map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patientName")
}

func TestRenderTemplate_UnknownKeysRenderEmpty(t *testing.T) {
	out, err := RenderTemplate("<p>{{missing}}</p>", nil, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", out)
}
