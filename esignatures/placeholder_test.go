package esignatures

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceholder_Validation(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		value    string
		elements []DocumentElement
		wantErr  bool
	}{
		{name: "value", apiKey: "rate", value: "$100"},
		{name: "document elements", apiKey: "terms", elements: []DocumentElement{{"type": "text_normal", "text": "Net 30"}}},
		{name: "neither value nor elements", apiKey: "rate", wantErr: true},
		{name: "empty elements slice", apiKey: "rate", elements: []DocumentElement{}, wantErr: true},
		{name: "missing api key", value: "$100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlaceholder(tt.apiKey, tt.value, tt.elements)
			if tt.wantErr {
				assert.Nil(t, p)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.apiKey, p.APIKey)
		})
	}
}

func TestPlaceholderPayload_PrefersValue(t *testing.T) {
	p, err := NewPlaceholder("rate", "$100", []DocumentElement{{"type": "text_normal", "text": "ignored"}})
	require.NoError(t, err)

	data, err := json.Marshal(p.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"api_key":"rate","value":"$100"}`, string(data))
}

func TestPlaceholderPayload_DocumentElements(t *testing.T) {
	p, err := NewPlaceholder("terms", "", []DocumentElement{{"type": "text_normal", "text": "Net 30"}})
	require.NoError(t, err)

	data, err := json.Marshal(p.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"api_key":"terms","document_elements":[{"type":"text_normal","text":"Net 30"}]}`, string(data))
}
