package esignatures

// DocumentElement is one structured element (header, paragraph, table row...)
// substituted for a placeholder instead of a literal value.
type DocumentElement map[string]interface{}

// Placeholder fills a {{key}} token of a template.
type Placeholder struct {
	APIKey           string
	Value            string
	DocumentElements []DocumentElement
}

// NewPlaceholder builds a Placeholder. Either value or documentElements must be set.
func NewPlaceholder(apiKey, value string, documentElements []DocumentElement) (*Placeholder, error) {
	p := &Placeholder{
		APIKey:           apiKey,
		Value:            value,
		DocumentElements: documentElements,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Placeholder) Validate() error {
	if p.APIKey == "" {
		return newValidationError("placeholder", "api_key is required")
	}
	if p.Value == "" && len(p.DocumentElements) == 0 {
		return newValidationError("placeholder", "value or document_elements is required")
	}
	return nil
}

// PlaceholderPayload is the wire form of a Placeholder.
type PlaceholderPayload struct {
	APIKey           string            `json:"api_key"`
	Value            string            `json:"value,omitempty"`
	DocumentElements []DocumentElement `json:"document_elements,omitempty"`
}

// Payload returns the wire form. Value wins when both substitutions are set.
func (p *Placeholder) Payload() PlaceholderPayload {
	if p.Value != "" {
		return PlaceholderPayload{APIKey: p.APIKey, Value: p.Value}
	}
	return PlaceholderPayload{APIKey: p.APIKey, DocumentElements: p.DocumentElements}
}
