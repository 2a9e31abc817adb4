package entity

// SendContractRequest is the body of POST /api/v1/contracts
type SendContractRequest struct {
	TemplateID   string                 `json:"template_id" validate:"required"`
	Signers      []SignerRequest        `json:"signers" validate:"required,min=1,dive"`
	Title        string                 `json:"title,omitempty"`
	Metadata     string                 `json:"metadata,omitempty"`
	Locale       string                 `json:"locale,omitempty"` // Defaults to "en"
	Test         bool                   `json:"test,omitempty"`
	Placeholders []PlaceholderRequest   `json:"placeholders,omitempty" validate:"dive"`
	SignerFields map[string]interface{} `json:"signer_fields,omitempty"`
	Emails       *EmailsRequest         `json:"emails,omitempty"`
	Branding     *BrandingRequest       `json:"custom_branding,omitempty"`
}

// SignerRequest represents a signer in the client request
type SignerRequest struct {
	Name                       string `json:"name" validate:"required"`
	Email                      string `json:"email,omitempty" validate:"required_without=Mobile"`
	Mobile                     string `json:"mobile,omitempty" validate:"required_without=Email"`
	CompanyName                string `json:"company_name,omitempty"`
	RedirectURL                string `json:"redirect_url,omitempty"`
	SigningOrder               string `json:"signing_order,omitempty"`
	AutoSign                   bool   `json:"auto_sign,omitempty"`
	EmbeddedSignPage           bool   `json:"embedded_sign_page,omitempty"`
	EmbeddedRedirectIframeOnly bool   `json:"embedded_redirect_iframe_only,omitempty"`
	SkipSignatureRequest       bool   `json:"skip_signature_request,omitempty"`
	SkipSignerIdentification   bool   `json:"skip_signer_identification,omitempty"`
	SkipFinalContractDelivery  bool   `json:"skip_final_contract_delivery,omitempty"`
}

// PlaceholderRequest fills one {{key}} of the template
type PlaceholderRequest struct {
	APIKey           string                   `json:"api_key" validate:"required"`
	Value            string                   `json:"value,omitempty"`
	DocumentElements []map[string]interface{} `json:"document_elements,omitempty"`
}

type EmailsRequest struct {
	SignatureRequestSubject string   `json:"signature_request_subject,omitempty"`
	SignatureRequestText    string   `json:"signature_request_text,omitempty"`
	FinalContractSubject    string   `json:"final_contract_subject,omitempty"`
	FinalContractText       string   `json:"final_contract_text,omitempty"`
	CCEmailAddresses        []string `json:"cc_email_addresses,omitempty" validate:"dive,email"`
	ReplyTo                 string   `json:"reply_to,omitempty"`
}

type BrandingRequest struct {
	CompanyName string `json:"company_name,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}
