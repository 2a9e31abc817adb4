package esignatures

import "fmt"

// DefaultLocale is the contract language used when none is given.
const DefaultLocale = "en"

// ContractRequest holds everything SendContract needs. Build it with
// NewContractRequest so defaults are applied, then set optional fields.
type ContractRequest struct {
	TemplateID string
	Signers    []*Signer
	Title      string
	Metadata   string
	Locale     string
	Test       bool

	Placeholders []*Placeholder
	// SignerFields is passed through to the API untouched.
	SignerFields map[string]interface{}

	SignatureRequestSubject string
	SignatureRequestText    string
	FinalContractSubject    string
	FinalContractText       string
	CCEmailAddresses        []string
	ReplyTo                 string

	BrandingCompanyName string
	BrandingLogoURL     string
}

func NewContractRequest(templateID string, signers ...*Signer) *ContractRequest {
	return &ContractRequest{
		TemplateID: templateID,
		Signers:    signers,
		Locale:     DefaultLocale,
	}
}

// Validate reports the first malformed field, if any.
func (r *ContractRequest) Validate() error {
	if r.TemplateID == "" {
		return newValidationError("template_id", "template id is required")
	}
	if len(r.Signers) == 0 {
		return newValidationError("signers", "at least one signer is required")
	}
	for i, s := range r.Signers {
		if s == nil {
			return newValidationError("signers", fmt.Sprintf("signer %d is nil", i+1))
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for i, p := range r.Placeholders {
		if p == nil {
			return newValidationError("placeholder", fmt.Sprintf("placeholder %d is nil", i+1))
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ContractPayload is the JSON body of POST contracts.
type ContractPayload struct {
	TemplateID     string                 `json:"template_id"`
	Signers        []SignerPayload        `json:"signers"`
	Locale         string                 `json:"locale"`
	Test           YesNo                  `json:"test"`
	Title          string                 `json:"title,omitempty"`
	Metadata       string                 `json:"metadata,omitempty"`
	Placeholder    []PlaceholderPayload   `json:"placeholder,omitempty"`
	SignerFields   map[string]interface{} `json:"signer_fields,omitempty"`
	Emails         *EmailsPayload         `json:"emails,omitempty"`
	CustomBranding *BrandingPayload       `json:"custom_branding,omitempty"`
}

// EmailsPayload customizes the notification emails of a contract.
type EmailsPayload struct {
	SignatureRequestSubject string   `json:"signature_request_subject,omitempty"`
	SignatureRequestText    string   `json:"signature_request_text,omitempty"`
	FinalContractSubject    string   `json:"final_contract_subject,omitempty"`
	FinalContractText       string   `json:"final_contract_text,omitempty"`
	CCEmailAddresses        []string `json:"cc_email_addresses,omitempty"`
	ReplyTo                 string   `json:"reply_to,omitempty"`
}

type BrandingPayload struct {
	CompanyName string `json:"company_name,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// Payload assembles the request body. Nil signers and placeholders are skipped;
// call Validate first to reject them.
func (r *ContractRequest) Payload() ContractPayload {
	locale := r.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	signers := make([]SignerPayload, 0, len(r.Signers))
	for _, s := range r.Signers {
		if s != nil {
			signers = append(signers, s.Payload())
		}
	}

	payload := ContractPayload{
		TemplateID:   r.TemplateID,
		Signers:      signers,
		Locale:       locale,
		Test:         YesNo(r.Test),
		Title:        r.Title,
		Metadata:     r.Metadata,
		SignerFields: r.SignerFields,
	}

	if len(r.Placeholders) > 0 {
		placeholders := make([]PlaceholderPayload, 0, len(r.Placeholders))
		for _, p := range r.Placeholders {
			if p != nil {
				placeholders = append(placeholders, p.Payload())
			}
		}
		if len(placeholders) > 0 {
			payload.Placeholder = placeholders
		}
	}

	if r.hasEmails() {
		payload.Emails = &EmailsPayload{
			SignatureRequestSubject: r.SignatureRequestSubject,
			SignatureRequestText:    r.SignatureRequestText,
			FinalContractSubject:    r.FinalContractSubject,
			FinalContractText:       r.FinalContractText,
			CCEmailAddresses:        r.CCEmailAddresses,
			ReplyTo:                 r.ReplyTo,
		}
	}

	if r.BrandingCompanyName != "" || r.BrandingLogoURL != "" {
		payload.CustomBranding = &BrandingPayload{
			CompanyName: r.BrandingCompanyName,
			LogoURL:     r.BrandingLogoURL,
		}
	}

	return payload
}

func (r *ContractRequest) hasEmails() bool {
	return r.SignatureRequestSubject != "" ||
		r.SignatureRequestText != "" ||
		r.FinalContractSubject != "" ||
		r.FinalContractText != "" ||
		len(r.CCEmailAddresses) > 0 ||
		r.ReplyTo != ""
}
