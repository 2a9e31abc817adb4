package esignatures

// DefaultSigningOrder is used when no signing order is given. Signers that share
// the same order value are notified at the same time.
const DefaultSigningOrder = "1"

// Signer describes one contract signatory together with its delivery and
// verification options.
type Signer struct {
	Name         string
	Email        string
	Mobile       string
	CompanyName  string
	RedirectURL  string
	SigningOrder string

	AutoSign                   bool
	EmbeddedSignPage           bool
	EmbeddedRedirectIframeOnly bool
	SkipSignatureRequest       bool
	SkipSignerIdentification   bool
	SkipFinalContractDelivery  bool
}

// SignerOption customizes a Signer built by NewSigner.
type SignerOption func(*Signer)

func WithCompanyName(name string) SignerOption {
	return func(s *Signer) { s.CompanyName = name }
}

func WithRedirectURL(u string) SignerOption {
	return func(s *Signer) { s.RedirectURL = u }
}

// WithSigningOrder sets the signing order; an empty value keeps the default.
func WithSigningOrder(order string) SignerOption {
	return func(s *Signer) {
		if order != "" {
			s.SigningOrder = order
		}
	}
}

func WithAutoSign(v bool) SignerOption {
	return func(s *Signer) { s.AutoSign = v }
}

func WithEmbeddedSignPage(v bool) SignerOption {
	return func(s *Signer) { s.EmbeddedSignPage = v }
}

func WithEmbeddedRedirectIframeOnly(v bool) SignerOption {
	return func(s *Signer) { s.EmbeddedRedirectIframeOnly = v }
}

func WithSkipSignatureRequest(v bool) SignerOption {
	return func(s *Signer) { s.SkipSignatureRequest = v }
}

func WithSkipSignerIdentification(v bool) SignerOption {
	return func(s *Signer) { s.SkipSignerIdentification = v }
}

func WithSkipFinalContractDelivery(v bool) SignerOption {
	return func(s *Signer) { s.SkipFinalContractDelivery = v }
}

// NewSigner builds a Signer. At least one of email or mobile must be set.
func NewSigner(name, email, mobile string, opts ...SignerOption) (*Signer, error) {
	s := &Signer{
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		SigningOrder: DefaultSigningOrder,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the invariants NewSigner enforces. It is useful for Signers
// assembled as struct literals.
func (s *Signer) Validate() error {
	if s.Name == "" {
		return newValidationError("signer", "name is required")
	}
	if s.Email == "" && s.Mobile == "" {
		return newValidationError("signer", "email or mobile is required")
	}
	return nil
}

// SignerPayload is the wire form of a Signer.
type SignerPayload struct {
	Name                       string `json:"name"`
	Email                      string `json:"email,omitempty"`
	Mobile                     string `json:"mobile,omitempty"`
	CompanyName                string `json:"company_name,omitempty"`
	RedirectURL                string `json:"redirect_url,omitempty"`
	SigningOrder               string `json:"signing_order"`
	AutoSign                   YesNo  `json:"auto_sign"`
	EmbeddedSignPage           YesNo  `json:"embedded_sign_page"`
	EmbeddedRedirectIframeOnly YesNo  `json:"embedded_redirect_iframe_only"`
	SkipSignatureRequest       YesNo  `json:"skip_signature_request"`
	SkipSignerIdentification   YesNo  `json:"skip_signer_identification"`
	SkipFinalContractDelivery  YesNo  `json:"skip_final_contract_delivery"`
}

// Payload returns the wire form. Empty contact and redirect fields are omitted.
func (s *Signer) Payload() SignerPayload {
	order := s.SigningOrder
	if order == "" {
		order = DefaultSigningOrder
	}

	return SignerPayload{
		Name:                       s.Name,
		Email:                      s.Email,
		Mobile:                     s.Mobile,
		CompanyName:                s.CompanyName,
		RedirectURL:                s.RedirectURL,
		SigningOrder:               order,
		AutoSign:                   YesNo(s.AutoSign),
		EmbeddedSignPage:           YesNo(s.EmbeddedSignPage),
		EmbeddedRedirectIframeOnly: YesNo(s.EmbeddedRedirectIframeOnly),
		SkipSignatureRequest:       YesNo(s.SkipSignatureRequest),
		SkipSignerIdentification:   YesNo(s.SkipSignerIdentification),
		SkipFinalContractDelivery:  YesNo(s.SkipFinalContractDelivery),
	}
}
