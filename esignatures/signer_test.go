package esignatures

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSigner_RequiresEmailOrMobile(t *testing.T) {
	s, err := NewSigner("Jo", "", "")
	assert.Nil(t, s)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "signer", vErr.Field)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewSigner_RequiresName(t *testing.T) {
	_, err := NewSigner("", "jo@x.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewSigner_MobileOnly(t *testing.T) {
	s, err := NewSigner("Jo", "", "+15550100")
	require.NoError(t, err)

	data, err := json.Marshal(s.Payload())
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotContains(t, got, "email")
	assert.Equal(t, "+15550100", got["mobile"])
}

func TestSignerPayload_Minimal(t *testing.T) {
	s, err := NewSigner("Jo", "jo@x.com", "")
	require.NoError(t, err)

	data, err := json.Marshal(s.Payload())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Jo",
		"email": "jo@x.com",
		"signing_order": "1",
		"auto_sign": "no",
		"embedded_sign_page": "no",
		"embedded_redirect_iframe_only": "no",
		"skip_signature_request": "no",
		"skip_signer_identification": "no",
		"skip_final_contract_delivery": "no"
	}`, string(data))
}

func TestSignerPayload_AllOptions(t *testing.T) {
	s, err := NewSigner("Jo", "jo@x.com", "+15550100",
		WithCompanyName("Acme"),
		WithRedirectURL("https://acme.test/done"),
		WithSigningOrder("2"),
		WithAutoSign(true),
		WithEmbeddedSignPage(true),
		WithEmbeddedRedirectIframeOnly(true),
		WithSkipSignatureRequest(true),
		WithSkipSignerIdentification(true),
		WithSkipFinalContractDelivery(true),
	)
	require.NoError(t, err)

	data, err := json.Marshal(s.Payload())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Jo",
		"email": "jo@x.com",
		"mobile": "+15550100",
		"company_name": "Acme",
		"redirect_url": "https://acme.test/done",
		"signing_order": "2",
		"auto_sign": "yes",
		"embedded_sign_page": "yes",
		"embedded_redirect_iframe_only": "yes",
		"skip_signature_request": "yes",
		"skip_signer_identification": "yes",
		"skip_final_contract_delivery": "yes"
	}`, string(data))
}

func TestSignerPayload_EmptySigningOrderKeepsDefault(t *testing.T) {
	s, err := NewSigner("Jo", "jo@x.com", "", WithSigningOrder(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSigningOrder, s.Payload().SigningOrder)

	literal := &Signer{Name: "Jo", Email: "jo@x.com"}
	assert.Equal(t, DefaultSigningOrder, literal.Payload().SigningOrder)
}

func TestYesNo_RoundTrip(t *testing.T) {
	var flag YesNo
	require.NoError(t, json.Unmarshal([]byte(`"yes"`), &flag))
	assert.True(t, bool(flag))

	require.NoError(t, json.Unmarshal([]byte(`"no"`), &flag))
	assert.False(t, bool(flag))

	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &flag))
	assert.Error(t, json.Unmarshal([]byte(`true`), &flag))
}
