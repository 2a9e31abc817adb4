package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"esignatures-go/esignatures"
	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/domain/repository"
)

type esignRepository struct {
	client *esignatures.Client
	logger *zap.Logger
}

func NewEsignRepository(client *esignatures.Client, logger *zap.Logger) repository.EsignRepository {
	return &esignRepository{
		client: client,
		logger: logger,
	}
}

func (r *esignRepository) ListTemplates(ctx context.Context) ([]interface{}, error) {
	templates, err := r.client.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (r *esignRepository) QueryTemplate(ctx context.Context, templateID string) (map[string]interface{}, error) {
	template, err := r.client.QueryTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query template: %w", err)
	}
	return template, nil
}

func (r *esignRepository) SendContract(ctx context.Context, req *entity.SendContractRequest) (map[string]interface{}, error) {
	contractReq, err := toContractRequest(req)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Sending contract",
		zap.String("template_id", contractReq.TemplateID),
		zap.Int("signers_count", len(contractReq.Signers)),
		zap.Int("placeholders_count", len(contractReq.Placeholders)),
		zap.Bool("test", contractReq.Test),
	)

	response, err := r.client.SendContract(ctx, contractReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send contract: %w", err)
	}
	return response, nil
}

func (r *esignRepository) QueryContract(ctx context.Context, contractID string) (map[string]interface{}, error) {
	contract, err := r.client.QueryContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract: %w", err)
	}
	return contract, nil
}

// toContractRequest converts the gateway DTO into library values
func toContractRequest(req *entity.SendContractRequest) (*esignatures.ContractRequest, error) {
	signers := make([]*esignatures.Signer, 0, len(req.Signers))
	for i, s := range req.Signers {
		signer, err := esignatures.NewSigner(s.Name, s.Email, s.Mobile,
			esignatures.WithCompanyName(s.CompanyName),
			esignatures.WithRedirectURL(s.RedirectURL),
			esignatures.WithSigningOrder(s.SigningOrder),
			esignatures.WithAutoSign(s.AutoSign),
			esignatures.WithEmbeddedSignPage(s.EmbeddedSignPage),
			esignatures.WithEmbeddedRedirectIframeOnly(s.EmbeddedRedirectIframeOnly),
			esignatures.WithSkipSignatureRequest(s.SkipSignatureRequest),
			esignatures.WithSkipSignerIdentification(s.SkipSignerIdentification),
			esignatures.WithSkipFinalContractDelivery(s.SkipFinalContractDelivery),
		)
		if err != nil {
			return nil, fmt.Errorf("signer %d: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	contractReq := esignatures.NewContractRequest(req.TemplateID, signers...)
	contractReq.Title = req.Title
	contractReq.Metadata = req.Metadata
	contractReq.Test = req.Test
	contractReq.SignerFields = req.SignerFields
	if req.Locale != "" {
		contractReq.Locale = req.Locale
	}

	for i, p := range req.Placeholders {
		elements := make([]esignatures.DocumentElement, 0, len(p.DocumentElements))
		for _, e := range p.DocumentElements {
			elements = append(elements, esignatures.DocumentElement(e))
		}

		placeholder, err := esignatures.NewPlaceholder(p.APIKey, p.Value, elements)
		if err != nil {
			return nil, fmt.Errorf("placeholder %d: %w", i+1, err)
		}
		contractReq.Placeholders = append(contractReq.Placeholders, placeholder)
	}

	if req.Emails != nil {
		contractReq.SignatureRequestSubject = req.Emails.SignatureRequestSubject
		contractReq.SignatureRequestText = req.Emails.SignatureRequestText
		contractReq.FinalContractSubject = req.Emails.FinalContractSubject
		contractReq.FinalContractText = req.Emails.FinalContractText
		contractReq.CCEmailAddresses = req.Emails.CCEmailAddresses
		contractReq.ReplyTo = req.Emails.ReplyTo
	}

	if req.Branding != nil {
		contractReq.BrandingCompanyName = req.Branding.CompanyName
		contractReq.BrandingLogoURL = req.Branding.LogoURL
	}

	return contractReq, nil
}
