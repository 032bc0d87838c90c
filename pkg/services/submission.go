package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/magnamoney/alie-relay/pkg/clients/hubspot"
	"github.com/magnamoney/alie-relay/pkg/config"
	"github.com/magnamoney/alie-relay/pkg/models"
	"github.com/magnamoney/alie-relay/pkg/utils"
)

var (
	ErrNotConfigured = errors.New("HubSpot private app token is not configured")
	ErrEmailRequired = errors.New("email is required")
)

// ALIESubmissionService relays ALIE form submissions to HubSpot
type ALIESubmissionService interface {
	Submit(ctx context.Context, data models.ALIEFormData, meta models.SubmissionMeta) error
}

type alieSubmissionServiceImpl struct {
	hubspotClient hubspot.Client
	config        *config.Config
	logger        *zap.Logger
}

// NewALIESubmissionService creates a new submission service
func NewALIESubmissionService(
	hubspotClient hubspot.Client,
	config *config.Config,
	logger *zap.Logger,
) ALIESubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &alieSubmissionServiceImpl{
		hubspotClient: hubspotClient,
		config:        config,
		logger:        logger,
	}
}

// Submit maps the form to HubSpot fields and sends it.
// Returns ErrNotConfigured, ErrEmailRequired, a *hubspot.APIError, or a transport error.
func (s *alieSubmissionServiceImpl) Submit(ctx context.Context, data models.ALIEFormData, meta models.SubmissionMeta) error {
	if !s.config.HasCredentials() {
		return ErrNotConfigured
	}
	if data.Email == "" {
		return ErrEmailRequired
	}

	submission := models.HubSpotSubmission{
		Fields:  BuildFields(data),
		Context: BuildContext(meta.HUTK, meta.PageURI, s.config.PageName),
	}

	emailHash := utils.HashString(string(data.Email))
	s.logger.Info("Relaying ALIE submission",
		zap.String("email_hash", emailHash),
		zap.Int("fields", len(submission.Fields)),
		zap.Bool("has_hutk", meta.HUTK != ""),
	)

	if err := s.hubspotClient.SubmitForm(ctx, submission); err != nil {
		return fmt.Errorf("submit ALIE form: %w", err)
	}

	s.logger.Info("ALIE submission accepted by HubSpot", zap.String("email_hash", emailHash))
	return nil
}

// BuildFields returns the HubSpot fields for the non-empty form values,
// in a fixed order: email, business name, names, then the ALIE totals.
func BuildFields(data models.ALIEFormData) []models.Field {
	candidates := []struct {
		name  string
		value models.FieldValue
	}{
		{"email", data.Email},
		{"business_name", data.BusinessName},
		{"firstname", data.Names},
		{"alie_total_monthly_income", data.TotalMonthlyIncome},
		{"alie_total_monthly_expenditure", data.TotalMonthlyExpenditure},
		{"alie_monthly_surplus_deficit", data.MonthlySurplusDeficit},
		{"alie_total_assets", data.TotalAssets},
		{"alie_total_liabilities", data.TotalLiabilities},
		{"alie_net_worth", data.NetWorth},
	}

	fields := make([]models.Field, 0, len(candidates))
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		fields = append(fields, models.Field{Name: c.name, Value: string(c.value)})
	}
	return fields
}

// BuildContext assembles the submission context. Missing values stay empty.
func BuildContext(hutk, pageURI, pageName string) models.SubmissionContext {
	return models.SubmissionContext{
		HUTK:     hutk,
		PageURI:  pageURI,
		PageName: pageName,
	}
}
