package services

import (
	"context"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/constants"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
)

type RuleService interface {
	Create(ctx context.Context, req models.CreateMatchingRuleRequest) (*models.MatchingRule, error)
	Update(ctx context.Context, req models.UpdateMatchingRuleRequest) (*models.MatchingRule, error)
	Delete(ctx context.Context, clientID, ruleID string) error
	Get(ctx context.Context, clientID, ruleID string) (*models.MatchingRule, error)
	List(ctx context.Context, clientID string) ([]models.MatchingRule, error)
}

type ruleService service

var _ RuleService = (*ruleService)(nil)

// Create implements RuleService.
func (s *ruleService) Create(ctx context.Context, req models.CreateMatchingRuleRequest) (output *models.MatchingRule, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if _, err = s.srv.sqlRepo.GetClientRepository().GetByID(ctx, req.ClientID); err != nil {
		return
	}

	rule := req.ToMatchingRule()
	rule.ID = s.srv.idgenerator.Generate()
	if err = s.srv.sqlRepo.GetMatchingRuleRepository().Create(ctx, &rule); err != nil {
		return
	}

	xlog.Info(ctx, constants.LogPrefixRuleService,
		xlog.String("status", "rule created"),
		xlog.String("ruleId", rule.ID),
		xlog.Int("priority", rule.Priority))
	output = &rule

	return
}

// Update replaces every field of the rule.
func (s *ruleService) Update(ctx context.Context, req models.UpdateMatchingRuleRequest) (output *models.MatchingRule, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	rule := req.ToMatchingRule()
	if err = s.srv.sqlRepo.GetMatchingRuleRepository().Update(ctx, &rule); err != nil {
		return
	}
	output = &rule

	return
}

func (s *ruleService) Delete(ctx context.Context, clientID, ruleID string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	return s.srv.sqlRepo.GetMatchingRuleRepository().Delete(ctx, clientID, ruleID)
}

func (s *ruleService) Get(ctx context.Context, clientID, ruleID string) (output *models.MatchingRule, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	return s.srv.sqlRepo.GetMatchingRuleRepository().GetByID(ctx, clientID, ruleID)
}

// List returns active and inactive rules in evaluation order.
func (s *ruleService) List(ctx context.Context, clientID string) (output []models.MatchingRule, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if _, err = s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID); err != nil {
		return
	}

	return s.srv.sqlRepo.GetMatchingRuleRepository().List(ctx, models.MatchingRuleFilterOptions{ClientID: clientID})
}
