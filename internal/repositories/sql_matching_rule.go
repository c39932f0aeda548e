package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
)

type MatchingRuleRepository interface {
	Create(ctx context.Context, in *models.MatchingRule) (err error)
	Update(ctx context.Context, in *models.MatchingRule) (err error)
	Delete(ctx context.Context, clientID, ruleID string) (err error)
	GetByID(ctx context.Context, clientID, ruleID string) (*models.MatchingRule, error)
	List(ctx context.Context, opts models.MatchingRuleFilterOptions) ([]models.MatchingRule, error)
}

type matchingRuleRepository sqlRepo

var _ MatchingRuleRepository = (*matchingRuleRepository)(nil)

func (mr *matchingRuleRepository) Create(ctx context.Context, in *models.MatchingRule) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryMatchingRuleCreate, ruleArgs(in)...).Scan(&in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: priority %d already used", common.ErrDataExist, in.Priority)
		}
		return err
	}

	return nil
}

func (mr *matchingRuleRepository) Update(ctx context.Context, in *models.MatchingRule) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryMatchingRuleUpdate, ruleArgs(in)...).Scan(&in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrRuleNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: priority %d already used", common.ErrDataExist, in.Priority)
		}
		return err
	}

	return nil
}

func (mr *matchingRuleRepository) Delete(ctx context.Context, clientID, ruleID string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	affected, err := execAffected(db.ExecContext(ctx, queryMatchingRuleDelete, ruleID, clientID))
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrRuleNotFound
	}

	return nil
}

func (mr *matchingRuleRepository) GetByID(ctx context.Context, clientID, ruleID string) (result *models.MatchingRule, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	result = &models.MatchingRule{}
	err = scanRule(db.QueryRowContext(ctx, queryMatchingRuleGetByID, ruleID, clientID), result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrRuleNotFound
		}
		return nil, err
	}

	return result, nil
}

func (mr *matchingRuleRepository) List(ctx context.Context, opts models.MatchingRuleFilterOptions) (result []models.MatchingRule, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	query, args, err := buildListMatchingRuleQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rule models.MatchingRule
		if err = scanRule(rows, &rule); err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner, rule *models.MatchingRule) error {
	return row.Scan(
		&rule.ID,
		&rule.ClientID,
		&rule.Name,
		&rule.Priority,
		&rule.RuleType,
		&rule.IsInternal,
		&rule.DateMustMatch,
		&rule.DateToleranceDays,
		&rule.CompareCurrency,
		&rule.AllowTolerance,
		&rule.ToleranceAmount,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
}

func ruleArgs(in *models.MatchingRule) []any {
	return []any{
		in.ID,
		in.ClientID,
		in.Name,
		in.Priority,
		string(in.RuleType),
		in.IsInternal,
		in.DateMustMatch,
		in.DateToleranceDays,
		string(in.CompareCurrency),
		in.AllowTolerance,
		in.ToleranceAmount,
		in.IsActive,
	}
}
