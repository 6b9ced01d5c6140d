package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type MarkupRuleRepository struct {
	conn uow.DBTX
}

func NewMarkupRuleRepository(conn uow.DBTX) *MarkupRuleRepository {
	return &MarkupRuleRepository{conn: conn}
}

func (m *MarkupRuleRepository) All(ctx context.Context) ([]domain.MarkupRule, error) {
	rows, err := m.conn.Query(ctx,
		`SELECT category_key, type, value, updated_at FROM markup_rules ORDER BY category_key`)
	if err != nil {
		return nil, convertErr(err, "listing markup rules")
	}
	defer rows.Close()

	var rules []domain.MarkupRule
	for rows.Next() {
		var r domain.MarkupRule
		if scanErr := rows.Scan(&r.CategoryKey, &r.Type, &r.Value, &r.UpdatedAt); scanErr != nil {
			return nil, convertErr(scanErr, "scanning markup rules")
		}
		rules = append(rules, r)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "listing markup rules")
	}
	return rules, nil
}

// ReplaceAll заменяет таблицу правил целиком. Должен вызываться внутри транзакции.
func (m *MarkupRuleRepository) ReplaceAll(ctx context.Context, rules []domain.MarkupRule) error {
	keys := make([]string, len(rules))
	for i, r := range rules {
		keys[i] = r.CategoryKey
	}
	if _, err := m.conn.Exec(ctx,
		`DELETE FROM markup_rules WHERE NOT (category_key = ANY($1))`, keys); err != nil {
		return convertErr(err, "deleting stale markup rules")
	}
	if len(rules) == 0 {
		return nil
	}

	batch := new(pgx.Batch)
	for _, r := range rules {
		batch.Queue(`
			INSERT INTO markup_rules (category_key, type, value, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (category_key) DO UPDATE
			SET type = EXCLUDED.type, value = EXCLUDED.value, updated_at = now()`,
			r.CategoryKey, string(r.Type), r.Value)
	}
	br := m.conn.SendBatch(ctx, batch)
	defer br.Close()
	for _, r := range rules {
		if _, err := br.Exec(); err != nil {
			return convertErr(err, "upserting markup rule `%s`", r.CategoryKey)
		}
	}
	return nil
}
