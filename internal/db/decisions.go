package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"UltraNova/internal/founder"
)

// RecordDecision appends a think run to the audit log.
func (q *Queries) RecordDecision(ctx context.Context, businessID string, decision founder.Decision, in founder.Input) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	contextJSON, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal decision context: %w", err)
	}

	_, err = q.conn.Exec(ctx, `
		INSERT INTO decisions (id, business_id, decision, context)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), businessID, decisionJSON, contextJSON,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}
