package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codetutor/ent"
	"github.com/abhisek/codetutor/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetCostUsd(data.CostUSD)

	if data.RequestBody != "" {
		builder = builder.SetRequestBody(data.RequestBody)
	}
	if data.ResponseBody != "" {
		builder = builder.SetResponseBody(data.ResponseBody)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestEventData, len(rows))
	for i, row := range rows {
		out[i] = entLLMEventToData(row)
	}
	return out, nil
}

func (r *eventRepo) LLMEventBySequence(ctx context.Context, seq int64) (*LLMRequestEventData, error) {
	row, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(seq)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	data := entLLMEventToData(row)
	return &data, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	var rows []struct {
		Purpose string  `json:"purpose"`
		Calls   int     `json:"calls"`
		In      int     `json:"in_tokens"`
		Out     int     `json:"out_tokens"`
		AvgMs   float64 `json:"avg_ms"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "in_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "out_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by purpose: %w", err)
	}

	out := make([]LLMUsageStat, len(rows))
	for i, row := range rows {
		out[i] = LLMUsageStat{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.In,
			OutputTokens: row.Out,
			AvgLatencyMs: int64(row.AvgMs),
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model string `json:"model"`
		Calls int    `json:"calls"`
		In    int    `json:"in_tokens"`
		Out   int    `json:"out_tokens"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "in_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "out_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by model: %w", err)
	}

	out := make([]LLMModelUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.In,
			OutputTokens: row.Out,
		}
	}
	return out, nil
}

func entLLMEventToData(row *ent.LLMRequestEvent) LLMRequestEventData {
	return LLMRequestEventData{
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
		CostUSD:      row.CostUsd,
	}
}
