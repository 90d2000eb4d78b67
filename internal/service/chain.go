package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"symptomintake/internal/llm"
	"symptomintake/internal/platform/logger"
)

var (
	// ErrEmptyResult is returned by a strategy whose output has nothing usable.
	ErrEmptyResult = errors.New("strategy produced an empty result")
	// ErrChainExhausted is returned when every strategy in a chain failed.
	ErrChainExhausted = errors.New("all strategies failed")
)

// Strategy is one way of producing a task result.
type Strategy[In, Out any] struct {
	Name string
	Run  func(ctx context.Context, in In) (Out, error)
}

// Chain runs its strategies in order and returns the first success. A
// deterministic strategy last in the list makes the chain total.
type Chain[In, Out any] struct {
	Task       string
	Strategies []Strategy[In, Out]
	Log        *logger.Logger
	// OnFailure, when set, is told about every failed stage.
	OnFailure func(stage string, err error)
}

// Run returns the result and the name of the strategy that produced it.
func (c *Chain[In, Out]) Run(ctx context.Context, in In) (Out, string, error) {
	var zero Out
	for _, s := range c.Strategies {
		out, err := s.Run(ctx, in)
		if err == nil {
			return out, s.Name, nil
		}
		if c.Log != nil {
			c.Log.Warn("Strategy failed, trying next",
				"task", c.Task,
				"stage", s.Name,
				"error", err.Error(),
			)
		}
		if c.OnFailure != nil {
			c.OnFailure(s.Name, err)
		}
	}
	return zero, "", fmt.Errorf("%s: %w", c.Task, ErrChainExhausted)
}

// Stage names shared by the task services
const (
	StageLLM       = "llm"
	StageEnhanced  = "enhanced"
	StageDynamic   = "llm_dynamic"
	StageRuleBased = "rule_based"
	StageFallback  = "fallback"
	StageKeywords  = "keywords"
)

// completeJSON runs req and decodes the fenced-or-bare JSON reply into v. A
// literal null reply is ErrEmptyResult.
func completeJSON(ctx context.Context, client llm.Client, req llm.Request, v interface{}) error {
	text, err := client.Complete(ctx, req)
	if err != nil {
		return err
	}
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(llm.StripFences(text)), &raw); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	if bytes.Equal(raw, []byte("null")) {
		return ErrEmptyResult
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}
