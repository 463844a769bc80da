package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("usecases")
	LLMTokensUsed      metric.Int64Counter
	ToolCallsExecuted  metric.Int64Counter
	ReservationsBooked metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ToolCallsExecuted, err = meter.Int64Counter(
		"tool_calls_executed_total",
		metric.WithDescription("Total tool calls dispatched to the registry"),
	)
	if err != nil {
		panic(err)
	}

	ReservationsBooked, err = meter.Int64Counter(
		"reservations_booked_total",
		metric.WithDescription("Total reservations successfully booked"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordToolCallExecuted records a dispatched tool call and whether it was dropped by validation.
func RecordToolCallExecuted(ctx context.Context, toolName string, dropped bool) {
	ToolCallsExecuted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool.function", toolName),
		attribute.Bool("tool.dropped", dropped),
	))
}

// RecordReservationBooked records a successfully booked reservation.
func RecordReservationBooked(ctx context.Context, restaurantID string) {
	ReservationsBooked.Add(ctx, 1, metric.WithAttributes(
		attribute.String("restaurant.id", restaurantID),
	))
}
