package barista

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	toolx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/tool"
)

const (
	ToolCaptureOrderField = "capture_order_field"
	ToolPlaceCoffeeOrder  = "place_coffee_order"
)

// Fields lists the order fields in ask order, each with the barista's
// clarifying question.
func Fields() []statex.FieldSpec {
	return []statex.FieldSpec{
		{Name: "Drink", Prompt: "What drink can I get started for you? We have lattes, cappuccinos, espresso, and tea."},
		{Name: "Size", Prompt: "What size would you like: small, medium, or large?"},
		{Name: "Milk", Prompt: "And what kind of milk: whole, skim, oat, or almond?"},
		{Name: "Extras", Prompt: "Any extras, like whipped cream, an extra shot, or vanilla syrup? Just say 'none' if not."},
		{Name: "Name", Prompt: "Lovely! And what name should I put on the order?"},
	}
}

// OrderSaver persists one placed order, replacing any previous one.
type OrderSaver interface {
	Save(order map[string]any) error
}

// Tools describes the barista's tool surface for the runtime's LLM layer.
func Tools() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolCaptureOrderField,
			Desc: "Stores one piece of the customer's coffee order, or asks for the next missing detail. Both arguments are optional when just checking what is still missing.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"field_name": {Type: schema.String, Desc: "The order field to update: 'Drink', 'Size', 'Milk', 'Extras', or 'Name'"},
				"value":      {Type: schema.String, Desc: "The value to store for the field"},
			}),
		},
		{
			Name: ToolPlaceCoffeeOrder,
			Desc: "Finalizes the customer's coffee order and saves the details once all fields are known. Call immediately when all information is present; do not ask for confirmation first.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"drink_type": {Type: schema.String, Desc: "The main type of coffee or beverage (e.g., Latte, Cappuccino, Espresso, Tea)"},
				"size":       {Type: schema.String, Desc: "The desired size of the drink (e.g., Small, Medium, Large)"},
				"milk":       {Type: schema.String, Desc: "The type of milk to be used (e.g., Whole, Skim, Oat, Almond)"},
				"extras": {
					Type:     schema.Array,
					Desc:     "A list of any additional ingredients (e.g., Whipped Cream, Extra Shot, Vanilla Syrup). Use an empty list if none.",
					ElemInfo: &schema.ParameterInfo{Type: schema.String},
				},
				"name": {Type: schema.String, Desc: "The customer's name for the order"},
			}),
		},
	}
}

// NewExecutor wires the barista tools to the order file.
func NewExecutor(saver OrderSaver) toolx.Executor {
	fallback := toolx.DefaultExecutor(contractx.AgentTypeBarista)
	return func(ctx context.Context, st *statex.ConversationState, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolCaptureOrderField:
			return captureOrderField(st, args)
		case ToolPlaceCoffeeOrder:
			return placeCoffeeOrder(st, saver, args)
		default:
			return fallback(ctx, st, tool, args)
		}
	}
}

func captureOrderField(st *statex.ConversationState, args map[string]any) (contractx.ToolResult, error) {
	tracker := statex.NewSlotTracker(Fields(), st)

	fieldName, _ := toolx.StringArg(args, "field_name")
	value, _ := toolx.StringArg(args, "value")
	if strings.TrimSpace(fieldName) != "" && strings.TrimSpace(value) != "" {
		canonical, err := tracker.Capture(fieldName, value)
		switch {
		case err == nil:
			log.Info().Str("field", canonical).Msg("captured order field")
		case errors.Is(err, contractx.ErrInvalidField):
			return contractx.ToolResult{
				Tool:  ToolCaptureOrderField,
				Reply: fmt.Sprintf("I only track the drink, size, milk, extras, and a name for the cup, not '%s'.", fieldName),
			}, nil
		default:
			return contractx.ToolResult{}, err
		}
	}

	next, missing := tracker.NextMissing()
	if !missing {
		return contractx.ToolResult{
			Tool:  ToolCaptureOrderField,
			Reply: "I have the whole order. Placing it now!",
		}, nil
	}
	return contractx.ToolResult{Tool: ToolCaptureOrderField, Reply: next.Prompt}, nil
}

func placeCoffeeOrder(st *statex.ConversationState, saver OrderSaver, args map[string]any) (contractx.ToolResult, error) {
	tracker := statex.NewSlotTracker(Fields(), st)

	// The runtime may pass the full order here directly; fold anything given
	// into the tracker before the completeness check.
	direct := map[string]string{
		"Drink": "drink_type",
		"Size":  "size",
		"Milk":  "milk",
		"Name":  "name",
	}
	for field, arg := range direct {
		if v, ok := toolx.StringArg(args, arg); ok && strings.TrimSpace(v) != "" {
			if _, err := tracker.Capture(field, v); err != nil {
				return contractx.ToolResult{}, err
			}
		}
	}
	if extras := toolx.StringsArg(args, "extras"); extras != nil {
		joined := strings.Join(extras, ", ")
		if joined == "" {
			joined = "None"
		}
		if _, err := tracker.Capture("Extras", joined); err != nil {
			return contractx.ToolResult{}, err
		}
	}

	if next, missing := tracker.NextMissing(); missing {
		return contractx.ToolResult{Tool: ToolPlaceCoffeeOrder, Reply: next.Prompt}, nil
	}

	order := map[string]any{
		"drinkType": tracker.ValueOr("Drink", ""),
		"size":      tracker.ValueOr("Size", ""),
		"milk":      tracker.ValueOr("Milk", ""),
		"extras":    tracker.ValueOr("Extras", "None"),
		"name":      tracker.ValueOr("Name", ""),
	}
	name := tracker.ValueOr("Name", "")
	confirmation := fmt.Sprintf(
		"Order for %s has been placed. The customer ordered a %s %s with %s and the following extras: %s.",
		name, order["size"], order["drinkType"], order["milk"], order["extras"],
	)

	if err := saver.Save(order); err != nil {
		log.Error().Err(err).Msg("failed to save coffee order")
		return contractx.ToolResult{
			Tool:            ToolPlaceCoffeeOrder,
			Reply:           confirmation + " (Note: There was an issue recording the order internally, but it is in the queue.)",
			EndConversation: true,
		}, nil
	}

	log.Info().Str("name", name).Msg("coffee order placed")
	return contractx.ToolResult{Tool: ToolPlaceCoffeeOrder, Reply: confirmation, EndConversation: true}, nil
}
