package tool

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/elitebeauty/clinic-concierge/agent/contract"
	"github.com/elitebeauty/clinic-concierge/agent/entity"
)

// Executor dispatches one tool invocation. Argument problems and unknown
// tools are reported through ToolResult.Error so the orchestrator's model
// can recover; the Go error is reserved for context cancellation and
// backend transport failures.
type Executor func(ctx context.Context, tool string, args map[string]any) (contract.ToolResult, error)

// Gateway wires the tool catalog to its capability backends.
type Gateway struct {
	log        zerolog.Logger
	customers  entity.Store
	cart       contract.CartService
	scheduling contract.SchedulingService
	notify     contract.NotificationService
	engagement contract.EngagementService
	crm        contract.CRMService
	approval   contract.ApprovalGateway
}

var _ contract.ToolGateway = (*Gateway)(nil)

type Deps struct {
	Log        zerolog.Logger
	Customers  entity.Store
	Cart       contract.CartService
	Scheduling contract.SchedulingService
	Notify     contract.NotificationService
	Engagement contract.EngagementService
	CRM        contract.CRMService
	Approval   contract.ApprovalGateway
}

func NewGateway(deps Deps) *Gateway {
	return &Gateway{
		log:        deps.Log,
		customers:  deps.Customers,
		cart:       deps.Cart,
		scheduling: deps.Scheduling,
		notify:     deps.Notify,
		engagement: deps.Engagement,
		crm:        deps.CRM,
		approval:   deps.Approval,
	}
}

// CustomerSnapshot serializes the customer profile for embedding into the
// orchestrator's initial context.
func (g *Gateway) CustomerSnapshot(ctx context.Context, customerID string) (string, error) {
	customer, err := g.customers.Lookup(ctx, customerID)
	if err != nil {
		return "", err
	}
	return customer.ToJSON()
}

// Execute runs each request in order. Per-request failures are carried in
// the corresponding ToolResult.
func (g *Gateway) Execute(ctx context.Context, reqs []contract.ToolRequest) ([]contract.ToolResult, error) {
	executor := g.Executor()
	results := make([]contract.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		out, err := executor(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}

func (g *Gateway) Executor() Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contract.ToolResult, error) {
		result, err := g.dispatch(ctx, tool, args)
		if err != nil {
			return contract.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contract.ToolResult{Tool: tool, Result: result}, nil
	}
}

func (g *Gateway) dispatch(ctx context.Context, tool string, args map[string]any) (any, error) {
	switch tool {
	case ToolSendCallCompanionLink:
		return g.execSendCallCompanionLink(ctx, args)
	case ToolApproveDiscount:
		return g.execApproveDiscount(ctx, args)
	case ToolAskForApproval:
		return g.execAskForApproval(ctx, args)
	case ToolUpdateSalesforceCRM:
		return g.execUpdateSalesforceCRM(ctx, args)
	case ToolAccessCartInformation:
		return g.execAccessCartInformation(ctx, args)
	case ToolModifyCart:
		return g.execModifyCart(ctx, args)
	case ToolProductRecommendations:
		return g.execProductRecommendations(ctx, args)
	case ToolCheckAvailability:
		return g.execCheckAvailability(ctx, args)
	case ToolScheduleService:
		return g.execScheduleService(ctx, args)
	case ToolAvailableTimes:
		return g.execAvailableTimes(ctx, args)
	case ToolSendCareInstructions:
		return g.execSendCareInstructions(ctx, args)
	case ToolGenerateQRCode:
		return g.execGenerateQRCode(ctx, args)
	case ToolSendSurvey:
		return g.execSendSurvey(ctx, args)
	case ToolCollectFeedback:
		return g.execCollectFeedback(ctx, args)
	case ToolSatisfactionStats:
		return g.execSatisfactionStats(ctx, args)
	case ToolSendReminder:
		return g.execSendReminder(ctx, args)
	case ToolSetNotifications:
		return g.execSetNotifications(ctx, args)
	case ToolUpcomingAppointments:
		return g.execUpcomingAppointments(ctx, args)
	case ToolSendPushNotification:
		return g.execSendPushNotification(ctx, args)
	case ToolGenerateDeepLink:
		return g.execGenerateDeepLink(ctx, args)
	case ToolSyncCustomerData:
		return g.execSyncCustomerData(ctx, args)
	case ToolMobileAppAnalytics:
		return g.execMobileAppAnalytics(ctx, args)
	default:
		return nil, fmt.Errorf("%w: tool=%s is not in the catalog", contract.ErrUnknownTool, tool)
	}
}

/* ---------------------------- argument helpers ---------------------------- */

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return value, nil
}

func optionalStringArg(args map[string]any, key, fallback string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return value, nil
}

func floatArg(args map[string]any, key string) (float64, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

func intArg(args map[string]any, key string) (int, error) {
	value, err := floatArg(args, key)
	if err != nil {
		return 0, err
	}
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return int(value), nil
}

func mapArg(args map[string]any, key string) (map[string]any, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%s is required", key)
	}
	value, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object", key)
	}
	return value, nil
}

// additionsArg decodes items_to_add: a list of {product_id, quantity}.
func additionsArg(args map[string]any, key string) ([]contract.CartAddition, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%s is required", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list", key)
	}

	additions := make([]contract.CartAddition, 0, len(list))
	for i, elem := range list {
		item, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be an object", key, i)
		}
		productID, ok := item["product_id"].(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d].product_id must be a string", key, i)
		}
		quantity := 1
		if rawQty, present := item["quantity"]; present {
			qty, ok := rawQty.(float64)
			if !ok {
				return nil, fmt.Errorf("%s[%d].quantity must be a number", key, i)
			}
			quantity = int(qty)
		}
		additions = append(additions, contract.CartAddition{ProductID: productID, Quantity: quantity})
	}
	return additions, nil
}

// removalsArg decodes items_to_remove: product id strings, or objects
// carrying a product_id (the reference agent sends both shapes).
func removalsArg(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%s is required", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list", key)
	}

	ids := make([]string, 0, len(list))
	for i, elem := range list {
		switch v := elem.(type) {
		case string:
			ids = append(ids, v)
		case map[string]any:
			id, ok := v["product_id"].(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d].product_id must be a string", key, i)
			}
			ids = append(ids, id)
		default:
			return nil, fmt.Errorf("%s[%d] must be a product id", key, i)
		}
	}
	return ids, nil
}

// paramsArg decodes the optional deep-link parameter mapping. JSON objects
// decoded into Go maps carry no order, so keys are sorted for a stable
// link; callers needing a specific order use CRMService.DeepLink directly
// with ordered pairs.
func paramsArg(args map[string]any, key string) ([]contract.Parameter, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object", key)
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]contract.Parameter, 0, len(keys))
	for _, k := range keys {
		params = append(params, contract.Parameter{Key: k, Value: fmt.Sprint(mapping[k])})
	}
	return params, nil
}
