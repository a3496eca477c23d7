package tool

import "context"

func (g *Gateway) execUpdateSalesforceCRM(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	details, err := mapArg(args, "details")
	if err != nil {
		return nil, err
	}
	return g.crm.UpdateRecord(ctx, customerID, details)
}

func (g *Gateway) execGenerateDeepLink(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	targetScreen, err := stringArg(args, "target_screen")
	if err != nil {
		return nil, err
	}
	parameters, err := paramsArg(args, "parameters")
	if err != nil {
		return nil, err
	}
	return g.crm.DeepLink(ctx, customerID, targetScreen, parameters)
}

func (g *Gateway) execSyncCustomerData(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	return g.crm.SyncToApp(ctx, customerID)
}

func (g *Gateway) execMobileAppAnalytics(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	return g.crm.Analytics(ctx, customerID)
}

func (g *Gateway) execSendPushNotification(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	message, err := stringArg(args, "message")
	if err != nil {
		return nil, err
	}
	notificationType, err := optionalStringArg(args, "notification_type", "general")
	if err != nil {
		return nil, err
	}
	return g.notify.SendPush(ctx, customerID, message, notificationType)
}
