package tool

import "context"

// By convention the orchestrator reads the cart before modifying it so it
// does not re-add items the customer already holds. The ordering is
// advisory; nothing here enforces it.

func (g *Gateway) execAccessCartInformation(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	return g.cart.Cart(ctx, customerID)
}

func (g *Gateway) execModifyCart(ctx context.Context, args map[string]any) (any, error) {
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	add, err := additionsArg(args, "items_to_add")
	if err != nil {
		return nil, err
	}
	remove, err := removalsArg(args, "items_to_remove")
	if err != nil {
		return nil, err
	}
	return g.cart.ModifyCart(ctx, customerID, add, remove)
}

func (g *Gateway) execProductRecommendations(ctx context.Context, args map[string]any) (any, error) {
	skinConcern, err := stringArg(args, "skin_concern")
	if err != nil {
		return nil, err
	}
	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return nil, err
	}
	return g.cart.Recommendations(ctx, skinConcern, customerID)
}

func (g *Gateway) execCheckAvailability(ctx context.Context, args map[string]any) (any, error) {
	productID, err := stringArg(args, "product_id")
	if err != nil {
		return nil, err
	}
	storeID, err := stringArg(args, "store_id")
	if err != nil {
		return nil, err
	}
	return g.cart.CheckAvailability(ctx, productID, storeID)
}
