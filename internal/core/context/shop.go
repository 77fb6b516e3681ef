package context

import "context"

// ShopContext identifies the store a request operates on.
type ShopContext struct {
	// Domain is the *.myshopify.com domain of the store.
	Domain string
}

type shopContextKey struct{}

// WithShop adds ShopContext to context.
func WithShop(ctx context.Context, shop *ShopContext) context.Context {
	return context.WithValue(ctx, shopContextKey{}, shop)
}

// GetShop returns ShopContext from context.
func GetShop(ctx context.Context) *ShopContext {
	if v, ok := ctx.Value(shopContextKey{}).(*ShopContext); ok {
		return v
	}
	return nil
}

// GetShopDomain returns the shop domain from context or empty string.
func GetShopDomain(ctx context.Context) string {
	if s := GetShop(ctx); s != nil {
		return s.Domain
	}
	return ""
}
