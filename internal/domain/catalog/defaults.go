package catalog

import "shopsetup/internal/domain/metaobject"

// Default returns the built-in mobile-app setup catalog.
func Default() *Catalog {
	return New(defaultDefinitions, defaultSections)
}

var defaultDefinitions = []metaobject.DefinitionConfig{
	{
		Name:        "Home Banner",
		Type:        "home_banner",
		Description: "Rotating banners at the top of the home screen",
		Fields: []metaobject.FieldConfig{
			{Name: "Title", Key: "title", Type: "single_line_text_field", Required: true},
			{Name: "Subtitle", Key: "subtitle", Type: "single_line_text_field"},
			{Name: "Image", Key: "image", Type: "file_reference", Required: true},
			{Name: "Image Mobile", Key: "image_mobile", Type: "file_reference"},
			{Name: "Link URL", Key: "link_url", Type: "url"},
			{Name: "Link Type", Key: "link_type", Type: "single_line_text_field", Description: "collection, product, external"},
			{Name: "Active", Key: "active", Type: "boolean"},
			{Name: "Order", Key: "order", Type: "number_integer"},
			{Name: "Start Date", Key: "start_date", Type: "date"},
			{Name: "End Date", Key: "end_date", Type: "date"},
		},
	},
	{
		Name:        "Featured Collection",
		Type:        "home_featured_collection",
		Description: "Collections highlighted on the home screen",
		Fields: []metaobject.FieldConfig{
			{Name: "Collection", Key: "collection", Type: "collection_reference", Required: true},
			{Name: "Display Title", Key: "display_title", Type: "single_line_text_field"},
			{Name: "Subtitle", Key: "subtitle", Type: "single_line_text_field"},
			{Name: "Background Image", Key: "background_image", Type: "file_reference"},
			{Name: "Products to Show", Key: "products_count", Type: "number_integer"},
			{Name: "Order", Key: "order", Type: "number_integer"},
			{Name: "Active", Key: "active", Type: "boolean"},
			{Name: "Layout Type", Key: "layout_type", Type: "single_line_text_field", Description: "horizontal, grid, carousel"},
		},
	},
	{
		Name:        "Category Grid",
		Type:        "home_category_grid",
		Description: "Navigable category grid",
		Fields: []metaobject.FieldConfig{
			{Name: "Title", Key: "title", Type: "single_line_text_field"},
			{Name: "Categories", Key: "categories", Type: "list.collection_reference"},
			{Name: "Layout", Key: "layout", Type: "single_line_text_field", Description: "2x2, 3x2, carousel"},
			{Name: "Order", Key: "order", Type: "number_integer"},
			{Name: "Active", Key: "active", Type: "boolean"},
		},
	},
	{
		Name:        "FAQ Item",
		Type:        "faq_item",
		Description: "Frequently asked questions",
		Fields: []metaobject.FieldConfig{
			{Name: "Question", Key: "question", Type: "single_line_text_field", Required: true},
			{Name: "Answer", Key: "answer", Type: "multi_line_text_field", Required: true},
			{Name: "Category", Key: "category", Type: "single_line_text_field", Description: "shipping, returns, payment, etc."},
			{Name: "Order", Key: "order", Type: "number_integer"},
			{Name: "Active", Key: "active", Type: "boolean"},
		},
	},
	{
		Name:        "Contact Info",
		Type:        "contact_info",
		Description: "Contact information (singleton)",
		Fields: []metaobject.FieldConfig{
			{Name: "Phone", Key: "phone", Type: "single_line_text_field"},
			{Name: "Email", Key: "email", Type: "single_line_text_field"},
			{Name: "WhatsApp", Key: "whatsapp", Type: "single_line_text_field"},
			{Name: "Address", Key: "address", Type: "multi_line_text_field"},
			{Name: "Working Hours", Key: "working_hours", Type: "multi_line_text_field"},
			{Name: "Map URL", Key: "map_url", Type: "url"},
			{Name: "Social Instagram", Key: "social_instagram", Type: "url"},
			{Name: "Social Facebook", Key: "social_facebook", Type: "url"},
			{Name: "Social TikTok", Key: "social_tiktok", Type: "url"},
		},
	},
	{
		Name:        "Store Location",
		Type:        "store_location",
		Description: "Physical stores",
		Fields: []metaobject.FieldConfig{
			{Name: "Name", Key: "name", Type: "single_line_text_field", Required: true},
			{Name: "Address", Key: "address", Type: "multi_line_text_field", Required: true},
			{Name: "City", Key: "city", Type: "single_line_text_field"},
			{Name: "Province", Key: "province", Type: "single_line_text_field"},
			{Name: "Postal Code", Key: "postal_code", Type: "single_line_text_field"},
			{Name: "Country", Key: "country", Type: "single_line_text_field"},
			{Name: "Phone", Key: "phone", Type: "single_line_text_field"},
			{Name: "Latitude", Key: "latitude", Type: "number_decimal"},
			{Name: "Longitude", Key: "longitude", Type: "number_decimal"},
			{Name: "Image", Key: "image", Type: "file_reference"},
			{Name: "Working Hours", Key: "working_hours", Type: "json"},
			{Name: "Services", Key: "services", Type: "list.single_line_text_field"},
			{Name: "Active", Key: "active", Type: "boolean"},
		},
	},
	{
		Name:        "Reviews Config",
		Type:        "reviews_config",
		Description: "Review provider integration settings",
		Fields: []metaobject.FieldConfig{
			{Name: "Provider", Key: "provider", Type: "single_line_text_field", Description: "judgeme, yotpo, stamped"},
			{Name: "API Key", Key: "api_key", Type: "single_line_text_field"},
			{Name: "Shop Domain", Key: "shop_domain", Type: "single_line_text_field"},
			{Name: "Enabled", Key: "enabled", Type: "boolean"},
		},
	},
	{
		Name:        "App Config",
		Type:        "app_config",
		Description: "General mobile app configuration",
		Fields: []metaobject.FieldConfig{
			{Name: "App Name", Key: "app_name", Type: "single_line_text_field"},
			{Name: "Primary Color", Key: "primary_color", Type: "single_line_text_field"},
			{Name: "Secondary Color", Key: "secondary_color", Type: "single_line_text_field"},
			{Name: "Logo", Key: "logo", Type: "file_reference"},
			{Name: "Splash Image", Key: "splash_image", Type: "file_reference"},
			{Name: "Maintenance Mode", Key: "maintenance_mode", Type: "boolean"},
			{Name: "Maintenance Message", Key: "maintenance_message", Type: "multi_line_text_field"},
			{Name: "Min App Version iOS", Key: "min_version_ios", Type: "single_line_text_field"},
			{Name: "Min App Version Android", Key: "min_version_android", Type: "single_line_text_field"},
		},
	},
	{
		Name:        "Legal Policy",
		Type:        "legal_policy",
		Description: "Legal policies (privacy, terms, cookies)",
		Fields: []metaobject.FieldConfig{
			{Name: "Type", Key: "type", Type: "single_line_text_field", Required: true, Description: "privacy, terms, cookies, returns, shipping"},
			{Name: "Title", Key: "title", Type: "single_line_text_field", Required: true},
			{Name: "Content", Key: "content", Type: "rich_text_field", Required: true},
			{Name: "Version", Key: "version", Type: "single_line_text_field"},
			{Name: "Last Updated", Key: "last_updated", Type: "date"},
			{Name: "Required for Registration", Key: "required_registration", Type: "boolean"},
			{Name: "Required for Checkout", Key: "required_checkout", Type: "boolean"},
			{Name: "Active", Key: "active", Type: "boolean"},
		},
	},
	{
		Name:        "Newsletter Config",
		Type:        "newsletter_config",
		Description: "Newsletter and subscription settings",
		Fields: []metaobject.FieldConfig{
			{Name: "Enabled", Key: "enabled", Type: "boolean"},
			{Name: "Provider", Key: "provider", Type: "single_line_text_field", Description: "klaviyo, mailchimp, shopify"},
			{Name: "API Key", Key: "api_key", Type: "single_line_text_field"},
			{Name: "List ID", Key: "list_id", Type: "single_line_text_field"},
			{Name: "Popup Title", Key: "popup_title", Type: "single_line_text_field"},
			{Name: "Popup Message", Key: "popup_message", Type: "multi_line_text_field"},
			{Name: "Popup Image", Key: "popup_image", Type: "file_reference"},
			{Name: "Discount Code", Key: "discount_code", Type: "single_line_text_field"},
			{Name: "Show on Home", Key: "show_on_home", Type: "boolean"},
			{Name: "Show on Checkout", Key: "show_on_checkout", Type: "boolean"},
			{Name: "Delay Seconds", Key: "delay_seconds", Type: "number_integer"},
		},
	},
	{
		Name:        "Notification Config",
		Type:        "notification_config",
		Description: "Push notification settings",
		Fields: []metaobject.FieldConfig{
			{Name: "Enabled", Key: "enabled", Type: "boolean"},
			{Name: "Firebase Server Key", Key: "firebase_server_key", Type: "single_line_text_field"},
			{Name: "Order Created", Key: "notify_order_created", Type: "boolean"},
			{Name: "Order Shipped", Key: "notify_order_shipped", Type: "boolean"},
			{Name: "Order Delivered", Key: "notify_order_delivered", Type: "boolean"},
			{Name: "Order Cancelled", Key: "notify_order_cancelled", Type: "boolean"},
			{Name: "Refund Processed", Key: "notify_refund", Type: "boolean"},
			{Name: "Payment Failed", Key: "notify_payment_failed", Type: "boolean"},
			{Name: "Abandoned Cart", Key: "notify_abandoned_cart", Type: "boolean"},
			{Name: "Abandoned Cart Delay (hours)", Key: "abandoned_cart_delay", Type: "number_integer"},
			{Name: "Promo Notifications", Key: "notify_promo", Type: "boolean"},
		},
	},
	{
		Name:        "Deep Link Config",
		Type:        "deep_link_config",
		Description: "Deep link settings (Short.io)",
		Fields: []metaobject.FieldConfig{
			{Name: "iOS App ID", Key: "ios_app_id", Type: "single_line_text_field"},
			{Name: "iOS Bundle ID", Key: "ios_bundle_id", Type: "single_line_text_field"},
			{Name: "Android Package", Key: "android_package", Type: "single_line_text_field"},
			{Name: "Android SHA256", Key: "android_sha256", Type: "single_line_text_field"},
			{Name: "Short.io Domain", Key: "shortio_domain", Type: "single_line_text_field", Description: "Your Short.io domain"},
			{Name: "Short.io API Key", Key: "shortio_api_key", Type: "single_line_text_field"},
			{Name: "Password Reset URL Prefix", Key: "password_reset_prefix", Type: "single_line_text_field"},
			{Name: "Email Verification URL Prefix", Key: "email_verify_prefix", Type: "single_line_text_field"},
			{Name: "Fallback Web URL", Key: "fallback_url", Type: "url"},
		},
	},
	{
		Name:        "Webhook Config",
		Type:        "webhook_config",
		Description: "Webhook settings for the app",
		Fields: []metaobject.FieldConfig{
			{Name: "Webhook URL", Key: "webhook_url", Type: "url", Required: true},
			{Name: "Secret Key", Key: "secret_key", Type: "single_line_text_field"},
			{Name: "Order Create", Key: "order_create", Type: "boolean"},
			{Name: "Order Update", Key: "order_update", Type: "boolean"},
			{Name: "Order Fulfilled", Key: "order_fulfilled", Type: "boolean"},
			{Name: "Order Cancelled", Key: "order_cancelled", Type: "boolean"},
			{Name: "Refund Create", Key: "refund_create", Type: "boolean"},
			{Name: "Customer Create", Key: "customer_create", Type: "boolean"},
			{Name: "Customer Update", Key: "customer_update", Type: "boolean"},
			{Name: "Product Update", Key: "product_update", Type: "boolean"},
			{Name: "Inventory Update", Key: "inventory_update", Type: "boolean"},
		},
	},
	{
		Name:        "Favorites Config",
		Type:        "favorites_config",
		Description: "Wishlist and sync settings",
		Fields: []metaobject.FieldConfig{
			{Name: "Sync Mode", Key: "sync_mode", Type: "single_line_text_field", Description: "local, metafield, both"},
			{Name: "Customer Metafield Namespace", Key: "metafield_namespace", Type: "single_line_text_field"},
			{Name: "Customer Metafield Key", Key: "metafield_key", Type: "single_line_text_field"},
			{Name: "Show Share Button", Key: "show_share", Type: "boolean"},
			{Name: "Max Favorites", Key: "max_favorites", Type: "number_integer"},
			{Name: "Enable Collections", Key: "enable_collections", Type: "boolean"},
		},
	},
	{
		Name:        "Payment Config",
		Type:        "payment_config",
		Description: "Payment methods available in the app",
		Fields: []metaobject.FieldConfig{
			{Name: "Apple Pay Enabled", Key: "apple_pay_enabled", Type: "boolean"},
			{Name: "Google Pay Enabled", Key: "google_pay_enabled", Type: "boolean"},
			{Name: "Credit Card Enabled", Key: "credit_card_enabled", Type: "boolean"},
			{Name: "PayPal Enabled", Key: "paypal_enabled", Type: "boolean"},
			{Name: "Klarna Enabled", Key: "klarna_enabled", Type: "boolean"},
			{Name: "Cash on Delivery", Key: "cod_enabled", Type: "boolean"},
			{Name: "Bank Transfer", Key: "bank_transfer_enabled", Type: "boolean"},
			{Name: "Stripe Public Key", Key: "stripe_public_key", Type: "single_line_text_field"},
			{Name: "PayPal Client ID", Key: "paypal_client_id", Type: "single_line_text_field"},
			{Name: "Payment Instructions", Key: "payment_instructions", Type: "multi_line_text_field"},
		},
	},
	{
		Name:        "Shipping Config",
		Type:        "shipping_config",
		Description: "Shipping and returns settings",
		Fields: []metaobject.FieldConfig{
			{Name: "Free Shipping Threshold", Key: "free_shipping_threshold", Type: "number_decimal"},
			{Name: "Free Shipping Message", Key: "free_shipping_message", Type: "single_line_text_field"},
			{Name: "Standard Shipping Days Min", Key: "standard_days_min", Type: "number_integer"},
			{Name: "Standard Shipping Days Max", Key: "standard_days_max", Type: "number_integer"},
			{Name: "Express Shipping Days Min", Key: "express_days_min", Type: "number_integer"},
			{Name: "Express Shipping Days Max", Key: "express_days_max", Type: "number_integer"},
			{Name: "Return Days Limit", Key: "return_days", Type: "number_integer"},
			{Name: "Return Policy Summary", Key: "return_policy_summary", Type: "multi_line_text_field"},
			{Name: "Shipping Info Text", Key: "shipping_info", Type: "multi_line_text_field"},
			{Name: "Track Order URL", Key: "track_order_url", Type: "url"},
			{Name: "Show Estimated Delivery", Key: "show_estimated_delivery", Type: "boolean"},
		},
	},
}

var defaultSections = []SetupSection{
	{
		ID:          "home",
		Title:       "Home Setup",
		Description: "Configure banners, featured collections and the category grid",
		Metaobjects: []string{"home_banner", "home_featured_collection", "home_category_grid"},
		Route:       "/app/home-setup",
		Icon:        "🏠",
	},
	{
		ID:          "content",
		Title:       "Content",
		Description: "FAQs and contact information",
		Metaobjects: []string{"faq_item", "contact_info"},
		Route:       "/app/content",
		Icon:        "📝",
	},
	{
		ID:          "stores",
		Title:       "Physical Stores",
		Description: "Configure physical store locations",
		Metaobjects: []string{"store_location"},
		Route:       "/app/stores",
		Icon:        "🏪",
	},
	{
		ID:          "payments",
		Title:       "Payment Methods",
		Description: "Configure the available payment methods",
		Metaobjects: []string{"payment_config"},
		Route:       "/app/payments",
		Icon:        "💳",
	},
	{
		ID:          "shipping",
		Title:       "Shipping & Returns",
		Description: "Delivery times, free shipping and return policy",
		Metaobjects: []string{"shipping_config"},
		Route:       "/app/shipping",
		Icon:        "📦",
	},
	{
		ID:          "legal",
		Title:       "Legal & Policies",
		Description: "Privacy policies, terms and conditions",
		Metaobjects: []string{"legal_policy"},
		Route:       "/app/legal",
		Icon:        "📜",
	},
	{
		ID:          "notifications",
		Title:       "Notifications",
		Description: "Push notifications and order webhooks",
		Metaobjects: []string{"notification_config", "webhook_config"},
		Route:       "/app/notifications",
		Icon:        "🔔",
	},
	{
		ID:          "newsletter",
		Title:       "Newsletter",
		Description: "Subscriptions and email marketing popups",
		Metaobjects: []string{"newsletter_config"},
		Route:       "/app/newsletter",
		Icon:        "📧",
	},
	{
		ID:          "favorites",
		Title:       "Favorites",
		Description: "Wishlist and sync configuration",
		Metaobjects: []string{"favorites_config"},
		Route:       "/app/favorites",
		Icon:        "❤️",
	},
	{
		ID:          "deep-links",
		Title:       "Deep Links",
		Description: "Dynamic links for password recovery and more",
		Metaobjects: []string{"deep_link_config"},
		Route:       "/app/deep-links",
		Icon:        "🔗",
	},
	{
		ID:          "reviews",
		Title:       "Reviews",
		Description: "Judge.me or other review provider integration",
		Metaobjects: []string{"reviews_config"},
		Route:       "/app/reviews",
		Icon:        "⭐",
	},
}
