package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event transport providers selectable through pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Logical storage buckets
const (
	BucketPaymentProofs = "payment-proofs"
	BucketProductImages = "product-images"
	BucketInvoices      = "invoices"
)

// LowStockThreshold is the highest stock count still reported as low stock.
const LowStockThreshold = 10
