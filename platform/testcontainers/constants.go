package testcontainers

// MongoDB constants
const (
	MongoContainerName = "mongo"
	MongoNetworkAlias  = "mongo"
	MongoPort          = "27017"

	// MongoDB environment variables understood by the application config.
	MongoHostKey      = "MONGO_HOST"
	MongoPortKey      = "MONGO_PORT"
	MongoDatabaseKey  = "MONGO_DATABASE"
	MongoUsernameKey  = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey  = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
	MongoAuthDBKey    = "MONGO_AUTH_DB"
	MongoInventoryKey = "MONGO_INVENTORY_COLLECTION"
	MongoOrdersKey    = "MONGO_PURCHASE_ORDERS_COLLECTION"
)
