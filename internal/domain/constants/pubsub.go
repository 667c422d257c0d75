package constants

// Pub/Sub providers selectable in configuration
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute keys
const (
	AttrEventID   = "event_id"
	AttrOwnerID   = "owner_id"
	AttrRequestID = "request_id"
)

// EnvDevelop is the env.env value of local development
const EnvDevelop = "develop"
