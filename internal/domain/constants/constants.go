// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the environment name used on developer machines.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events over plain HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// NotificationTypeGeofenceOffer is the ledger notification kind for offer pushes.
	NotificationTypeGeofenceOffer = "geofence_offer"
)
