package entity

// Decision is the outcome of running one geofence event through the pipeline.
type Decision struct {
	Status ThrottleStatus
	Reason ThrottleReason
	Offer  *Offer
	Log    *NotificationThrottleLog
}

// IsSent reports whether a notification was handed to the channel successfully.
func (d *Decision) IsSent() bool {
	return d != nil && d.Status == ThrottleStatusSent
}
