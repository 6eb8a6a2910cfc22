// Package model contains the GORM table mappings of the persistence layer.
package model

// All returns every mapped table, for migrations and query generation.
func All() []any {
	return []any{
		&UserDeviceModel{},
		&NotificationThrottleLogModel{},
		&GeofenceModel{},
		&BranchModel{},
		&UserInterestModel{},
		&BrandCategoryModel{},
		&OfferModel{},
	}
}
