package model

import "time"

// The catalog tables are owned by the merchant platform and only read here.

// BranchModel maps the 'branches' table.
type BranchModel struct {
	ID      int64  `gorm:"primaryKey"`
	BrandID int64  `gorm:"not null;index"`
	Name    string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (BranchModel) TableName() string {
	return "branches"
}

// UserInterestModel maps the 'user_interests' join table.
type UserInterestModel struct {
	UserID     int64 `gorm:"primaryKey"`
	CategoryID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UserInterestModel) TableName() string {
	return "user_interests"
}

// BrandCategoryModel maps the 'brand_categories' join table.
type BrandCategoryModel struct {
	BrandID    int64 `gorm:"primaryKey"`
	CategoryID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (BrandCategoryModel) TableName() string {
	return "brand_categories"
}

// OfferModel maps the 'offers' table.
type OfferModel struct {
	ID            int64   `gorm:"primaryKey"`
	BrandID       int64   `gorm:"not null;index"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Description   string  `gorm:"type:text"`
	Status        string  `gorm:"type:varchar(20);not null;index"`
	DiscountValue float64 `gorm:"type:decimal(10,2);not null"`
	StartDate     *time.Time
	EndDate       *time.Time
	MaxClaims     *int
	ClaimsCount   int `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
