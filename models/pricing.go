package models

// PricingTier is a row of the pricing_tiers table. The table is edited by
// the admin back-office and read-only from this service's perspective.
type PricingTier struct {
	Key           string  `gorm:"primaryKey;type:varchar(20)" json:"key"`
	Title         string  `gorm:"not null" json:"title"`
	Price         int     `gorm:"not null" json:"price"` // smallest no-decimals currency unit
	OriginalPrice int     `json:"original_price"`
	FeaturesJSON  string  `gorm:"column:features;type:jsonb" json:"-"`
	IsPopular     bool    `json:"is_popular"`
	Urgency       *string `json:"urgency,omitempty"`
}

func (PricingTier) TableName() string { return "pricing_tiers" }

// DefaultPricingTiers mirrors the launch pricing configuration. Used when
// the pricing_tiers table has not been seeded yet.
func DefaultPricingTiers() map[string]PricingTier {
	vipUrgency := "Залишилось 3 місця"
	return map[string]PricingTier{
		"basic":   {Key: "basic", Title: "Базовий", Price: 799, OriginalPrice: 1200},
		"premium": {Key: "premium", Title: "Преміум", Price: 7999, OriginalPrice: 12800, IsPopular: true},
		"vip":     {Key: "vip", Title: "VIP", Price: 12999, OriginalPrice: 19999, Urgency: &vipUrgency},
	}
}
