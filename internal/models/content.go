package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContentType string

const (
	ContentTypeArticle ContentType = "ARTICLE"
	ContentTypeAudio   ContentType = "AUDIO"
	ContentTypeEvent   ContentType = "EVENT"
	ContentTypeVideo   ContentType = "VIDEO"
	ContentTypePost    ContentType = "POST"
	ContentTypeBook    ContentType = "BOOK"
)

type DeliveryType string

const (
	DeliveryDigital  DeliveryType = "DIGITAL"
	DeliveryPhysical DeliveryType = "PHYSICAL"
)

type TicketTier string

const (
	TierClassic TicketTier = "CLASSIC"
	TierVIP     TicketTier = "VIP"
	TierPremium TicketTier = "PREMIUM"
)

func (t TicketTier) Valid() bool {
	switch t {
	case TierClassic, TierVIP, TierPremium:
		return true
	}
	return false
}

type Content struct {
	ID           int          `json:"id"`
	ChurchID     int          `json:"church_id"`
	Type         ContentType  `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	DeliveryType DeliveryType `json:"delivery_type"`

	IsPaid   bool             `json:"is_paid"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Currency string           `json:"currency"`

	StartAt  *time.Time `json:"start_at,omitempty"`
	EndAt    *time.Time `json:"end_at,omitempty"`
	Location string     `json:"location,omitempty"`

	// Flat capacity ledger. Capacity == nil means unlimited.
	Capacity    *int `json:"capacity,omitempty"`
	TicketsSold int  `json:"tickets_sold"`

	// Tiered ledger. A tier exists when its price is set; a nil
	// quantity means the tier is unlimited.
	ClassicPrice    *decimal.Decimal `json:"classic_price,omitempty"`
	ClassicQuantity *int             `json:"classic_quantity,omitempty"`
	ClassicSold     int              `json:"classic_sold"`
	VIPPrice        *decimal.Decimal `json:"vip_price,omitempty"`
	VIPQuantity     *int             `json:"vip_quantity,omitempty"`
	VIPSold         int              `json:"vip_sold"`
	PremiumPrice    *decimal.Decimal `json:"premium_price,omitempty"`
	PremiumQuantity *int             `json:"premium_quantity,omitempty"`
	PremiumSold     int              `json:"premium_sold"`

	// Filled by read paths, never stored.
	AvailableTickets *int `json:"available_tickets,omitempty"`
	ClassicAvailable *int `json:"classic_available,omitempty"`
	VIPAvailable     *int `json:"vip_available,omitempty"`
	PremiumAvailable *int `json:"premium_available,omitempty"`

	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Content) IsEvent() bool {
	return c.Type == ContentTypeEvent
}

// Tiered reports whether the event sells through named tiers rather
// than the flat capacity counter.
func (c *Content) Tiered() bool {
	return c.ClassicPrice != nil || c.VIPPrice != nil || c.PremiumPrice != nil
}

func (c *Content) HasTier(tier TicketTier) bool {
	return c.TierPrice(tier) != nil
}

func (c *Content) TierPrice(tier TicketTier) *decimal.Decimal {
	switch tier {
	case TierClassic:
		return c.ClassicPrice
	case TierVIP:
		return c.VIPPrice
	case TierPremium:
		return c.PremiumPrice
	}
	return nil
}

func (c *Content) TierQuantity(tier TicketTier) *int {
	switch tier {
	case TierClassic:
		return c.ClassicQuantity
	case TierVIP:
		return c.VIPQuantity
	case TierPremium:
		return c.PremiumQuantity
	}
	return nil
}

func (c *Content) TierSold(tier TicketTier) int {
	switch tier {
	case TierClassic:
		return c.ClassicSold
	case TierVIP:
		return c.VIPSold
	case TierPremium:
		return c.PremiumSold
	}
	return 0
}

// TierQuantitiesFitCapacity checks the tier sum invariant: when both
// the overall capacity and tier quantities are set, the sum of tier
// quantities must not exceed the capacity.
func (c *Content) TierQuantitiesFitCapacity() bool {
	if c.Capacity == nil {
		return true
	}

	sum := 0
	for _, q := range []*int{c.ClassicQuantity, c.VIPQuantity, c.PremiumQuantity} {
		if q != nil {
			sum += *q
		}
	}

	return sum <= *c.Capacity
}

// UnitPrice resolves the price of one ticket in priority order:
// explicit ticket type price, then the selected tier's price, then
// the content's flat price, then zero.
func (c *Content) UnitPrice(ticketType *TicketType, tier *TicketTier) decimal.Decimal {
	if ticketType != nil {
		return ticketType.Price
	}

	if tier != nil {
		if p := c.TierPrice(*tier); p != nil {
			return *p
		}
	}

	if c.Price != nil {
		return *c.Price
	}

	return decimal.Zero
}

// AvailableUnits computes remaining inventory for a pool: quantity
// minus sold minus unexpired reservations, clamped at zero. A nil
// quantity means unlimited and yields nil.
func AvailableUnits(quantity *int, sold, reserved int) *int {
	if quantity == nil {
		return nil
	}

	available := *quantity - sold - reserved
	if available < 0 {
		available = 0
	}

	return &available
}
