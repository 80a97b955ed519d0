package receipt

import "time"

// Receipt is one fiscal document normalised for downstream accounting.
// All monetary fields are integer minor units (kopecks); Created carries
// the cash register's local time with no timezone attached.
type Receipt struct {
	FiscalSign string     `json:"fiscal_sign"`
	Operation  Operation  `json:"operation"`
	Items      []Position `json:"items"`
	TotalSum   uint64     `json:"total_sum"`
	Payment    Payment    `json:"payment"`
	Created    time.Time  `json:"created"`
}

// Position is one line of a receipt. Quantity is scaled by 1000 to keep
// three fractional digits without floating point.
type Position struct {
	Name     string       `json:"name"`
	Price    uint64       `json:"price"`
	Quantity uint64       `json:"quantity"`
	TotalSum uint64       `json:"total_sum"`
	PayType  PaymentType  `json:"pay_type"`
	PosType  PositionType `json:"pos_type"`
	TaxRate  TaxRate      `json:"tax_rate"`
}

// Payment is the settlement breakdown of a receipt, in minor units.
type Payment struct {
	Cash     uint64 `json:"cash"`
	ECash    uint64 `json:"ecash"`
	Prepaid  uint64 `json:"prepaid"`
	Postpaid uint64 `json:"postpaid"`
}
