package receipt

import "fmt"

// The fiscal document format encodes these fields as small integers.
// Each decode is total: a code outside the table is an error, never a
// silently defaulted value.

// Operation is the kind of settlement a receipt registers (tag 1054).
type Operation int

const (
	OpSale           Operation = 1
	OpSaleRefund     Operation = 2
	OpPurchase       Operation = 3
	OpPurchaseRefund Operation = 4
)

var operationNames = map[Operation]string{
	OpSale:           "sale",
	OpSaleRefund:     "sale_refund",
	OpPurchase:       "purchase",
	OpPurchaseRefund: "purchase_refund",
}

func ParseOperation(code int) (Operation, error) {
	op := Operation(code)
	if _, ok := operationNames[op]; !ok {
		return 0, fmt.Errorf("unknown operation type %d", code)
	}
	return op, nil
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// PaymentType is the settlement method of a position (tag 1214).
type PaymentType int

const (
	PayFullPrepayment    PaymentType = 1
	PayPartialPrepayment PaymentType = 2
	PayAdvance           PaymentType = 3
	PayFull              PaymentType = 4
	PayPartialCredit     PaymentType = 5
	PayCreditTransfer    PaymentType = 6
	PayCreditRepayment   PaymentType = 7
)

var paymentTypeNames = map[PaymentType]string{
	PayFullPrepayment:    "full_prepayment",
	PayPartialPrepayment: "partial_prepayment",
	PayAdvance:           "advance",
	PayFull:              "full_payment",
	PayPartialCredit:     "partial_payment_credit",
	PayCreditTransfer:    "credit_transfer",
	PayCreditRepayment:   "credit_repayment",
}

func ParsePaymentType(code int) (PaymentType, error) {
	pt := PaymentType(code)
	if _, ok := paymentTypeNames[pt]; !ok {
		return 0, fmt.Errorf("unknown calculation type sign %d", code)
	}
	return pt, nil
}

func (p PaymentType) String() string {
	if name, ok := paymentTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("payment_type(%d)", int(p))
}

// PositionType is the settlement subject of a position (tag 1212).
type PositionType int

const (
	PosGood                 PositionType = 1
	PosExciseGood           PositionType = 2
	PosJob                  PositionType = 3
	PosService              PositionType = 4
	PosGamblingBet          PositionType = 5
	PosGamblingWin          PositionType = 6
	PosLotteryTicket        PositionType = 7
	PosLotteryWin           PositionType = 8
	PosIntellectualProperty PositionType = 9
	PosPayment              PositionType = 10
	PosAgentFee             PositionType = 11
	PosComposite            PositionType = 12
	PosOther                PositionType = 13
)

var positionTypeNames = map[PositionType]string{
	PosGood:                 "good",
	PosExciseGood:           "excise_good",
	PosJob:                  "job",
	PosService:              "service",
	PosGamblingBet:          "gambling_bet",
	PosGamblingWin:          "gambling_win",
	PosLotteryTicket:        "lottery_ticket",
	PosLotteryWin:           "lottery_win",
	PosIntellectualProperty: "intellectual_property",
	PosPayment:              "payment",
	PosAgentFee:             "agent_fee",
	PosComposite:            "composite",
	PosOther:                "other",
}

func ParsePositionType(code int) (PositionType, error) {
	pt := PositionType(code)
	if _, ok := positionTypeNames[pt]; !ok {
		return 0, fmt.Errorf("unknown calculation subject sign %d", code)
	}
	return pt, nil
}

func (p PositionType) String() string {
	if name, ok := positionTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("position_type(%d)", int(p))
}

// TaxRate is the VAT rate applied to a position (tag 1199).
type TaxRate int

const (
	Vat20     TaxRate = 1
	Vat10     TaxRate = 2
	Vat20_120 TaxRate = 3
	Vat10_110 TaxRate = 4
	Vat0      TaxRate = 5
	VatNone   TaxRate = 6
)

var taxRateNames = map[TaxRate]string{
	Vat20:     "vat_20",
	Vat10:     "vat_10",
	Vat20_120: "vat_20_120",
	Vat10_110: "vat_10_110",
	Vat0:      "vat_0",
	VatNone:   "vat_none",
}

func ParseTaxRate(code int) (TaxRate, error) {
	tr := TaxRate(code)
	if _, ok := taxRateNames[tr]; !ok {
		return 0, fmt.Errorf("unknown nds rate %d", code)
	}
	return tr, nil
}

func (t TaxRate) String() string {
	if name, ok := taxRateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tax_rate(%d)", int(t))
}
