package ofd

import (
	"fmt"
	"time"

	"ofd_import/internal/receipt"
)

// Local time of the register, no offset.
const transactionDateLayout = "2006-01-02T15:04:05"

// MapReceipt converts one raw operator document into the canonical
// receipt record. It is pure: same document in, same receipt out. A
// missing required field or an unknown enum code is an error — it means
// the API contract changed, and masking that would corrupt accounting
// downstream.
func MapReceipt(doc Document) (receipt.Receipt, error) {
	fiscalSign, err := reqString(doc.FiscalSign, "fiscalSign")
	if err != nil {
		return receipt.Receipt{}, err
	}
	if doc.Ticket == nil {
		return receipt.Receipt{}, fmt.Errorf("document %s: missing ticket", fiscalSign)
	}
	ticket := doc.Ticket

	opCode, err := reqInt(ticket.OperationType, "operationType")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}
	operation, err := receipt.ParseOperation(opCode)
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}

	totalSum, err := reqMinorUnits(ticket.TotalSum, "totalSum")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}
	cash, err := reqMinorUnits(ticket.CashTotalSum, "cashTotalSum")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}
	ecash, err := reqMinorUnits(ticket.EcashTotalSum, "ecashTotalSum")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}
	prepaid, err := reqMinorUnits(ticket.PrepaymentSum, "prepaymentSum")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}
	postpaid, err := reqMinorUnits(ticket.PostpaymentSum, "postpaymentSum")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}

	rawDate, err := reqString(ticket.TransactionDate, "transactionDate")
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, err)
	}
	created, err := time.Parse(transactionDateLayout, rawDate)
	if err != nil {
		return receipt.Receipt{}, docErr(fiscalSign, fmt.Errorf("transactionDate: %w", err))
	}

	items := make([]receipt.Position, len(ticket.Items))
	for i, item := range ticket.Items {
		position, err := mapPosition(item)
		if err != nil {
			return receipt.Receipt{}, fmt.Errorf("document %s: item %d: %w", fiscalSign, i, err)
		}
		items[i] = position
	}

	return receipt.Receipt{
		FiscalSign: fiscalSign,
		Operation:  operation,
		Items:      items,
		TotalSum:   totalSum,
		Payment: receipt.Payment{
			Cash:     cash,
			ECash:    ecash,
			Prepaid:  prepaid,
			Postpaid: postpaid,
		},
		Created: created,
	}, nil
}

func mapPosition(item Item) (receipt.Position, error) {
	name, err := reqString(item.Name, "name")
	if err != nil {
		return receipt.Position{}, err
	}
	price, err := reqMinorUnits(item.Price, "price")
	if err != nil {
		return receipt.Position{}, err
	}
	sum, err := reqMinorUnits(item.Sum, "sum")
	if err != nil {
		return receipt.Position{}, err
	}
	rawQuantity, err := reqFloat(item.Quantity, "quantity")
	if err != nil {
		return receipt.Position{}, err
	}

	payCode, err := reqInt(item.CalculationTypeSign, "calculationTypeSign")
	if err != nil {
		return receipt.Position{}, err
	}
	payType, err := receipt.ParsePaymentType(payCode)
	if err != nil {
		return receipt.Position{}, err
	}

	posCode, err := reqInt(item.CalculationSubjectSign, "calculationSubjectSign")
	if err != nil {
		return receipt.Position{}, err
	}
	posType, err := receipt.ParsePositionType(posCode)
	if err != nil {
		return receipt.Position{}, err
	}

	ndsCode, err := reqInt(item.NdsRate, "ndsRate")
	if err != nil {
		return receipt.Position{}, err
	}
	taxRate, err := receipt.ParseTaxRate(ndsCode)
	if err != nil {
		return receipt.Position{}, err
	}

	return receipt.Position{
		Name:     name,
		Price:    price,
		Quantity: receipt.ScaleQuantity(rawQuantity),
		TotalSum: sum,
		PayType:  payType,
		PosType:  posType,
		TaxRate:  taxRate,
	}, nil
}

func docErr(fiscalSign string, err error) error {
	return fmt.Errorf("document %s: %w", fiscalSign, err)
}

func reqString(v *string, name string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("missing %s", name)
	}
	return *v, nil
}

func reqInt(v *int, name string) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("missing %s", name)
	}
	return *v, nil
}

func reqFloat(v *float64, name string) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("missing %s", name)
	}
	return *v, nil
}

func reqMinorUnits(v *float64, name string) (uint64, error) {
	raw, err := reqFloat(v, name)
	if err != nil {
		return 0, err
	}
	return receipt.MinorUnits(raw), nil
}
