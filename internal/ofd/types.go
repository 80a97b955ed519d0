package ofd

// Raw document shapes as served by the operator's rent API. Pointer
// fields are required by the mapping; a nil one means the operator
// changed the contract and mapping must fail loudly.

type Document struct {
	FiscalSign *string `json:"fiscalSign"`
	Ticket     *Ticket `json:"ticket"`
}

type Ticket struct {
	OperationType   *int     `json:"operationType"`
	TotalSum        *float64 `json:"totalSum"`
	CashTotalSum    *float64 `json:"cashTotalSum"`
	EcashTotalSum   *float64 `json:"ecashTotalSum"`
	PrepaymentSum   *float64 `json:"prepaymentSum"`
	PostpaymentSum  *float64 `json:"postpaymentSum"`
	TransactionDate *string  `json:"transactionDate"`
	Items           []Item   `json:"items"`
}

type Item struct {
	Name                   *string  `json:"name"`
	Price                  *float64 `json:"price"`
	Quantity               *float64 `json:"quantity"`
	Sum                    *float64 `json:"sum"`
	CalculationTypeSign    *int     `json:"calculationTypeSign"`
	CalculationSubjectSign *int     `json:"calculationSubjectSign"`
	NdsRate                *int     `json:"ndsRate"`
}

type authResponse struct {
	Token string `json:"token"`
}

type documentsResponse struct {
	Documents *[]Document `json:"documents"`
}
