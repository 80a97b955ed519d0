package ofd

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ofd_import/internal/receipt"
)

func ptr[T any](v T) *T {
	return &v
}

func wellFormedDocument() Document {
	return Document{
		FiscalSign: ptr("2821037542"),
		Ticket: &Ticket{
			OperationType:   ptr(1),
			TotalSum:        ptr(154.30),
			CashTotalSum:    ptr(100.00),
			EcashTotalSum:   ptr(54.30),
			PrepaymentSum:   ptr(0.0),
			PostpaymentSum:  ptr(0.0),
			TransactionDate: ptr("2024-03-01T12:30:45"),
			Items: []Item{
				{
					Name:                   ptr("Кофе зерновой"),
					Price:                  ptr(12.34),
					Quantity:               ptr(2.5),
					Sum:                    ptr(30.85),
					CalculationTypeSign:    ptr(4),
					CalculationSubjectSign: ptr(1),
					NdsRate:                ptr(2),
				},
				{
					Name:                   ptr("Доставка"),
					Price:                  ptr(123.45),
					Quantity:               ptr(1.0),
					Sum:                    ptr(123.45),
					CalculationTypeSign:    ptr(4),
					CalculationSubjectSign: ptr(4),
					NdsRate:                ptr(6),
				},
			},
		},
	}
}

var _ = Describe("MapReceipt", func() {
	When("the document is well-formed", func() {
		var (
			mapped receipt.Receipt
			err    error
		)

		BeforeEach(func() {
			mapped, err = MapReceipt(wellFormedDocument())
			Expect(err).NotTo(HaveOccurred())
		})

		It("copies the fiscal sign verbatim", func() {
			Expect(mapped.FiscalSign).To(Equal("2821037542"))
		})

		It("decodes the operation", func() {
			Expect(mapped.Operation).To(Equal(receipt.OpSale))
		})

		It("scales the totals to minor units", func() {
			Expect(mapped.TotalSum).To(Equal(uint64(15430)))
			Expect(mapped.Payment).To(Equal(receipt.Payment{
				Cash:     10000,
				ECash:    5430,
				Prepaid:  0,
				Postpaid: 0,
			}))
		})

		It("parses the local transaction timestamp", func() {
			Expect(mapped.Created).To(Equal(time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)))
		})

		It("maps every item into a position", func() {
			Expect(mapped.Items).To(HaveLen(2))
			Expect(mapped.Items[0]).To(Equal(receipt.Position{
				Name:     "Кофе зерновой",
				Price:    1234,
				Quantity: 2500,
				TotalSum: 3085,
				PayType:  receipt.PayFull,
				PosType:  receipt.PosGood,
				TaxRate:  receipt.Vat10,
			}))
			Expect(mapped.Items[1].PosType).To(Equal(receipt.PosService))
			Expect(mapped.Items[1].TaxRate).To(Equal(receipt.VatNone))
		})
	})

	When("a receipt has no items", func() {
		It("maps to an empty position list", func() {
			doc := wellFormedDocument()
			doc.Ticket.Items = nil
			mapped, err := MapReceipt(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(mapped.Items).To(BeEmpty())
		})
	})

	When("required fields are missing", func() {
		It("fails on a missing fiscal sign", func() {
			doc := wellFormedDocument()
			doc.FiscalSign = nil
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("fiscalSign")))
		})

		It("fails on a missing ticket", func() {
			doc := wellFormedDocument()
			doc.Ticket = nil
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("ticket")))
		})

		It("fails on a missing total", func() {
			doc := wellFormedDocument()
			doc.Ticket.TotalSum = nil
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("totalSum")))
		})

		It("fails on a missing item quantity", func() {
			doc := wellFormedDocument()
			doc.Ticket.Items[0].Quantity = nil
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("quantity")))
		})
	})

	When("enum codes are out of range", func() {
		It("fails on an unknown operation type", func() {
			doc := wellFormedDocument()
			doc.Ticket.OperationType = ptr(9)
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("operation type")))
		})

		It("fails on an unknown nds rate instead of defaulting", func() {
			doc := wellFormedDocument()
			doc.Ticket.Items[0].NdsRate = ptr(0)
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("nds rate")))
		})

		It("fails on an unknown calculation subject sign", func() {
			doc := wellFormedDocument()
			doc.Ticket.Items[1].CalculationSubjectSign = ptr(99)
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("subject sign")))
		})
	})

	When("the transaction date is malformed", func() {
		It("fails", func() {
			doc := wellFormedDocument()
			doc.Ticket.TransactionDate = ptr("01.03.2024 12:30")
			_, err := MapReceipt(doc)
			Expect(err).To(MatchError(ContainSubstring("transactionDate")))
		})
	})
})
