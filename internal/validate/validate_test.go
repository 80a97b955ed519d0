package validate

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestValidate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validate Suite")
}

var _ = Describe("TaxID", func() {
	It("accepts a valid 10-digit organisation id", func() {
		Expect(TaxID("7707083893")).To(BeTrue())
	})

	It("accepts a valid 12-digit individual id", func() {
		Expect(TaxID("500100732259")).To(BeTrue())
	})

	It("rejects a 10-digit id with a wrong check digit", func() {
		Expect(TaxID("7707083894")).To(BeFalse())
	})

	It("rejects a 12-digit id with a wrong check digit", func() {
		Expect(TaxID("500100732258")).To(BeFalse())
	})

	It("rejects wrong lengths", func() {
		Expect(TaxID("77070838")).To(BeFalse())
		Expect(TaxID("77070838931")).To(BeFalse())
	})

	It("rejects non-digit characters", func() {
		Expect(TaxID("77070838a3")).To(BeFalse())
	})

	It("rejects the empty string", func() {
		Expect(TaxID("")).To(BeFalse())
	})
})

var _ = Describe("DeviceID", func() {
	It("accepts a 16-digit registration number", func() {
		Expect(DeviceID("0000000001033218")).To(BeTrue())
	})

	It("rejects shorter and longer values", func() {
		Expect(DeviceID("000000000103321")).To(BeFalse())
		Expect(DeviceID("00000000010332181")).To(BeFalse())
	})

	It("rejects non-digit characters", func() {
		Expect(DeviceID("000000000103321a")).To(BeFalse())
	})

	It("rejects the empty string", func() {
		Expect(DeviceID("")).To(BeFalse())
	})
})
