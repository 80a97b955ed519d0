package source

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewCredentials", func() {
	It("accepts valid identifiers", func() {
		creds, err := NewCredentials("secret", "7707083893", "0000000001033218", "9999078900001341")
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.TaxID).To(Equal("7707083893"))
		Expect(creds.DeviceID).To(Equal("0000000001033218"))
	})

	It("rejects a malformed tax id", func() {
		_, err := NewCredentials("secret", "123", "0000000001033218", "sn")
		var vErr *ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Field).To(Equal("tax id"))
	})

	It("rejects a malformed device id", func() {
		_, err := NewCredentials("secret", "7707083893", "12345", "sn")
		Expect(err).To(MatchError(ContainSubstring("device id")))
	})

	It("leaves the storage serial free-form", func() {
		creds, err := NewCredentials("secret", "7707083893", "0000000001033218", "любая строка")
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.StorageSerial).To(Equal("любая строка"))
	})
})

var _ = Describe("Credentials setters", func() {
	var creds Credentials

	BeforeEach(func() {
		var err error
		creds, err = NewCredentials("secret", "7707083893", "0000000001033218", "sn")
		Expect(err).NotTo(HaveOccurred())
	})

	It("replaces the tax id with another valid one", func() {
		updated, err := creds.WithTaxID("500100732259")
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.TaxID).To(Equal("500100732259"))
	})

	It("keeps the previous tax id when the new one fails the checksum", func() {
		updated, err := creds.WithTaxID("7707083894")
		Expect(err).To(HaveOccurred())
		Expect(updated.TaxID).To(Equal("7707083893"))
	})

	It("keeps the previous device id when the new one is malformed", func() {
		updated, err := creds.WithDeviceID("not-a-register")
		Expect(err).To(HaveOccurred())
		Expect(updated.DeviceID).To(Equal("0000000001033218"))
	})
})
