package source

import (
	"fmt"
	"time"

	"ofd_import/internal/validate"
)

type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Credentials identify one cash register at the operator. The tax id and
// device id only ever change through the validating setters, so a
// Credentials value in hand is safe to put on the wire.
type Credentials struct {
	APIKey        string
	TaxID         string
	DeviceID      string
	StorageSerial string
}

func NewCredentials(apiKey, taxID, deviceID, storageSerial string) (Credentials, error) {
	creds := Credentials{APIKey: apiKey, StorageSerial: storageSerial}

	creds, err := creds.WithTaxID(taxID)
	if err != nil {
		return Credentials{}, err
	}
	creds, err = creds.WithDeviceID(deviceID)
	if err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// WithTaxID returns a copy with the tax id replaced. On invalid input
// the receiver comes back unchanged, so the last valid value survives a
// bad edit.
func (c Credentials) WithTaxID(v string) (Credentials, error) {
	if !validate.TaxID(v) {
		return c, &ValidationError{Field: "tax id", Value: v}
	}
	c.TaxID = v
	return c, nil
}

// WithDeviceID returns a copy with the register id replaced, with the
// same keep-on-failure contract as WithTaxID.
func (c Credentials) WithDeviceID(v string) (Credentials, error) {
	if !validate.DeviceID(v) {
		return c, &ValidationError{Field: "device id", Value: v}
	}
	c.DeviceID = v
	return c, nil
}

// DateRange is an inclusive pair of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days lists every calendar day from Start to End inclusive, ascending.
// An End before Start yields an empty range.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for day := r.Start; !day.After(r.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
