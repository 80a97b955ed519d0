package cli

import "time"

type Options struct {
	APIKey        string
	TaxID         string
	DeviceID      string
	StorageSerial string
	From          string
	To            string
	BaseURL       string
	JSON          bool
	Debug         bool
	LogFile       string
	Timeout       time.Duration
}
