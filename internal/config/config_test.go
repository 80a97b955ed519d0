package config

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Config.FileLogLevel", func() {
	It("defaults to info", func() {
		Expect(Config{}.FileLogLevel()).To(Equal(zapcore.InfoLevel))
	})

	It("widens to debug when the debug flag is set", func() {
		Expect(Config{Debug: true}.FileLogLevel()).To(Equal(zapcore.DebugLevel))
	})
})
