package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var allKeys = []string{
	EnvName, EnvLog, EnvRecordDB, EnvMonitor, EnvMonitorPort, EnvOpenBrowser,
	EnvParallelIDs,
}

var _ = Describe("Config", func() {
	var (
		dir string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		for _, key := range allKeys {
			if value, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, value)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}

			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	writeEnvFile := func(content string) string {
		path := filepath.Join(dir, ".env")
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

		return path
	}

	It("should use defaults when nothing is set", func() {
		c, err := Load(filepath.Join(dir, "missing.env"))

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(DefaultConfig()))
		Expect(c.Name).To(Equal("Adder"))
	})

	It("should load from an env file", func() {
		path := writeEnvFile(
			"ADDER_NAME=Calc\n" +
				"ADDER_LOG=true\n" +
				"ADDER_RECORD_DB=additions\n" +
				"ADDER_MONITOR=1\n" +
				"ADDER_MONITOR_PORT=32000\n" +
				"ADDER_OPEN_BROWSER=false\n" +
				"ADDER_PARALLEL_IDS=true\n")

		c, err := Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(Config{
			Name:        "Calc",
			Log:         true,
			RecordDB:    "additions",
			Monitor:     true,
			MonitorPort: 32000,
			ParallelIDs: true,
		}))
	})

	It("should prefer the environment over the file", func() {
		path := writeEnvFile("ADDER_NAME=FromFile\n")
		Expect(os.Setenv(EnvName, "FromEnv")).To(Succeed())

		c, err := Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Name).To(Equal("FromEnv"))
	})

	It("should reject invalid booleans", func() {
		Expect(os.Setenv(EnvLog, "sometimes")).To(Succeed())

		_, err := FromEnv()

		Expect(err).To(MatchError(ContainSubstring(EnvLog)))
	})

	It("should reject invalid ports", func() {
		Expect(os.Setenv(EnvMonitorPort, "http")).To(Succeed())

		_, err := FromEnv()

		Expect(err).To(MatchError(ContainSubstring(EnvMonitorPort)))
	})
})
