package tutil

import (
	"os"
	"strings"
	"testing"
)

func IsIntegrationTest() bool {
	testType := os.Getenv("MSWEB_TEST")
	return strings.ToLower(testType) == "integration"
}

// RequireIntegration skips t unless MSWEB_TEST=integration and every named
// environment variable is set. It returns the variables' values in order.
func RequireIntegration(t *testing.T, envVars ...string) []string {
	t.Helper()

	if !IsIntegrationTest() {
		t.Skip("set MSWEB_TEST=integration to run")
	}

	values := make([]string, 0, len(envVars))
	for _, name := range envVars {
		v := os.Getenv(name)
		if v == "" {
			t.Skipf("%s not set", name)
		}
		values = append(values, v)
	}

	return values
}
