package utils_test

import (
	"testing"

	"courtside/src-server/utils"
)

func TestNormalizeSport(t *testing.T) {
	for input, want := range map[string]string{
		"basketball": "Basketball",
		" soccer ":   "Soccer",
		"Tennis":     "Tennis",
		"ice hockey": "Ice Hockey",
	} {
		if got := utils.NormalizeSport(input); got != want {
			t.Errorf("NormalizeSport(%q) = %q, want %q", input, got, want)
		}
	}
}
