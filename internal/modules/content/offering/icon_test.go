package offering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIconKeepsKnownNames(t *testing.T) {
	for _, name := range []string{"Coins", "Rocket", "BarChart3", "Users"} {
		assert.Equal(t, name, NormalizeIcon(name))
	}
}

func TestNormalizeIconFallsBack(t *testing.T) {
	cases := []string{"", "coins", "Sparkles", "BARCHART3", "rocket ", "💰"}
	for _, name := range cases {
		assert.Equal(t, DefaultIcon, NormalizeIcon(name), "input %q", name)
	}
}
