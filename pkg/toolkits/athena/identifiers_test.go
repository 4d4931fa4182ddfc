package athena

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	valid := []string{"orders", "Orders2024", "_staging", "a", "customer_events"}
	for _, name := range valid {
		assert.NoError(t, validateTableName(name), "name %q", name)
	}

	invalid := []string{
		"",
		"orders; DROP TABLE users",
		"orders.items",
		"orders--",
		"2024orders",
		"orders name",
		`orders"`,
		strings.Repeat("a", maxIdentifierLen+1),
	}
	for _, name := range invalid {
		assert.Error(t, validateTableName(name), "name %q", name)
	}
}

func TestValidateSampleLimit(t *testing.T) {
	assert.NoError(t, validateSampleLimit(1, 1000))
	assert.NoError(t, validateSampleLimit(1000, 1000))
	assert.Error(t, validateSampleLimit(0, 1000))
	assert.Error(t, validateSampleLimit(-5, 1000))
	assert.Error(t, validateSampleLimit(1001, 1000))
}
