package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Happy Path Tests
// =============================================================================

func TestPorter_StemsPlurals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fox", Porter("foxes"))
	assert.Equal(t, "run", Porter("running"))
}

func TestPorter_IsIdempotentOnAlreadyStemmedInput(t *testing.T) {
	t.Parallel()

	once := Porter("connection")
	twice := Porter(once)
	assert.Equal(t, once, twice)
}

// =============================================================================
// Edge Cases
// =============================================================================

func TestPorter_EmptyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Porter(""))
}
