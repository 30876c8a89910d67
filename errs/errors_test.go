package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsDomainThroughWrapping(t *testing.T) {
	base := QuotaExceeded(42, 5, "daily")
	wrapped := fmt.Errorf("SubmitPrediction failed at quota check: %w", base)

	de, ok := AsDomain(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeQuotaExceeded, de.Code)
	assert.Equal(t, uint64(42), de.CompetitionID)
	assert.Equal(t, 5, de.Limit)
}

func TestAsDomainPlainError(t *testing.T) {
	_, ok := AsDomain(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = AsDomain(nil)
	assert.False(t, ok)
}

func TestDomainErrorMessage(t *testing.T) {
	assert.Contains(t, NotEligible(7).Error(), "competition 7")
	assert.NotContains(t, MalformedInput("bad field").Error(), "competition")
}
