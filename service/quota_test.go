package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuota(t *testing.T) {
	testCases := []struct {
		name       string
		dailyLimit int
		totalLimit int
		today      int
		total      int
		want       QuotaStatus
	}{
		{
			name:       "untouched quota",
			dailyLimit: 5,
			totalLimit: 100,
			today:      0,
			total:      0,
			want:       QuotaStatus{DailyRemaining: 5, TotalRemaining: 100},
		},
		{
			name:       "partially used",
			dailyLimit: 5,
			totalLimit: 100,
			today:      3,
			total:      42,
			want:       QuotaStatus{DailyRemaining: 2, TotalRemaining: 58},
		},
		{
			name:       "daily exhausted",
			dailyLimit: 5,
			totalLimit: 100,
			today:      5,
			total:      40,
			want:       QuotaStatus{DailyRemaining: 0, TotalRemaining: 60},
		},
		{
			name:       "overshoot clamps to zero",
			dailyLimit: 5,
			totalLimit: 100,
			today:      7,
			total:      104,
			want:       QuotaStatus{DailyRemaining: 0, TotalRemaining: 0},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeQuota(tc.dailyLimit, tc.totalLimit, tc.today, tc.total)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQuotaStatusExhausted(t *testing.T) {
	assert.False(t, QuotaStatus{DailyRemaining: 1, TotalRemaining: 1}.Exhausted())
	assert.True(t, QuotaStatus{DailyRemaining: 0, TotalRemaining: 10}.Exhausted())
	assert.True(t, QuotaStatus{DailyRemaining: 3, TotalRemaining: 0}.Exhausted())
}
