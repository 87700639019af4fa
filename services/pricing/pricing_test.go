package pricing

import (
	"testing"

	"hospitality/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStayTotal(t *testing.T) {
	tests := []struct {
		name      string
		rateCents int64
		checkIn   string
		checkOut  string
		want      int64
		wantErr   error
	}{
		{name: "two nights standard", rateCents: 80000, checkIn: "2024-03-10", checkOut: "2024-03-12", want: 160000},
		{name: "one night suite", rateCents: 200000, checkIn: "2024-03-10", checkOut: "2024-03-11", want: 200000},
		{name: "week long deluxe", rateCents: 120000, checkIn: "2024-03-01", checkOut: "2024-03-08", want: 840000},
		{name: "same day stay rejected", rateCents: 80000, checkIn: "2024-03-10", checkOut: "2024-03-10", wantErr: models.ErrInvalidDateRange},
		{name: "inverted range rejected", rateCents: 80000, checkIn: "2024-03-12", checkOut: "2024-03-10", wantErr: models.ErrInvalidDateRange},
		{name: "malformed date rejected", rateCents: 80000, checkIn: "March 10", checkOut: "2024-03-12", wantErr: models.ErrInvalidDateRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeStayTotal(tc.rateCents, tc.checkIn, tc.checkOut)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Integer cents must not accumulate the drift a float nightly rate would.
// 199999 cents over 31 nights has an exact integer product.
func TestComputeStayTotalExactOverLongStay(t *testing.T) {
	got, err := ComputeStayTotal(199999, "2024-01-01", "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, int64(6199969), got)
}
