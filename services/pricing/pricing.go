package pricing

import "hospitality/models"

// ComputeStayTotal prices a stay as nightly rate times nights, all in minor
// currency units. Money never touches floating point: rates are stored in
// cents and the product of two integers stays exact. A stay of less than one
// night cannot be priced and yields models.ErrInvalidDateRange.
func ComputeStayTotal(rateCents int64, checkIn, checkOut string) (int64, error) {
	nights, err := models.Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	if nights < 1 {
		return 0, models.ErrInvalidDateRange
	}
	return rateCents * int64(nights), nil
}
