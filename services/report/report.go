package report

import (
	"hospitality/database/repository/room"
	"hospitality/models"
)

// RoomStats is the front-desk occupancy snapshot. It counts the housekeeping
// flag only; rooms blocked by future reservations still count as available
// until housekeeping marks them otherwise.
type RoomStats struct {
	Total         int64   `json:"total"`
	Occupied      int64   `json:"occupied"`
	Available     int64   `json:"available"`
	Dirty         int64   `json:"dirty"`
	Maintenance   int64   `json:"maintenance"`
	OccupancyRate float64 `json:"occupancy_rate"` // occupied / total, 0 on an empty hotel
}

// ReportService produces operational summaries over the inventory.
type ReportService interface {
	GetRoomStats() (*RoomStats, error)
}

// DefaultReportService implements ReportService.
type DefaultReportService struct {
	rooms roomRepo.RoomRepository
}

// NewReportService creates a ReportService.
func NewReportService(rooms roomRepo.RoomRepository) *DefaultReportService {
	return &DefaultReportService{rooms: rooms}
}

// GetRoomStats counts rooms per housekeeping status.
func (s *DefaultReportService) GetRoomStats() (*RoomStats, error) {
	total, err := s.rooms.Count()
	if err != nil {
		return nil, err
	}

	stats := &RoomStats{Total: total}
	counts := []struct {
		status models.RoomStatus
		dst    *int64
	}{
		{models.RoomStatusOccupied, &stats.Occupied},
		{models.RoomStatusAvailable, &stats.Available},
		{models.RoomStatusDirty, &stats.Dirty},
		{models.RoomStatusMaintenance, &stats.Maintenance},
	}
	for _, c := range counts {
		n, err := s.rooms.CountByStatus(c.status)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	if total > 0 {
		stats.OccupancyRate = float64(stats.Occupied) / float64(total)
	}
	return stats, nil
}
