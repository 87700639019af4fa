package concierge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hospitality/clock"
	"hospitality/models"
	"hospitality/services/availability"
	"hospitality/services/report"
	"hospitality/services/reservation"
	"hospitality/utils"

	"go.uber.org/zap"
)

// ConciergeService turns free-form guest and staff messages into answers
// backed by the live booking system. Keyword rules cover the common intents;
// anything else falls through to the LLM when one is configured.
type ConciergeService interface {
	ProcessUserInput(req models.AIRequest) (*models.AIResponse, error)
}

// DefaultConciergeService implements ConciergeService.
type DefaultConciergeService struct {
	ctxStore     ContextStore
	availability availability.AvailabilityService
	reservations reservation.ReservationService
	reports      report.ReportService
	clk          clock.Clock
	llm          LLMClient
}

// NewConciergeService creates a ConciergeService. llm may be nil, which
// disables the free-form fallback.
func NewConciergeService(
	ctxStore ContextStore,
	avail availability.AvailabilityService,
	reservations reservation.ReservationService,
	reports report.ReportService,
	clk clock.Clock,
	llm LLMClient,
) *DefaultConciergeService {
	return &DefaultConciergeService{
		ctxStore:     ctxStore,
		availability: avail,
		reservations: reservations,
		reports:      reports,
		clk:          clk,
		llm:          llm,
	}
}

// ProcessUserInput routes one conversation turn by role and keyword intent.
func (s *DefaultConciergeService) ProcessUserInput(req models.AIRequest) (*models.AIResponse, error) {
	ctx := context.Background()
	text := strings.ToLower(req.Text)

	var resp *models.AIResponse
	var err error
	if req.Role == "staff" || req.Role == "manager" {
		resp, err = s.handleStaffIntent(text)
	} else {
		resp, err = s.handleGuestIntent(ctx, text, req)
	}
	if err != nil {
		return nil, err
	}

	aiCtx := &models.AIContext{Name: req.Name, Role: req.Role, LastIntent: resp.Intent}
	if serr := s.ctxStore.Set(ctx, req.UserID, aiCtx); serr != nil {
		utils.GetLogger().Warn("Failed to save concierge context",
			zap.String("userID", req.UserID), zap.Error(serr))
	}
	return resp, nil
}

func (s *DefaultConciergeService) handleGuestIntent(ctx context.Context, text string, req models.AIRequest) (*models.AIResponse, error) {
	name := req.Name
	if name == "" {
		name = "Guest"
	}

	if containsAny(text, "book", "reservation", "room") {
		return s.handleBookingIntent(name)
	}

	if containsAny(text, "amenities", "pool", "wifi", "gym") {
		return &models.AIResponse{
			Intent:       "info",
			ResponseText: "We offer free high-speed Wi-Fi, a 24/7 fitness center, and a rooftop infinity pool open from 6 AM to 10 PM.",
		}, nil
	}

	if s.llm != nil {
		return s.handleFreeForm(ctx, req)
	}

	return &models.AIResponse{
		Intent:       "chat",
		ResponseText: fmt.Sprintf("Welcome to our hotel, %s. How may I assist you today? I can help with reservations, amenities, or local recommendations.", name),
	}, nil
}

// handleBookingIntent quotes tomorrow's one-night availability, the default
// range when the guest names no dates.
func (s *DefaultConciergeService) handleBookingIntent(name string) (*models.AIResponse, error) {
	checkIn := s.clk.Now().AddDate(0, 0, 1).Format(models.DateLayout)
	checkOut := s.clk.Now().AddDate(0, 0, 2).Format(models.DateLayout)

	rooms, err := s.availability.Query("", checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return &models.AIResponse{
			Intent:       "book",
			ResponseText: "I apologize, but we don't have any rooms available for those dates.",
		}, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Certainly, %s! For tomorrow, we have the following availability:\n", name)
	seen := make(map[models.RoomType]bool)
	for _, room := range rooms {
		if seen[room.Type] {
			continue
		}
		seen[room.Type] = true
		fmt.Fprintf(&sb, "- %s Room at %s/night\n", room.Type, formatCents(room.RateCents))
	}
	sb.WriteString("\nWould you like to proceed with a booking? I can recommend the Suite for a truly luxurious experience.")

	return &models.AIResponse{Intent: "book", ResponseText: sb.String()}, nil
}

func (s *DefaultConciergeService) handleStaffIntent(text string) (*models.AIResponse, error) {
	if containsAny(text, "checkout", "departing") {
		checkouts, err := s.reservations.GetCheckouts(clock.Today(s.clk))
		if err != nil {
			return nil, err
		}
		if len(checkouts) == 0 {
			return &models.AIResponse{
				Intent:       "checkouts",
				ResponseText: "There are no scheduled checkouts for today.",
			}, nil
		}
		return &models.AIResponse{
			Intent:       "checkouts",
			ResponseText: fmt.Sprintf("Found %d checkouts for today. Would you like the detailed list?", len(checkouts)),
		}, nil
	}

	if containsAny(text, "status", "occupancy") {
		stats, err := s.reports.GetRoomStats()
		if err != nil {
			return nil, err
		}
		return &models.AIResponse{
			Intent:       "occupancy",
			ResponseText: fmt.Sprintf("Current Occupancy: %d/%d rooms.", stats.Occupied, stats.Total),
		}, nil
	}

	return &models.AIResponse{
		Intent:       "chat",
		ResponseText: "Staff Mode Active. Ready for operational commands (e.g., 'checkouts today', 'occupancy status').",
	}, nil
}

func (s *DefaultConciergeService) handleFreeForm(ctx context.Context, req models.AIRequest) (*models.AIResponse, error) {
	genCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(
		"You are a hotel concierge. Answer the guest briefly and helpfully. Guest name: %s. Message: %s",
		req.Name, req.Text,
	)
	text, err := s.llm.GenerateContent(genCtx, prompt)
	if err != nil {
		utils.GetLogger().Warn("LLM fallback failed", zap.Error(err))
		return &models.AIResponse{
			Intent:       "chat",
			ResponseText: "How may I assist you today? I can help with reservations, amenities, or local recommendations.",
		}, nil
	}
	return &models.AIResponse{Intent: "chat", ResponseText: text}, nil
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// formatCents renders minor units as a major-unit amount without going
// through floating point.
func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
