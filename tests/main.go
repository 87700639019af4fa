// Standalone seeding utility for local development. It fills the database
// with demo guests and reservations so the dashboard endpoints have data to
// show. Run it against a scratch database only.
package main

import (
	"context"
	"log"
	"time"

	"hospitality/clock"
	"hospitality/config"
	"hospitality/database"
	guestRepoPkg "hospitality/database/repository/guest"
	reservationRepoPkg "hospitality/database/repository/reservation"
	roomRepoPkg "hospitality/database/repository/room"
	"hospitality/models"
	"hospitality/services/catalog"
	"hospitality/services/guest"
	"hospitality/services/reservation"
)

func main() {
	config.LoadConfig()

	client := database.InitDB()
	db := client.Database(config.AppConfig.DatabaseName)

	rooms := roomRepoPkg.NewMongoRoomRepo(db)
	guests := guestRepoPkg.NewMongoGuestRepo(db)
	reservations := reservationRepoPkg.NewMongoReservationRepo(db)

	catalogService := catalog.NewCatalogService(rooms)
	guestService := guest.NewGuestService(guests)
	reservationService := reservation.NewReservationService(reservations, rooms, guests, clock.NewSystem(), nil)

	if err := catalogService.SeedInventory(); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	demoGuests := []struct {
		name  string
		email string
		typ   models.GuestType
	}{
		{"Asha Patel", "asha@example.com", models.GuestTypeLoyalty},
		{"Marcus Webb", "marcus@example.com", models.GuestTypeCorporate},
		{"Lena Okafor", "lena@example.com", models.GuestTypeWalkIn},
	}

	today := time.Now().UTC()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(models.DateLayout)
	}

	stays := []struct {
		guestIdx   int
		roomNumber string
		checkIn    string
		checkOut   string
	}{
		{0, "101", day(0), day(2)},
		{1, "201", day(1), day(4)},
		{2, "301", day(0), day(1)},
	}

	ctx := context.Background()
	for i, dg := range demoGuests {
		g, err := guestService.RegisterGuest(dg.name, dg.email, "", dg.typ)
		if err != nil {
			log.Fatalf("Failed to register guest %s: %v", dg.name, err)
		}

		for _, stay := range stays {
			if stay.guestIdx != i {
				continue
			}
			room, err := rooms.GetByNumber(stay.roomNumber)
			if err != nil {
				log.Fatalf("Failed to look up room %s: %v", stay.roomNumber, err)
			}
			res, err := reservationService.CreateReservation(ctx, g.ID, room.ID, stay.checkIn, stay.checkOut)
			if err != nil {
				log.Printf("Skipping stay for %s in %s: %v", dg.name, stay.roomNumber, err)
				continue
			}
			log.Printf("Seeded reservation %s: %s in room %s (%s -> %s)",
				res.ID, dg.name, stay.roomNumber, stay.checkIn, stay.checkOut)
		}
	}

	log.Println("Demo data seeded.")
}
