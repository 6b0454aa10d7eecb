package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Treatments loaded into an empty catalog.
var treatments = []struct {
	Name        string
	Description string
	Price       float64
}{
	{"Teeth Orthodontics", "Alignment of teeth and jaws.", 120},
	{"Cosmetic Dentistry", "Whitening, veneers and bonding.", 150},
	{"Teeth Cleaning", "Scaling and polishing.", 60},
	{"Cavity Protection", "Sealants and fluoride treatment.", 80},
	{"Pediatric Dental", "Dental care for children.", 70},
	{"Oral Surgery", "Extractions and minor surgery.", 200},
}

// halfHourSlots renders 30 minute slots between start and end, both given
// in minutes after midnight.
func halfHourSlots(start, end int) []string {
	var slots []string
	for m := start; m+30 <= end; m += 30 {
		slots = append(slots, fmt.Sprintf("%s - %s", clock(m), clock(m+30)))
	}
	return slots
}

func clock(minutes int) string {
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("03:04 PM")
}

func main() {
	reset := flag.Bool("reset", false, "clear the services collection before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	utils.InitializeLogger(cfg.LogLevel)
	client, err := database.Connect(ctx, cfg.DatabaseURL, 1, utils.GetLogger())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = database.Disconnect(client) }()

	coll := client.Database(cfg.DatabaseName).Collection(database.ServicesCollection)

	if *reset {
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear services collection: %v", err)
		}
	} else if n, err := coll.CountDocuments(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to count services: %v", err)
	} else if n > 0 {
		fmt.Printf("Services collection already holds %d documents; use -reset to replace them\n", n)
		return
	}

	// 8:00 AM to 5:00 PM.
	slots := halfHourSlots(480, 1020)

	var docs []interface{}
	for _, t := range treatments {
		docs = append(docs, models.Service{
			Name:  t.Name,
			Slots: slots,
			Extra: bson.M{"description": t.Description, "price": t.Price},
		})
	}

	insertResult, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert services: %v", err)
	}
	fmt.Printf("Inserted service IDs: %v\n", insertResult.InsertedIDs)
}
