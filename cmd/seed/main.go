package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/config"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/db"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/partners"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var demo = flag.Bool("demo", false, "also insert demo leads spread across recent months")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	now := time.Now().In(cfg.Timezone)

	seedPartners := []partners.Partner{
		{Code: "CP1", Name: "Northstar Consulting"},
		{Code: "CP2", Name: "Bluewave Media"},
		{Code: "CP3", Name: "Apex Digital Partners"},
		{Code: "CP4", Name: "Trident Ventures"},
	}

	for _, p := range seedPartners {
		filter := bson.M{"code": p.Code}
		update := bson.M{
			"$set":         bson.M{"name": p.Name},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex(), "code": p.Code, "created_at": now},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := cols.Partners.UpdateOne(ctx, filter, update, opts); err != nil {
			log.Fatalf("seed partner %s: %v", p.Code, err)
		}
	}
	log.Printf("seeded %d partners", len(seedPartners))

	if !*demo {
		return
	}

	demoLeads := demoLeadSet(now)
	for _, l := range demoLeads {
		filter := bson.M{
			"partner_code":   l.PartnerCode,
			"company_name":   l.CompanyName,
			"client_name":    l.ClientName,
			"contact_number": l.ContactNumber,
		}
		update := bson.M{"$setOnInsert": l}
		opts := options.Update().SetUpsert(true)
		if _, err := cols.Leads.UpdateOne(ctx, filter, update, opts); err != nil {
			log.Fatalf("seed lead %s: %v", l.CompanyName, err)
		}
	}
	log.Printf("seeded %d demo leads", len(demoLeads))
}

// demoLeadSet spans four months, three sources and both offering modes so the
// dashboard charts show something immediately after a fresh install.
func demoLeadSet(now time.Time) []leads.Lead {
	monthsAgo := func(n int, day int) time.Time {
		return time.Date(now.Year(), now.Month(), day, 11, 30, 0, 0, now.Location()).AddDate(0, -n, 0)
	}

	mk := func(createdAt time.Time, partner, source, industry, company, client, contact string, offering leads.Offering, fees, received float64, status string) leads.Lead {
		pending := fees - received
		return leads.Lead{
			ID:                primitive.NewObjectID().Hex(),
			PartnerCode:       partner,
			LeadSource:        source,
			Industry:          industry,
			BDAEmail:          "bda@leadmanager.local",
			CompanyName:       company,
			ClientName:        client,
			ClientEmail:       "contact@" + contact + ".example",
			ClientDesignation: "Founder",
			ContactNumber:     "98765" + contact,
			CompanyOffering:   "B2B services",
			Offering:          offering.Normalized(),
			TotalServiceFees:  fees,
			GSTBill:           true,
			AmountWithoutGST:  fees / 1.18,
			PaymentStatus:     status,
			AmountReceived:    received,
			PendingAmount:     pending,
			ServicePromised:   "Kickoff within two weeks",
			CreatedAt:         createdAt,
			UpdatedAt:         createdAt,
		}
	}

	pkg := leads.Offering{Mode: leads.ModePackage, PackageName: "Growth", PackageTier: "Gold"}
	web := leads.Offering{
		Mode:                   leads.ModeServices,
		Services:               []string{leads.ServiceWebsiteDevelopment},
		WebsitePlatform:        "Shopify",
		WebsiteDevelopmentDays: 21,
	}
	social := leads.Offering{
		Mode:            leads.ModeServices,
		Services:        []string{leads.ServiceSocialMedia, leads.ServiceBranding},
		SocialPlatforms: []string{"Instagram", "LinkedIn"},
		SocialMediaDays: 30,
		BrandingDays:    14,
	}

	return []leads.Lead{
		mk(monthsAgo(3, 4), "CP1", "Social Media", "Retail", "Harbor Traders", "Meera Nair", "10001", pkg, 118000, 118000, leads.PaymentFullInAdvance),
		mk(monthsAgo(3, 18), "CP2", "Referral", "Healthcare", "Lotus Clinics", "Arjun Rao", "10002", web, 236000, 100000, leads.PaymentPartial),
		mk(monthsAgo(2, 7), "CP1", "Website", "Education", "Bright Academy", "Sana Iqbal", "10003", social, 59000, 0, leads.PaymentNotDone),
		mk(monthsAgo(2, 22), "CP3", "Referral", "Retail", "Urban Basket", "Kunal Shah", "10004", pkg, 177000, 177000, leads.PaymentFullInAdvance),
		mk(monthsAgo(1, 3), "CP2", "Social Media", "Hospitality", "Saffron Stays", "Priya Menon", "10005", web, 94400, 47200, leads.PaymentPartial),
		mk(monthsAgo(1, 15), "CP1", "Advertisement", "Fitness", "Pulse Gyms", "Rahul Verma", "10006", social, 70800, 70800, leads.PaymentFullInAdvance),
		mk(monthsAgo(0, 2), "CP4", "Event", "Logistics", "SwiftShip", "Dev Patel", "10007", pkg, 141600, 0, leads.PaymentNotDone),
		mk(monthsAgo(0, 9), "CP2", "Referral", "Retail", "Casa Living", "Anita Desai", "10008", web, 118000, 118000, leads.PaymentFullInAdvance),
	}
}
