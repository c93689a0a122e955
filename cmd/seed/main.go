// Command seed resets the demo data: one company, two connected records and
// a company login to view them with.
package main

import (
	"context"
	"flag"
	"log"

	"vipgraph/internal/domain"
	"vipgraph/internal/repository/sqlite"
	"vipgraph/internal/service"
)

func main() {
	dbPath := flag.String("db", "./vipgraph.db", "SQLite database path")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	repo, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	// Wipe existing companies; records, relations and users cascade
	companies, err := repo.ListCompanies(ctx)
	if err != nil {
		log.Fatalf("Failed to list companies: %v", err)
	}
	for _, c := range companies {
		if err := repo.DeleteCompany(ctx, c.ID); err != nil {
			log.Fatalf("Failed to delete company %d: %v", c.ID, err)
		}
	}

	adminSvc := service.NewAdminService(repo)
	if err := adminSvc.EnsureSuperadmin(ctx, "admin@example.com", "admin"); err != nil {
		log.Fatalf("Failed to ensure superadmin: %v", err)
	}

	superadmin := domain.AuthContext{IsSuperadmin: true}

	company, err := adminSvc.CreateCompany(ctx, superadmin, "Test Company", "", "", "", "")
	if err != nil {
		log.Fatalf("Failed to create company: %v", err)
	}

	if _, err := adminSvc.CreateUser(ctx, superadmin, "demo@example.com", "demo", company.ID, false); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	recordSvc := service.NewRecordService(repo, service.NewEventBus())
	user := domain.AuthContext{CompanyID: company.ID}

	first, err := recordSvc.CreateRecord(ctx, user, "First Record", "", "")
	if err != nil {
		log.Fatalf("Failed to create record: %v", err)
	}
	second, err := recordSvc.CreateRecord(ctx, user, "Second Record", "", "")
	if err != nil {
		log.Fatalf("Failed to create record: %v", err)
	}

	if _, _, err := recordSvc.CreateRelation(ctx, user, first.ID, second.ID); err != nil {
		log.Fatalf("Failed to create relation: %v", err)
	}

	log.Printf("Seeded demo data: company %d, login demo@example.com", company.ID)
}
