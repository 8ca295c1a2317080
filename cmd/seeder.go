package cmd

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			clearTables(db)
		}

		seedDepartments(db)
		seedUsers(db)
		seedGeography(db)
		seedContractors(db)

		fmt.Println("Seeding finished")
	},
}

func clearTables(db *sqlx.DB) {
	tables := []string{
		"permit_people", "permit_stations", "permits",
		"contact_stations", "stations", "regions", "markets",
		"personal_infos", "contractors", "users", "departments",
	}
	for _, t := range tables {
		if _, err := db.Exec("DELETE FROM " + t); err != nil {
			log.Fatalf("failed to clear table %s: %v", t, err)
		}
	}
	fmt.Println("Cleared existing data")
}

func seedDepartments(db *sqlx.DB) {
	for _, name := range []string{"Operations", "Engineering", "Health and Safety"} {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM departments WHERE name = $1", name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec("INSERT INTO departments (name) VALUES ($1)", name); err != nil {
			log.Fatalf("failed to insert department %s: %v", name, err)
		}
		fmt.Println("Seeded department:", name)
	}
}

func seedUsers(db *sqlx.DB) {
	password := "password"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := []struct {
		Name       string
		Email      string
		EmployeeID string
		Role       string
		Department string
	}{
		{"Ana Admin", "ana@company.com", "EMP0000001", "admin", "Operations"},
		{"Victor Viewer", "victor@company.com", "EMP0000002", "user", "Engineering"},
	}

	for _, u := range users {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM users WHERE email = $1", u.Email).Scan(&exists); err == nil {
			fmt.Println("user already exists:", u.Email)
			continue
		}

		var departmentID int64
		if err := db.QueryRow("SELECT id FROM departments WHERE name = $1", u.Department).Scan(&departmentID); err != nil {
			log.Fatalf("department not found %s: %v", u.Department, err)
		}

		if _, err := db.Exec(
			"INSERT INTO users (name, email, password_hash, employee_id, role, department_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, now(), now())",
			u.Name, u.Email, string(hash), u.EmployeeID, u.Role, departmentID,
		); err != nil {
			log.Fatalf("failed to insert user %s: %v", u.Email, err)
		}
		fmt.Println("Seeded user:", u.Email)
	}
}

func seedGeography(db *sqlx.DB) {
	markets := map[string][]string{
		"North":   {"Coastal", "Highlands"},
		"Central": {"Metro"},
	}

	for market, regions := range markets {
		var marketID int64
		if err := db.QueryRow("SELECT id FROM markets WHERE name = $1", market).Scan(&marketID); err != nil {
			if err := db.QueryRow("INSERT INTO markets (name) VALUES ($1) RETURNING id", market).Scan(&marketID); err != nil {
				log.Fatalf("failed to insert market %s: %v", market, err)
			}
			fmt.Println("Seeded market:", market)
		}

		for _, region := range regions {
			var regionID int64
			if err := db.QueryRow("SELECT id FROM regions WHERE region = $1", region).Scan(&regionID); err != nil {
				if err := db.QueryRow("INSERT INTO regions (region, market_id) VALUES ($1, $2) RETURNING id", region, marketID).Scan(&regionID); err != nil {
					log.Fatalf("failed to insert region %s: %v", region, err)
				}
				fmt.Println("Seeded region:", region)
			}
		}
	}

	stations := []struct {
		Name    string
		Region  string
		Coords  string
		Address string
	}{
		{"ST-Coastal-01", "Coastal", "4.175, 73.509", "1 Harbour Road"},
		{"ST-Metro-01", "Metro", "4.210, 73.520", "12 Central Avenue"},
	}

	for _, s := range stations {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM stations WHERE name = $1", s.Name).Scan(&exists); err == nil {
			continue
		}

		var regionID, marketID int64
		if err := db.QueryRow("SELECT id, market_id FROM regions WHERE region = $1", s.Region).Scan(&regionID, &marketID); err != nil {
			log.Fatalf("region not found %s: %v", s.Region, err)
		}

		if _, err := db.Exec(
			"INSERT INTO stations (name, coordinates, address, region_id, market_id) VALUES ($1, $2, $3, $4, $5)",
			s.Name, s.Coords, s.Address, regionID, marketID,
		); err != nil {
			log.Fatalf("failed to insert station %s: %v", s.Name, err)
		}
		fmt.Println("Seeded station:", s.Name)
	}
}

func seedContractors(db *sqlx.DB) {
	var exists int
	if err := db.QueryRow("SELECT 1 FROM contractors WHERE contact_email = $1", "ops@towerworks.example").Scan(&exists); err == nil {
		return
	}
	if _, err := db.Exec(
		"INSERT INTO contractors (company_name, contact_email, contact_phone) VALUES ($1, $2, $3)",
		"TowerWorks Ltd", "ops@towerworks.example", "+960 777 0000",
	); err != nil {
		log.Fatalf("failed to insert contractor: %v", err)
	}
	fmt.Println("Seeded contractor: TowerWorks Ltd")
}
