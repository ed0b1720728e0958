package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// Schema contains the database schema. Executing it requires a connection
// opened with multiStatements=true.
const Schema = `
CREATE TABLE IF NOT EXISTS authorities (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(256) NOT NULL,
    email VARCHAR(256) NOT NULL UNIQUE,
    password_hash VARCHAR(256) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS offices (
    id INT AUTO_INCREMENT PRIMARY KEY,
    violation_type VARCHAR(256) NOT NULL,
    name VARCHAR(256) NOT NULL,
    phone VARCHAR(64),
    address VARCHAR(256),
    email VARCHAR(256),
    INDEX idx_violation_type (violation_type)
);

CREATE TABLE IF NOT EXISTS complaints (
    id INT AUTO_INCREMENT PRIMARY KEY,
    violation_type VARCHAR(256) NOT NULL,
    language VARCHAR(32),
    description TEXT,
    location VARCHAR(512) NOT NULL,
    media_filename VARCHAR(256),
    status VARCHAR(32) NOT NULL DEFAULT 'open',
    reports_count INT NOT NULL DEFAULT 1,
    reminder_sent TINYINT(1) NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_status (status)
);
`

type seedOffice struct {
	violationType string
	name          string
	phone         string
	address       string
	email         string
}

var defaultOffices = []seedOffice{
	{
		"illegal-dumping",
		"City Waste Management Department",
		"+1 (555) 123-4567",
		"123 Green St, Eco City",
		"waste@ecocity.gov",
	},
	{
		"water-pollution",
		"River & Water Quality Council",
		"+1 (555) 555-9876",
		"45 Riverbank Rd, Eco City",
		"water@ecocity.gov",
	},
	{
		"air-pollution",
		"Air Quality and Emissions Office",
		"+1 (555) 999-0000",
		"78 Skyview Ave, Eco City",
		"air@ecocity.gov",
	},
}

// InitializeSchema creates the tables and seeds the office directory.
func InitializeSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := seedOffices(db); err != nil {
		return fmt.Errorf("failed to seed offices: %w", err)
	}

	log.Info("Database schema initialized")
	return nil
}

// seedOffices inserts the default office directory on first boot. The offices
// table has no write endpoint, so this is its only population path.
func seedOffices(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM offices").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, o := range defaultOffices {
		_, err := db.Exec(
			"INSERT INTO offices (violation_type, name, phone, address, email) VALUES (?, ?, ?, ?, ?)",
			o.violationType, o.name, o.phone, o.address, o.email)
		if err != nil {
			return err
		}
	}

	log.Infof("Seeded %d default offices", len(defaultOffices))
	return nil
}
