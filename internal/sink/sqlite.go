package sink

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
	_ "modernc.org/sqlite"
)

// Store persists crawl snapshots in a local sqlite database. Every run
// appends fresh rows; nothing is updated in place.
type Store struct {
	db *sql.DB
}

func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS venues (
			venue_id TEXT NOT NULL,
			city_slug TEXT NOT NULL,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			address TEXT,
			delivery_price REAL,
			rating_score REAL,
			online INTEGER NOT NULL,
			delivers INTEGER NOT NULL,
			tags TEXT,
			scraped_at DATETIME NOT NULL
		);
		CREATE TABLE IF NOT EXISTS products (
			item_id TEXT NOT NULL,
			venue_id TEXT NOT NULL,
			section_name TEXT,
			section_slug TEXT,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			original_price REAL,
			discount_amount REAL NOT NULL,
			discount_percentage REAL NOT NULL,
			is_available INTEGER NOT NULL,
			tags TEXT,
			dietary_preferences TEXT,
			scraped_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// SaveSnapshot appends all records of one run inside a single transaction.
func (s *Store) SaveSnapshot(venues []models.Venue, products []models.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, v := range venues {
		_, err := tx.Exec(
			`INSERT INTO venues (venue_id, city_slug, name, slug, address, delivery_price, rating_score, online, delivers, tags, scraped_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.VenueID, v.CitySlug, v.Name, v.Slug, v.Address, v.DeliveryPrice,
			v.RatingScore, v.Online, v.Delivers, v.Tags, v.ScrapedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert venue %s: %w", v.VenueID, err)
		}
	}

	for _, p := range products {
		_, err := tx.Exec(
			`INSERT INTO products (item_id, venue_id, section_name, section_slug, name, price, original_price, discount_amount, discount_percentage, is_available, tags, dietary_preferences, scraped_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ItemID, p.VenueID, p.SectionName, p.SectionSlug, p.Name, p.Price,
			p.OriginalPrice, p.DiscountAmount, p.DiscountPercentage,
			p.IsAvailable, p.Tags, p.DietaryPreferences, p.ScrapedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.ItemID, err)
		}
	}

	return tx.Commit()
}

// CountRecords returns the total venue and product rows in the store.
func (s *Store) CountRecords() (venues, products int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM venues`).Scan(&venues); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&products); err != nil {
		return 0, 0, err
	}
	return venues, products, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
