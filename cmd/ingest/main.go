package main

// ingest bulk-loads a catalogue export into PostgreSQL. It is the external
// ingestion process the API reads from: the HTTP core never writes.
//
// Expected inputs are two CSV files with headers:
//
//	places.csv: id,language,name,province,municipality,latitude,longitude,
//	            description,recognition_type,jurisdiction,recognition_date,
//	            architect,themes
//	images.csv: place_id,url,alt,title,display_order
//
// Empty fields load as NULL. Loading replaces the existing catalogue.

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/config"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/logger"
)

func main() {
	placesPath := flag.String("places", "places.csv", "path to the places CSV export")
	imagesPath := flag.String("images", "images.csv", "path to the images CSV export")
	truncate := flag.Bool("truncate", true, "truncate existing tables before loading")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := sql.Open("postgres", cfg.GetDatabaseDSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	if err := run(db, log, *placesPath, *imagesPath, *truncate); err != nil {
		log.Fatal("Ingestion failed", zap.Error(err))
	}

	log.Info("Ingestion complete")
}

func run(db *sql.DB, log *zap.Logger, placesPath, imagesPath string, truncate bool) error {
	txn, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer txn.Rollback()

	if truncate {
		if _, err := txn.Exec(`TRUNCATE places, images`); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}
	}

	placeCols := []string{
		"id", "language", "name", "province", "municipality",
		"latitude", "longitude", "description", "recognition_type",
		"jurisdiction", "recognition_date", "architect", "themes",
	}
	numeric := map[string]bool{"id": true, "latitude": true, "longitude": true}
	n, err := copyCSV(txn, placesPath, "places", placeCols, numeric)
	if err != nil {
		return fmt.Errorf("load places: %w", err)
	}
	log.Info("Places loaded", zap.Int("rows", n))

	imageCols := []string{"place_id", "url", "alt", "title", "display_order"}
	numeric = map[string]bool{"place_id": true, "display_order": true}
	n, err = copyCSV(txn, imagesPath, "images", imageCols, numeric)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	log.Info("Images loaded", zap.Int("rows", n))

	return txn.Commit()
}

// copyCSV streams one CSV file into a table through COPY. The header row
// must match the expected column list exactly.
func copyCSV(txn *sql.Tx, path, table string, cols []string, numeric map[string]bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(cols) {
		return 0, fmt.Errorf("expected %d columns, got %d", len(cols), len(header))
	}
	for i, col := range cols {
		if header[i] != col {
			return 0, fmt.Errorf("column %d: expected %q, got %q", i, col, header[i])
		}
	}

	stmt, err := txn.Prepare(pq.CopyIn(table, cols...))
	if err != nil {
		return 0, fmt.Errorf("prepare copy: %w", err)
	}

	rows := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("row %d: %w", rows+1, err)
		}

		args := make([]interface{}, len(record))
		for i, field := range record {
			args[i] = fieldValue(field, numeric[cols[i]])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return rows, fmt.Errorf("row %d: %w", rows+1, err)
		}
		rows++
	}

	// Flush the COPY buffer.
	if _, err := stmt.Exec(); err != nil {
		return rows, fmt.Errorf("flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return rows, fmt.Errorf("close copy: %w", err)
	}

	return rows, nil
}

// fieldValue converts an empty CSV field into NULL and parses numerics so
// malformed exports fail loudly instead of loading garbage.
func fieldValue(field string, isNumeric bool) interface{} {
	if field == "" {
		return nil
	}
	if isNumeric {
		if n, err := strconv.ParseFloat(field, 64); err == nil {
			return n
		}
		return nil
	}
	return field
}
