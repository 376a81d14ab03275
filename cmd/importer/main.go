package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"listing-distance-api/internal/config"
	"listing-distance-api/internal/geo"
	"listing-distance-api/internal/logging"
	"listing-distance-api/internal/models"
	"listing-distance-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// ListingRecord is one CSV row. Lat and Lon are both nil for a listing without a location.
type ListingRecord struct {
	Kind    models.Kind
	Title   string
	Address string
	Lat     *float64
	Lon     *float64
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}
	log.Info().Int("records", len(records)).Msg("parsed")

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("cannot create table")
	}

	inserted, err := insertRecords(ctx, conn, records)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	log.Info().Int64("inserted", inserted).Msg("import finished")
}

// parseCSV reads kind,title,address,lat,lon rows after a header line.
func parseCSV(r io.Reader) ([]ListingRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []ListingRecord
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 5 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected 5 columns", line, len(record))
		}

		kind := models.Kind(strings.ToLower(strings.TrimSpace(record[0])))
		if !kind.Valid() {
			return nil, fmt.Errorf("line %d: invalid kind: %q", line, record[0])
		}

		lat, err := parseCoordinate(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[3])
		}
		lon, err := parseCoordinate(record[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[4])
		}
		if (lat == nil) != (lon == nil) {
			return nil, fmt.Errorf("line %d: latitude and longitude must both be set or both be empty", line)
		}
		if loc := (geo.Coordinates{Lat: lat, Lon: lon}); !loc.InRange() {
			return nil, fmt.Errorf("line %d: coordinates out of range: %s", line, loc)
		}

		records = append(records, ListingRecord{
			Kind:    kind,
			Title:   record[1],
			Address: record[2],
			Lat:     lat,
			Lon:     lon,
		})
	}

	return records, nil
}

func parseCoordinate(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// geomValue renders the PostGIS EWKT for a record, or nil for NULL.
func geomValue(r ListingRecord) any {
	if r.Lat == nil || r.Lon == nil {
		return nil
	}
	// PostGIS format: lon lat
	return "SRID=4326;POINT(" + formatDegrees(*r.Lon) + " " + formatDegrees(*r.Lat) + ")"
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func insertRecords(ctx context.Context, conn *pgx.Conn, records []ListingRecord) (int64, error) {
	// Use CopyFrom for bulk insert
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"listings"},
		[]string{"kind", "title", "address", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{string(r.Kind), r.Title, r.Address, geomValue(r)}, nil
		}),
	)
}
