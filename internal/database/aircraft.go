package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"planes_info/internal/models"
)

type AircraftRepository interface {
	InsertBatch(startPosition int, aircraft []models.Aircraft) error
	IsTablePopulated() (bool, error)
	Seed(aircraft []models.Aircraft, batchSize int) error
	LoadAll() ([]models.Aircraft, error)
}

type aircraftRepository struct {
	db *sql.DB
}

func NewAircraftRepository(db *sql.DB) AircraftRepository {
	return &aircraftRepository{db: db}
}

// InsertBatch inserts aircraft records in a single transaction.
// Records are numbered from startPosition so LoadAll returns them in the same order.
// An id or position already in the table fails the whole batch.
func (r *aircraftRepository) InsertBatch(startPosition int, aircraft []models.Aircraft) error {
	if len(aircraft) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertBatch(tx, startPosition, aircraft); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertBatch(tx *sql.Tx, startPosition int, aircraft []models.Aircraft) error {
	stmt, err := tx.Prepare(`INSERT INTO aircraft (
		position, id, name, manufacturer, type, category, year, country,
		latitude, longitude, image, max_speed, range_km, ceiling, length,
		wingspan, height, weight, engines, engine_type, passengers, crew,
		history, achievements, fun_facts, variants, operators
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, ac := range aircraft {
		lists, err := encodeLists(ac)
		if err != nil {
			return fmt.Errorf("failed to encode aircraft %s: %w", ac.ID, err)
		}

		if _, err := stmt.Exec(
			startPosition+i, ac.ID, ac.Name, ac.Manufacturer, string(ac.Type),
			ac.Category, ac.Year, ac.Country,
			ac.Coordinates.Lat(), ac.Coordinates.Lon(), ac.Image,
			ac.Specs.MaxSpeed, ac.Specs.Range, ac.Specs.Ceiling, ac.Specs.Length,
			ac.Specs.Wingspan, ac.Specs.Height, ac.Specs.Weight, ac.Specs.Engines,
			ac.Specs.EngineType, nullableInt(ac.Specs.Passengers), nullableInt(ac.Specs.Crew),
			ac.History, lists[0], lists[1], lists[2], lists[3],
		); err != nil {
			return fmt.Errorf("failed to insert aircraft %s: %w", ac.ID, err)
		}
	}

	return nil
}

func (r *aircraftRepository) IsTablePopulated() (bool, error) {
	var ignored int
	err := r.db.QueryRow("SELECT 1 FROM aircraft LIMIT 1").Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check aircraft table: %w", err)
	}
	return true, nil
}

// Seed writes the collection to the aircraft table in batches of batchSize.
// All batches share one transaction, so a failure leaves the table as it was.
func (r *aircraftRepository) Seed(aircraft []models.Aircraft, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be greater than 0, got %d", batchSize)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(aircraft); start += batchSize {
		end := start + batchSize
		if end > len(aircraft) {
			end = len(aircraft)
		}
		if err := insertBatch(tx, start, aircraft[start:end]); err != nil {
			return fmt.Errorf("failed to insert batch at %d: %w", start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LoadAll reads every record back in insertion order
func (r *aircraftRepository) LoadAll() ([]models.Aircraft, error) {
	rows, err := r.db.Query(`SELECT
		id, name, manufacturer, type, category, year, country,
		latitude, longitude, image, max_speed, range_km, ceiling, length,
		wingspan, height, weight, engines, engine_type, passengers, crew,
		history, achievements, fun_facts, variants, operators
	FROM aircraft ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query aircraft: %w", err)
	}
	defer rows.Close()

	var aircraft []models.Aircraft
	for rows.Next() {
		var (
			ac                                          models.Aircraft
			typ                                         string
			lat, lon                                    float64
			image, engineType, history                  sql.NullString
			passengers, crew                            sql.NullInt64
			achievements, funFacts, variants, operators string
		)
		if err := rows.Scan(
			&ac.ID, &ac.Name, &ac.Manufacturer, &typ, &ac.Category, &ac.Year, &ac.Country,
			&lat, &lon, &image, &ac.Specs.MaxSpeed, &ac.Specs.Range, &ac.Specs.Ceiling, &ac.Specs.Length,
			&ac.Specs.Wingspan, &ac.Specs.Height, &ac.Specs.Weight, &ac.Specs.Engines,
			&engineType, &passengers, &crew,
			&history, &achievements, &funFacts, &variants, &operators,
		); err != nil {
			return nil, fmt.Errorf("failed to scan aircraft: %w", err)
		}

		ac.Type = models.AircraftType(typ)
		ac.Coordinates = models.Coordinates{lat, lon}
		ac.Image = image.String
		ac.Specs.EngineType = engineType.String
		ac.Specs.Passengers = intPtr(passengers)
		ac.Specs.Crew = intPtr(crew)
		ac.History = history.String

		for _, l := range []struct {
			raw string
			dst *[]string
		}{
			{achievements, &ac.Achievements},
			{funFacts, &ac.FunFacts},
			{variants, &ac.Variants},
			{operators, &ac.Operators},
		} {
			if err := json.Unmarshal([]byte(l.raw), l.dst); err != nil {
				return nil, fmt.Errorf("failed to decode lists of aircraft %s: %w", ac.ID, err)
			}
		}

		aircraft = append(aircraft, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read aircraft rows: %w", err)
	}

	return aircraft, nil
}

// encodeLists returns achievements, fun facts, variants and operators as JSON arrays
func encodeLists(ac models.Aircraft) ([4]string, error) {
	var out [4]string
	for i, l := range [][]string{ac.Achievements, ac.FunFacts, ac.Variants, ac.Operators} {
		if l == nil {
			l = []string{}
		}
		b, err := json.Marshal(l)
		if err != nil {
			return out, err
		}
		out[i] = string(b)
	}
	return out, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
