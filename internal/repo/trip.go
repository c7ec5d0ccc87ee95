package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests and the import command to pass a transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// TripStore is a DatasetRepo backed by Postgres that can also be filled
// from another source.
type TripStore interface {
	DatasetRepo

	// Import replaces every stored record of ds.City() with the records of ds
	// and remembers which optional columns ds carries. Returns the number of
	// trips written. Run it inside a transaction so a failed import leaves the
	// previous data in place.
	Import(ctx context.Context, ds domain.Dataset) (int64, error)
}

// pgTripRepo is the Postgres implementation of TripStore.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripStore {
	return &pgTripRepo{db: db}
}

// tripColumns is the column order used by CopyFrom in Import.
var tripColumns = []string{
	"id", "city", "seq", "start_time", "end_time", "start_station", "end_station",
	"trip_duration", "user_type", "gender", "birth_year",
}

// Import writes ds to the datasets and trips tables.
func (r *pgTripRepo) Import(ctx context.Context, ds domain.Dataset) (int64, error) {
	city := cityKey(ds.City())

	// trips rows go with the datasets row via ON DELETE CASCADE.
	if _, err := r.db.Exec(ctx, `DELETE FROM datasets WHERE city = @city`, pgx.NamedArgs{"city": city}); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Import: delete: %w", err)
	}

	const q = `
		INSERT INTO datasets (city, has_user_type, has_gender, has_birth_year)
		VALUES (@city, @has_user_type, @has_gender, @has_birth_year)`

	args := pgx.NamedArgs{
		"city":           city,
		"has_user_type":  ds.HasColumn(domain.ColUserType),
		"has_gender":     ds.HasColumn(domain.ColGender),
		"has_birth_year": ds.HasColumn(domain.ColBirthYear),
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Import: insert dataset: %w", err)
	}

	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"trips"}, tripColumns,
		pgx.CopyFromSlice(ds.Len(), func(i int) ([]any, error) {
			t := ds.At(i)
			return []any{
				uuid.New(),
				city,
				i,
				t.StartTime,
				t.EndTime, // nil becomes NULL
				t.StartStation,
				t.EndStation,
				t.TripDuration,
				nullText(t.UserType),
				nullText(t.Gender),
				t.BirthYear,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Import: copy trips: %w", err)
	}
	return n, nil
}

// Load reads a city's dataset row and all its trips in original order.
func (r *pgTripRepo) Load(ctx context.Context, city string) (domain.Dataset, error) {
	key := cityKey(city)

	cols := domain.NewColumnSet(domain.ColStartTime, domain.ColEndTime, domain.ColStartStation,
		domain.ColEndStation, domain.ColTripDuration)
	var hasUserType, hasGender, hasBirthYear bool
	err := r.db.QueryRow(ctx,
		`SELECT has_user_type, has_gender, has_birth_year FROM datasets WHERE city = @city`,
		pgx.NamedArgs{"city": key},
	).Scan(&hasUserType, &hasGender, &hasBirthYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: city %q not imported: %w", key, domain.ErrDataUnavailable)
		}
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %w: %v", domain.ErrDataUnavailable, err)
	}
	cols[domain.ColUserType] = hasUserType
	cols[domain.ColGender] = hasGender
	cols[domain.ColBirthYear] = hasBirthYear

	const q = `
		SELECT start_time, end_time, start_station, end_station, trip_duration,
		       user_type, gender, birth_year
		FROM trips
		WHERE city = @city
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city": key})
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %w: %v", domain.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var records []domain.TripRecord
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: scan: %w: %v", domain.ErrDataUnavailable, err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: rows: %w: %v", domain.ErrDataUnavailable, err)
	}

	return domain.NewDataset(key, cols, records), nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.TripRecord.
// It handles the nullable end_time, user_type, gender and birth_year columns.
func scanTrip(s scanner) (domain.TripRecord, error) {
	var (
		t         domain.TripRecord
		endTime   pgtype.Timestamp
		userType  pgtype.Text
		gender    pgtype.Text
		birthYear pgtype.Int4
	)

	err := s.Scan(&t.StartTime, &endTime, &t.StartStation, &t.EndStation, &t.TripDuration,
		&userType, &gender, &birthYear)
	if err != nil {
		return domain.TripRecord{}, err
	}

	if endTime.Valid {
		et := endTime.Time
		t.EndTime = &et
	}
	t.UserType = userType.String
	t.Gender = gender.String
	if birthYear.Valid {
		y := int(birthYear.Int32)
		t.BirthYear = &y
	}
	return t, nil
}

// nullText maps an empty string to NULL.
func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// cityKey is the stored form of a city name.
func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
