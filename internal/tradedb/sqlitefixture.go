package tradedb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"startrade/internal/logger"
	"startrade/internal/model"
)

// SQLiteFixtureDB is a SQLite-backed store of station and offer fixture
// data. It exists purely to build large or repeatable test fixtures
// without hand-writing Go literals for every station and offer; the
// search engine itself never touches SQLite — persistence of search
// results is out of scope.
type SQLiteFixtureDB struct {
	sql *sql.DB
}

// OpenSQLiteFixture opens (or creates) a SQLite fixture database at path.
// Use ":memory:" for an ephemeral, test-local database.
func OpenSQLiteFixture(path string) (*SQLiteFixtureDB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite fixture: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite fixture: %w", err)
	}
	d := &SQLiteFixtureDB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite fixture: %w", err)
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *SQLiteFixtureDB) Close() error {
	return d.sql.Close()
}

func (d *SQLiteFixtureDB) migrate() error {
	_, err := d.sql.Exec(`
		CREATE TABLE IF NOT EXISTS stations (
			id           TEXT PRIMARY KEY,
			system       TEXT NOT NULL,
			ls_from_star INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS offers (
			src_station TEXT NOT NULL,
			dst_station TEXT NOT NULL,
			item_id     TEXT NOT NULL,
			cost_cr     INTEGER NOT NULL,
			gain_cr     INTEGER NOT NULL,
			stock       INTEGER NOT NULL DEFAULT -1,
			stock_level INTEGER NOT NULL DEFAULT 0,
			src_age_sec INTEGER NOT NULL DEFAULT 0,
			dst_age_sec INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// PutStation inserts or replaces a station row.
func (d *SQLiteFixtureDB) PutStation(id, system string, lsFromStar int64) error {
	_, err := d.sql.Exec(
		`INSERT INTO stations(id, system, ls_from_star) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET system = excluded.system, ls_from_star = excluded.ls_from_star`,
		id, system, lsFromStar,
	)
	return err
}

// PutOffer inserts one outgoing offer row from srcStation to dstStation.
func (d *SQLiteFixtureDB) PutOffer(srcStation, dstStation string, o model.Offer) error {
	_, err := d.sql.Exec(
		`INSERT INTO offers(src_station, dst_station, item_id, cost_cr, gain_cr, stock, stock_level, src_age_sec, dst_age_sec)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		srcStation, dstStation, o.ItemID, o.CostCr, o.GainCr, o.Stock, int64(o.StockLevel), o.SrcAgeSec, o.DstAgeSec,
	)
	return err
}

// LoadFixtures reads every station and its offers back out as
// StationFixture records, ready for NewMemoryAdapter. Station order
// matches insertion order.
func (d *SQLiteFixtureDB) LoadFixtures() ([]StationFixture, error) {
	rows, err := d.sql.Query(`SELECT id, system, ls_from_star FROM stations`)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*StationFixture)
	order := make([]string, 0)
	for rows.Next() {
		var id, system string
		var ls int64
		if err := rows.Scan(&id, &system, &ls); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		byID[id] = &StationFixture{ID: id, System: system, LsFromStar: ls, Trades: map[string][]model.Offer{}}
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	offerRows, err := d.sql.Query(`SELECT src_station, dst_station, item_id, cost_cr, gain_cr, stock, stock_level, src_age_sec, dst_age_sec FROM offers`)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}
	defer offerRows.Close()

	for offerRows.Next() {
		var src, dst, itemID string
		var cost, gain, stock, stockLevel, srcAge, dstAge int64
		if err := offerRows.Scan(&src, &dst, &itemID, &cost, &gain, &stock, &stockLevel, &srcAge, &dstAge); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		fixture, ok := byID[src]
		if !ok {
			continue
		}
		fixture.Trades[dst] = append(fixture.Trades[dst], model.Offer{
			ItemID:     itemID,
			CostCr:     cost,
			GainCr:     gain,
			Stock:      stock,
			StockLevel: model.StockLevel(stockLevel),
			SrcAgeSec:  srcAge,
			DstAgeSec:  dstAge,
		})
	}
	if err := offerRows.Err(); err != nil {
		return nil, err
	}

	out := make([]StationFixture, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	logger.Stats("sqlite fixture stations loaded", int64(len(out)))
	return out, nil
}
