// Package persistence provides SQLite-based storage for generated worlds.
// The generator core imposes no storage format; this layer belongs to the
// CLI caller, which owns the finished grids it stores.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/climate"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/grid"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/hydrology"
	"github.com/NatureFlyWoW/fantasy-world-sim-sub004/internal/worldgen"
)

// DB wraps a SQLite connection for world storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		plate_count INTEGER NOT NULL,
		river_count INTEGER NOT NULL,
		sea_level REAL NOT NULL,
		plates_json TEXT NOT NULL,
		rivers_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		world_id TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		elevation REAL NOT NULL,
		temperature REAL NOT NULL,
		rainfall REAL NOT NULL,
		plate INTEGER NOT NULL,
		river INTEGER NOT NULL,
		PRIMARY KEY (world_id, x, y)
	);

	CREATE INDEX IF NOT EXISTS idx_tiles_world ON tiles(world_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// WorldInfo summarizes a stored world.
type WorldInfo struct {
	ID        string `db:"id"`
	Seed      int64  `db:"seed"`
	Width     int    `db:"width"`
	Height    int    `db:"height"`
	CreatedAt string `db:"created_at"`
}

// SaveWorld stores a generated world and returns its new id.
func (db *DB) SaveWorld(w *worldgen.World) (string, error) {
	id := uuid.NewString()

	platesJSON, err := json.Marshal(w.Plates.Plates)
	if err != nil {
		return "", fmt.Errorf("marshal plates: %w", err)
	}
	riversJSON, err := json.Marshal(w.Rivers)
	if err != nil {
		return "", fmt.Errorf("marshal rivers: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO worlds
		(id, seed, width, height, plate_count, river_count, sea_level,
		 plates_json, rivers_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, w.Seed, w.Config.Width, w.Config.Height,
		len(w.Plates.Plates), len(w.Rivers), w.Config.SeaLevel,
		string(platesJSON), string(riversJSON),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert world: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles
		(world_id, x, y, elevation, temperature, rainfall, plate, river)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	riverTiles := make(map[hydrology.Point]bool)
	for _, r := range w.Rivers {
		for _, p := range r.Path {
			riverTiles[p] = true
		}
	}

	for y := 0; y < w.Config.Height; y++ {
		for x := 0; x < w.Config.Width; x++ {
			c := w.Climate.At(x, y)
			river := 0
			if riverTiles[hydrology.Point{X: x, Y: y}] {
				river = 1
			}
			_, err := stmt.Exec(id, x, y,
				w.Heightmap.At(x, y), c.Temperature, c.Rainfall,
				w.Plates.Assignment.At(x, y), river)
			if err != nil {
				return "", fmt.Errorf("insert tile (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("world saved", "id", id, "seed", w.Seed,
		"tiles", w.Config.Width*w.Config.Height, "rivers", len(w.Rivers))
	return id, nil
}

// LoadWorld reconstructs a stored world by id.
func (db *DB) LoadWorld(id string) (*worldgen.World, error) {
	var row struct {
		Seed       int64   `db:"seed"`
		Width      int     `db:"width"`
		Height     int     `db:"height"`
		SeaLevel   float64 `db:"sea_level"`
		PlatesJSON string  `db:"plates_json"`
		RiversJSON string  `db:"rivers_json"`
	}
	err := db.conn.Get(&row, `SELECT seed, width, height, sea_level,
		plates_json, rivers_json FROM worlds WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", id, err)
	}

	w := &worldgen.World{
		Seed: row.Seed,
		Config: worldgen.Config{
			Width:    row.Width,
			Height:   row.Height,
			Seed:     row.Seed,
			SeaLevel: row.SeaLevel,
		},
		Heightmap: grid.NewHeightmap(row.Width, row.Height),
		Climate: &climate.Map{
			W:     row.Width,
			H:     row.Height,
			Cells: make([]climate.Data, row.Width*row.Height),
		},
	}
	w.Plates.Assignment = grid.NewInt(row.Width, row.Height)

	if err := json.Unmarshal([]byte(row.PlatesJSON), &w.Plates.Plates); err != nil {
		return nil, fmt.Errorf("unmarshal plates: %w", err)
	}
	if err := json.Unmarshal([]byte(row.RiversJSON), &w.Rivers); err != nil {
		return nil, fmt.Errorf("unmarshal rivers: %w", err)
	}

	rows, err := db.conn.Queryx(`SELECT x, y, elevation, temperature, rainfall, plate
		FROM tiles WHERE world_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t struct {
			X           int     `db:"x"`
			Y           int     `db:"y"`
			Elevation   float64 `db:"elevation"`
			Temperature float64 `db:"temperature"`
			Rainfall    float64 `db:"rainfall"`
			Plate       int     `db:"plate"`
		}
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("scan tile: %w", err)
		}
		w.Heightmap.Set(t.X, t.Y, t.Elevation)
		w.Plates.Assignment.Set(t.X, t.Y, t.Plate)
		w.Climate.Cells[t.Y*row.Width+t.X] = climate.Data{
			Temperature: t.Temperature,
			Rainfall:    t.Rainfall,
		}
	}
	return w, rows.Err()
}

// ListWorlds returns summaries of all stored worlds, newest first.
func (db *DB) ListWorlds() ([]WorldInfo, error) {
	var infos []WorldInfo
	err := db.conn.Select(&infos, `SELECT id, seed, width, height, created_at
		FROM worlds ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list worlds: %w", err)
	}
	return infos, nil
}
