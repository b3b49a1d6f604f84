package chunk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"showboat/internal/config"
)

// Store manages chunk persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the chunk database and ensures the schema
// exists. Opening an already-initialized database is a no-op on the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Storage.Database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the location of the backing database file.
func (s *Store) Path() string {
	return s.path
}

// Append inserts one immutable chunk and returns it with the assigned id.
// The insert touches no existing rows, so concurrent appends to the same or
// different documents never conflict beyond SQLite's own write serialization.
func (s *Store) Append(ctx context.Context, documentID string, command Command, fields Fields, createdAt time.Time) (*Chunk, error) {
	if documentID == "" {
		return nil, errors.New("document id is required")
	}
	if _, ok := commandSet[command]; !ok {
		return nil, fmt.Errorf("unknown command %q", command)
	}

	timestamp := createdAt.UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO chunks (
            document_id, command, created_at,
            title, markdown, language, input, output, filename, alt, image
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		documentID,
		command,
		timestamp,
		nullableString(fields.Title),
		nullableString(fields.Markdown),
		nullableString(fields.Language),
		nullableString(fields.Input),
		nullableString(fields.Output),
		nullableString(fields.Filename),
		nullableString(fields.Alt),
		nullableBytes(fields.Image),
	)
	if err != nil {
		return nil, fmt.Errorf("insert chunk: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a chunk by identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (*Chunk, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+chunkColumns+` FROM chunks WHERE id = ?`, id)
	chunk, err := scanChunk(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chunk: %w", err)
	}
	return chunk, nil
}

// List returns a document's chunks with id strictly greater than afterID,
// ordered by ascending id. Pass afterID 0 for the full document. Insertion
// order by id is the sole notion of time in the system.
func (s *Store) List(ctx context.Context, documentID string, afterID int64) ([]*Chunk, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+chunkColumns+` FROM chunks WHERE document_id = ? AND id > ? ORDER BY id`,
		documentID,
		afterID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}
	defer rows.Close()

	var chunks []*Chunk
	for rows.Next() {
		chunk, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return chunks, rows.Err()
}

// Summaries returns one row per document with its content-bearing chunk
// count and first/last activity, most recently active documents first.
// Pop markers carry no content and are excluded, so a document made of
// nothing but pops has no summary row.
func (s *Store) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT document_id, COUNT(*), MIN(created_at), MAX(created_at)
         FROM chunks
         WHERE command != ?
         GROUP BY document_id
         ORDER BY MAX(created_at) DESC`,
		CommandPop,
	)
	if err != nil {
		return nil, fmt.Errorf("document summaries: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			summary  Summary
			firstRaw string
			lastRaw  string
		)
		if err := rows.Scan(&summary.DocumentID, &summary.ChunkCount, &firstRaw, &lastRaw); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		if first, err := parseTimeString(firstRaw); err == nil {
			summary.FirstChunk = first
		}
		if last, err := parseTimeString(lastRaw); err == nil {
			summary.LastChunk = last
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// CheckHealth returns diagnostic information about the chunk database.
func (s *Store) CheckHealth(ctx context.Context) (DatabaseHealth, error) {
	health := DatabaseHealth{DBPath: s.path}

	if s.path == "" {
		return health, errors.New("chunk database path is unknown")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			health.DatabaseExists = false
			return health, nil
		}
		return health, fmt.Errorf("stat chunk database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("chunk database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	if s.db == nil {
		return health, errors.New("chunk database connection unavailable")
	}

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping chunk database: %w", err)
	}
	health.DatabaseReadable = true

	var tableName string
	row := s.db.QueryRowContext(connCtx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'chunks'")
	if err := row.Scan(&tableName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			health.TableExists = false
			return health, nil
		}
		health.Error = err.Error()
		return health, fmt.Errorf("query table info: %w", err)
	}
	health.TableExists = true

	row = s.db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM chunks")
	if err := row.Scan(&health.TotalChunks); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count chunks: %w", err)
	}

	row = s.db.QueryRowContext(connCtx, "SELECT COUNT(DISTINCT document_id) FROM chunks")
	if err := row.Scan(&health.DocumentCount); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count documents: %w", err)
	}

	row = s.db.QueryRowContext(connCtx, "PRAGMA integrity_check")
	var integrityResult string
	if err := row.Scan(&integrityResult); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("integrity check: %w", err)
	}
	health.IntegrityCheck = integrityResult == "ok"

	return health, nil
}

const chunkColumns = "id, document_id, command, created_at, title, markdown, language, input, output, filename, alt, image"

func scanChunk(scanner interface{ Scan(dest ...any) error }) (*Chunk, error) {
	var (
		id         int64
		documentID string
		commandStr string
		createdRaw string
		title      sql.NullString
		markdown   sql.NullString
		language   sql.NullString
		input      sql.NullString
		output     sql.NullString
		filename   sql.NullString
		alt        sql.NullString
		image      []byte
	)

	if err := scanner.Scan(
		&id,
		&documentID,
		&commandStr,
		&createdRaw,
		&title,
		&markdown,
		&language,
		&input,
		&output,
		&filename,
		&alt,
		&image,
	); err != nil {
		return nil, err
	}

	chunk := &Chunk{
		ID:         id,
		DocumentID: documentID,
		Command:    Command(commandStr),
		Fields: Fields{
			Title:    title.String,
			Markdown: markdown.String,
			Language: language.String,
			Input:    input.String,
			Output:   output.String,
			Filename: filename.String,
			Alt:      alt.String,
			Image:    image,
		},
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		chunk.CreatedAt = created
	}
	return chunk, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableBytes(value []byte) any {
	if len(value) == 0 {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
