// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/animerec/internal/metrics"
)

// Single-threaded so read_csv keeps file order without relying on
// preserve_insertion_order across worker threads.
const tableReaderDSN = "?threads=1&preserve_insertion_order=true&autoinstall_known_extensions=false&autoload_known_extensions=false"

const csvOptions = "header = true, all_varchar = true"

// tableReader reads CSV columns through an in-memory DuckDB connection.
type tableReader struct {
	db *sql.DB
}

func openTableReader() (*tableReader, error) {
	db, err := sql.Open("duckdb", tableReaderDSN)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &tableReader{db: db}, nil
}

func (r *tableReader) Close() error {
	return r.db.Close()
}

// columns returns the header of the CSV file at path.
func (r *tableReader) columns(ctx context.Context, path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM read_csv(?, "+csvOptions+") LIMIT 0", path)
	metrics.RecordCatalogQuery("describe", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only query

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	return cols, rows.Err()
}

// column returns every value of one column in file order. NULL cells
// (empty fields) come back as "".
func (r *tableReader) column(ctx context.Context, path, column, operation string) ([]string, error) {
	cols, err := r.columns(ctx, path)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(cols, column) {
		return nil, fmt.Errorf("missing required column %q (have %s)", column, strings.Join(cols, ", "))
	}

	query := fmt.Sprintf("SELECT %s FROM read_csv(?, %s)", quoteIdent(column), csvOptions)

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, path)
	if err != nil {
		return nil, fmt.Errorf("read column %q: %w", column, err)
	}
	defer rows.Close() //nolint:errcheck // read-only query

	var values []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan column %q: %w", column, err)
		}
		values = append(values, v.String)
	}
	metrics.RecordCatalogQuery(operation, time.Since(start))
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read column %q: %w", column, err)
	}
	return values, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
