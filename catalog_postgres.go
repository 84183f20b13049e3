package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flightroute/navroute"
)

// querier is the subset of pgxpool.Pool the catalog reader needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadPostgresCatalog reads every navigation point from table. The table
// needs name, x, y and type columns; rows are returned ordered by name so
// the catalog order is stable between loads.
func loadPostgresCatalog(ctx context.Context, databaseURL, table string, logger *log.Logger) (navroute.StaticCatalog, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("load catalog: open postgres pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: verify postgres connection: %w", err)
	}

	points, err := queryCatalog(ctx, pool, table)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded navigation points", "table", table, "points", len(points))
	return points, nil
}

func queryCatalog(ctx context.Context, db querier, table string) (navroute.StaticCatalog, error) {
	if table == "" {
		table = "nav_points"
	}

	q := fmt.Sprintf(`
	SELECT name, x, y, type
	FROM %s
	ORDER BY name;
	`, pgx.Identifier{table}.Sanitize())

	rows, err := db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query %s table: %w", table, err)
	}
	defer rows.Close()

	points := make(navroute.StaticCatalog, 0, 256)
	for rows.Next() {
		var (
			p   navroute.NavPoint
			typ string
		)
		if err := rows.Scan(&p.Name, &p.X, &p.Y, &typ); err != nil {
			return nil, fmt.Errorf("load catalog: scan row: %w", err)
		}
		if p.Type, err = navroute.ParsePointType(typ); err != nil {
			return nil, fmt.Errorf("load catalog: point %q: %w", p.Name, err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: row iteration: %w", err)
	}

	return points, nil
}
