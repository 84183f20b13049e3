package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"flightroute/navroute"
)

// loadCatalog loads the navigation points named by cfg, preferring the
// database when one is configured.
func loadCatalog(ctx context.Context, cfg CatalogConfig, logger *log.Logger) (navroute.StaticCatalog, error) {
	if cfg.DatabaseURL != "" {
		return loadPostgresCatalog(ctx, cfg.DatabaseURL, cfg.Table, logger)
	}
	if cfg.File != "" {
		return loadGeoJSONCatalog(cfg.File, logger)
	}
	return nil, fmt.Errorf("load catalog: no catalog source configured")
}

// loadGeoJSONCatalog reads navigation points from a GeoJSON
// FeatureCollection file, or from every *.geojson file in a directory
// (in lexical file order).
func loadGeoJSONCatalog(path string, logger *log.Logger) (navroute.StaticCatalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		points, err := parseGeoJSONCatalog(data, logger)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		logger.Info("Loaded navigation points", "file", path, "points", len(points))
		return points, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.geojson"))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	logger.Info("Loading navigation points", "dir", path, "files", len(files))

	var all []navroute.NavPoint
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("Failed to read catalog file", "file", file, "err", err)
			continue
		}

		points, err := parseGeoJSONCatalog(data, logger)
		if err != nil {
			logger.Warn("Failed to parse catalog file", "file", file, "err", err)
			continue
		}

		logger.Debug("Loaded catalog file", "file", filepath.Base(file), "points", len(points))
		all = append(all, points...)
	}

	if err := checkUniqueNames(all); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	logger.Info("Total navigation points loaded", "points", len(all))
	return all, nil
}

// parseGeoJSONCatalog converts a FeatureCollection of Point features into
// navigation points. Each feature carries "name" and "type" properties;
// coordinates are planar nautical miles. Features that are not usable
// points are skipped with a warning.
func parseGeoJSONCatalog(data []byte, logger *log.Logger) (navroute.StaticCatalog, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}

	points := make(navroute.StaticCatalog, 0, len(fc.Features))
	for i, f := range fc.Features {
		name := f.Properties.MustString("name", "")
		if name == "" {
			if id, ok := f.ID.(string); ok {
				name = id
			}
		}
		if name == "" {
			logger.Warn("Skipping unnamed feature", "feature", i)
			continue
		}

		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			logger.Warn("Skipping non-point feature", "name", name, "geometry", fmt.Sprintf("%T", f.Geometry))
			continue
		}

		typ, err := navroute.ParsePointType(f.Properties.MustString("type", ""))
		if err != nil {
			logger.Warn("Skipping feature", "name", name, "err", err)
			continue
		}

		points = append(points, navroute.NavPoint{
			Name: name,
			X:    pt.X(),
			Y:    pt.Y(),
			Type: typ,
		})
	}

	if err := checkUniqueNames(points); err != nil {
		return nil, err
	}

	return points, nil
}

func checkUniqueNames(points []navroute.NavPoint) error {
	seen := make(map[string]bool, len(points))
	for _, p := range points {
		if seen[p.Name] {
			return fmt.Errorf("duplicate navigation point %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
