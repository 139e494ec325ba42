package cli

import (
	"fmt"
	"log/slog"

	"planes_info/internal/catalog"
	"planes_info/internal/config"
	"planes_info/internal/database"
	"planes_info/internal/dataset"
	"planes_info/internal/models"
)

// loadCatalog reads the dataset, passes it through the SQLite snapshot when
// one is configured, and builds the repository. The dataset is checked
// before it is written to the snapshot.
func loadCatalog(cfg *config.Config) (*catalog.Repository, error) {
	records, err := loadDataset(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := catalog.New(records)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	if cfg.DBPath != "" {
		records, err = loadSnapshot(cfg, repo.All())
		if err != nil {
			return nil, err
		}
		repo, err = catalog.New(records)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog from database: %w", err)
		}
	}

	slog.Debug("Catalog loaded", "records", repo.Len())
	return repo, nil
}

func loadDataset(cfg *config.Config) ([]models.Aircraft, error) {
	if cfg.DatasetPath == "" {
		records, err := dataset.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded dataset: %w", err)
		}
		return records, nil
	}

	slog.Debug("Loading dataset file", "path", cfg.DatasetPath)
	return dataset.LoadFile(cfg.DatasetPath)
}

// loadSnapshot seeds the snapshot from records when it is empty, then reads the catalog back from it
func loadSnapshot(cfg *config.Config, records []models.Aircraft) ([]models.Aircraft, error) {
	db, err := database.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := db.AircraftRepository()

	populated, err := repo.IsTablePopulated()
	if err != nil {
		return nil, err
	}

	if !populated {
		slog.Info("Aircraft table is empty, seeding from dataset", "db_path", cfg.DBPath, "records", len(records))
		if err := repo.Seed(records, cfg.SeedBatchSize); err != nil {
			return nil, fmt.Errorf("failed to seed aircraft table: %w", err)
		}
	} else {
		slog.Debug("Aircraft table is already populated", "db_path", cfg.DBPath)
	}

	loaded, err := repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load aircraft from database: %w", err)
	}
	return loaded, nil
}
