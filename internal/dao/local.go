package dao

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"
	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/utils"
	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

type LocalDAO struct {
	outputPath string
}

func NewLocalDAO(outputPath string) *LocalDAO {
	if err := utils.CreateDirectoryIfNotExists(filepath.Dir(outputPath)); err != nil {
		logrus.WithError(err).Fatal("Failed to create output directory")
	}
	return &LocalDAO{
		outputPath: outputPath,
	}
}

// SaveTournaments writes the CSV at the configured path, truncating any
// previous export. The header row is written even when there are no records.
func (d *LocalDAO) SaveTournaments(tournaments []models.Tournament) error {
	logrus.Infof("Saving %d tournaments to %s", len(tournaments), d.outputPath)

	file, err := os.OpenFile(d.outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", d.outputPath, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(tournaments, file); err != nil {
		return fmt.Errorf("failed to marshal csv: %w", err)
	}
	return nil
}
