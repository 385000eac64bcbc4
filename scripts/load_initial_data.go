package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/validation"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/yaml.v3"
)

// MemberData is one member of a seeded team
type MemberData struct {
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Phone          string `yaml:"phone"`
	RegisterNumber string `yaml:"register_number"`
	ClassName      string `yaml:"class_name"`
	Department     string `yaml:"department"`
	School         string `yaml:"school"`
}

// TeamData is one seeded team; the first member is the lead
type TeamData struct {
	TeamName string       `yaml:"team_name"`
	Members  []MemberData `yaml:"members"`
}

// SeedFile is the shape of every YAML file under the data directory
type SeedFile struct {
	Registration *bool      `yaml:"registration_enabled,omitempty"`
	Teams        []TeamData `yaml:"teams"`
}

func main() {
	dataDir := flag.String("data", "data", "directory of seed YAML files")
	flag.Parse()

	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, db, err := connectWithRetry(ctx, cfg, 10, 3*time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := loadDataFromYAMLFiles(ctx, db, *dataDir); err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}
}

func connectWithRetry(ctx context.Context, cfg *config.Config, maxAttempts int, delay time.Duration) (*mongo.Client, *mongo.Database, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, db, err := database.Initialize(ctx, cfg.MongoURI, cfg.MongoDatabase, nil)
		if err == nil {
			return client, db, nil
		}
		lastErr = err
		logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, nil, lastErr
}

func loadDataFromYAMLFiles(ctx context.Context, db *mongo.Database, dataDir string) error {
	files, err := loadSeedFiles(dataDir)
	if err != nil {
		return err
	}

	teamRepo := repository.NewTeamRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	teamValidator := validation.NewTeamValidator(validation.New())

	existing, err := teamRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	created, skipped := 0, 0
	for _, file := range files {
		if file.Registration != nil {
			if _, err := settingsRepo.SetRegistrationEnabled(ctx, *file.Registration, "seed"); err != nil {
				return fmt.Errorf("set registration flag: %w", err)
			}
		}

		for _, data := range file.Teams {
			index := validation.NewUniquenessIndex(existing, "")
			team, err := teamValidator.Validate(data.input(), index)
			if err != nil {
				logrus.Warnf("Skipping team %q: %v", data.TeamName, err)
				skipped++
				continue
			}
			team.AssignSlug(existing, "")
			if err := teamRepo.Create(ctx, team); err != nil {
				logrus.Warnf("Failed to create team %q: %v", data.TeamName, err)
				skipped++
				continue
			}
			existing = append(existing, *team)
			created++
		}
	}

	total, err := teamRepo.Count(ctx)
	if err != nil {
		return err
	}
	logrus.Infof("Teams: %d created, %d skipped, %d total", created, skipped, total)
	return nil
}

func (t TeamData) input() validation.TeamInput {
	in := validation.TeamInput{TeamName: t.TeamName, Members: make([]validation.MemberInput, len(t.Members))}
	for i, m := range t.Members {
		in.Members[i] = validation.MemberInput{
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
			RegisterNumber: m.RegisterNumber,
			ClassName:      m.ClassName,
			Department:     m.Department,
			School:         m.School,
		}
	}
	return in
}

func loadSeedFiles(dataDir string) ([]SeedFile, error) {
	var files []SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})

	return files, err
}
