package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"grow-backend/internal/config"
	"grow-backend/internal/database"
	"grow-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match DB schema
type ProjectData struct {
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	RequiredSkills   []string `yaml:"required_skills"`
	SupportDocuments []string `yaml:"support_documents,omitempty"`
	TeamSize         int      `yaml:"team_size"`
	Status           int      `yaml:"status"`
	CreatedByUserID  string   `yaml:"created_by_user_id"`
	CreatedByName    string   `yaml:"created_by_name"`
	Participants     []struct {
		UserID      string `yaml:"user_id"`
		DisplayName string `yaml:"display_name"`
	} `yaml:"participants,omitempty"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type TeamSkillsData struct {
	TeamID          string   `yaml:"team_id"`
	Skills          []string `yaml:"skills"`
	CreatedByUserID string   `yaml:"created_by_user_id"`
}

// File structures
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type TeamSkillsFile struct {
	TeamSkills []TeamSkillsData `yaml:"team_skills"`
}

func main() {
	dataDir := "data/sample"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := waitForDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Sample data loaded")
}

func waitForDatabase(dsn string) (*gorm.DB, error) {
	const maxAttempts = 10
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, nil)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(2 * time.Second)
	}
	return nil, lastErr
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	projects, err := loadProjects(dataDir)
	if err != nil {
		return err
	}

	projectCreated := 0
	for _, data := range projects {
		project, err := toProject(data)
		if err != nil {
			log.Printf("⚠️  Warning: skipping project %q: %v", data.Title, err)
			continue
		}
		var existing models.Project
		err = db.First(&existing, "title = ? AND created_by_user_id = ?", project.Title, project.CreatedByUserID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(project).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create project %q: %v", project.Title, err)
			continue
		}
		projectCreated++
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	teamSkills, err := loadTeamSkills(dataDir)
	if err != nil {
		return err
	}

	skillsCreated := 0
	for _, data := range teamSkills {
		now := time.Now().UTC()
		config := models.TeamSkills{
			TeamID:          data.TeamID,
			Skills:          data.Skills,
			CreatedByUserID: data.CreatedByUserID,
			UpdatedByUserID: data.CreatedByUserID,
			CreatedDate:     now,
			UpdatedDate:     now,
		}
		var existing models.TeamSkills
		err = db.First(&existing, "team_id = ?", config.TeamID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&config).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create team skills for %q: %v", config.TeamID, err)
			continue
		}
		skillsCreated++
	}
	log.Printf("📋 Team skill configurations: %d created, %d total", skillsCreated, len(teamSkills))

	return nil
}

func toProject(data ProjectData) (*models.Project, error) {
	start, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return nil, fmt.Errorf("bad start_date %q: %w", data.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", data.EndDate)
	if err != nil {
		return nil, fmt.Errorf("bad end_date %q: %w", data.EndDate, err)
	}

	status := models.ProjectStatus(data.Status)
	if data.Status == 0 {
		status = models.StatusNotStarted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status code %d", data.Status)
	}

	participants := models.ParticipantList{}
	for _, p := range data.Participants {
		participants = append(participants, models.Participant{UserID: p.UserID, DisplayName: p.DisplayName})
	}

	now := time.Now().UTC()
	return &models.Project{
		Title:            data.Title,
		Description:      data.Description,
		RequiredSkills:   data.RequiredSkills,
		SupportDocuments: data.SupportDocuments,
		TeamSize:         data.TeamSize,
		Status:           status,
		Participants:     participants,
		CreatedByUserID:  data.CreatedByUserID,
		CreatedByName:    data.CreatedByName,
		ProjectStartDate: start,
		ProjectEndDate:   end,
		CreatedDate:      now,
		UpdatedDate:      now,
	}, nil
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	path := filepath.Join(dataDir, "projects.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var file ProjectsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Projects, nil
}

func loadTeamSkills(dataDir string) ([]TeamSkillsData, error) {
	path := filepath.Join(dataDir, "team_skills.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var file TeamSkillsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.TeamSkills, nil
}
