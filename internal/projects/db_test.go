package projects

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("RWACONSOLE_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("RWACONSOLE_TEST_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func mustCreateTestEnterprise(t *testing.T, tx *gorm.DB) *models.Enterprise {
	t.Helper()
	enterprise := &models.Enterprise{
		ID:   uuid.New(),
		Name: "Repo Test Enterprise",
	}
	if err := tx.Create(enterprise).Error; err != nil {
		t.Fatalf("create enterprise: %v", err)
	}
	return enterprise
}

func mustCreateTestProject(t *testing.T, tx *gorm.DB, enterpriseID, userID uuid.UUID) *models.Project {
	t.Helper()
	project := &models.Project{
		EnterpriseID:   enterpriseID,
		Name:           fmt.Sprintf("Repo Project %s", uuid.NewString()[:8]),
		AssetType:      enums.AssetTypeCommodities,
		Status:         enums.ProjectStatusDraft,
		LifecycleStage: enums.LifecycleStageCreatingInProgress,
		CurrentStep:    2,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}
	if err := tx.Create(project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}
