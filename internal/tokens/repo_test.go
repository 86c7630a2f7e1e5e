package tokens

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

func setupTokensTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS project_tokens (
  id TEXT PRIMARY KEY,
  project_id TEXT NOT NULL,
  chain TEXT NOT NULL,
  symbol TEXT NOT NULL,
  decimal INTEGER NOT NULL,
  contract_address TEXT,
  total_supply INTEGER,
  nav NUMERIC,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_project_tokens_project_symbol ON project_tokens (project_id, symbol);`
	require.NoError(t, conn.Exec(ddl).Error)

	return conn
}

func newToken(projectID uuid.UUID, symbol string) *models.ProjectToken {
	return &models.ProjectToken{
		ID:        uuid.New(),
		ProjectID: projectID,
		Chain:     enums.ChainNetworkPolygon,
		Symbol:    symbol,
		Decimal:   18,
	}
}

func TestRepositorySaveAndFindBySymbol(t *testing.T) {
	conn := setupTokensTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	projectID := uuid.New()
	saved, err := repo.Save(ctx, newToken(projectID, "HARB"))
	require.NoError(t, err)

	found, err := repo.FindBySymbol(ctx, projectID, "HARB")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, enums.ChainNetworkPolygon, found.Chain)

	_, err = repo.FindBySymbol(ctx, projectID, "WARE")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositorySaveUpdatesInPlace(t *testing.T) {
	conn := setupTokensTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	projectID := uuid.New()
	token, err := repo.Save(ctx, newToken(projectID, "HARB"))
	require.NoError(t, err)

	address := "0x00000000219ab540356cBB839Cbe05303d7705Fa"
	token.ContractAddress = &address
	_, err = repo.Save(ctx, token)
	require.NoError(t, err)

	rows, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].ContractAddress)
	assert.Equal(t, address, *rows[0].ContractAddress)
}

func TestRepositoryListScopedToProject(t *testing.T) {
	conn := setupTokensTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	projectID := uuid.New()
	_, err := repo.Save(ctx, newToken(projectID, "HARB"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newToken(projectID, "WARE"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newToken(uuid.New(), "HARB"))
	require.NoError(t, err)

	rows, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, repo.DeleteByProject(ctx, projectID))
	rows, err = repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
