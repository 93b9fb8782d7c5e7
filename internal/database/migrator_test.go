package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideRetries(t *testing.T, retries int, interval time.Duration) {
	t.Helper()
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = interval
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestNewMigrationRunnerWithPaths(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunnerWithPaths(db, "custom/migrations", "")

	assert.Equal(t, "custom/migrations", runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	overrideRetries(t, 2, 50*time.Millisecond)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	overrideRetries(t, 2, 50*time.Millisecond)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	overrideRetries(t, 5, time.Second)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	runner := NewMigrationRunner(db)
	start := time.Now()
	err = runner.WaitForDatabase(ctx)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitForDatabase_WaitsBetweenAttempts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	overrideRetries(t, 4, 100*time.Millisecond)

	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)

	start := time.Now()
	err = runner.WaitForDatabase(context.Background())
	duration := time.Since(start)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, duration, 300*time.Millisecond, "Should have waited for retries")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunnerWithPaths(db, "/nonexistent/path/to/migrations", "")

	assert.NoError(t, runner.RunMigrations())
	assert.False(t, runner.HasMigrations())
}

func TestRollbackMigrations_InvalidSteps(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	err = runner.RollbackMigrations(0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestRollbackMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunnerWithPaths(db, "/nonexistent/migrations", "")

	err = runner.RollbackMigrations(1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestLoadSeeds_DisabledByEnvironment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "false")

	runner := NewMigrationRunner(db)

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunnerWithPaths(db, "", "/nonexistent/seeds/path")

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_NoSeedFiles(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunnerWithPaths(db, "", t.TempDir())

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_SuccessfulExecution(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	seedContent := `
INSERT INTO named_periods (id, year, month, start_date, end_date, created_at, modified_at)
VALUES ('b0000000-0000-0000-0000-000000000001', 2024, 'มกราคม', '2023-12-25', '2024-01-24', NOW(), NOW())
ON CONFLICT (id) DO NOTHING;
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_named_periods.sql"), []byte(seedContent), 0644))

	t.Setenv("SEED_DATABASE", "true")

	mock.ExpectExec("INSERT INTO named_periods").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunnerWithPaths(db, "", tempDir)

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedFiles_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_bad_data.sql"), []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "002_good_data.sql"), []byte("INSERT INTO transactions VALUES ('test');"), 0644))

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunnerWithPaths(db, "", tempDir)

	assert.NoError(t, runner.LoadSeedFiles())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedFiles_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "001_invalid.sql"), 0755))

	runner := NewMigrationRunnerWithPaths(db, "", tempDir)

	err = runner.LoadSeedFiles()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	ran, err := RunMigrationsIfEnabled(db)

	assert.NoError(t, err)
	assert.False(t, ran)
}

func TestRunMigrationsIfEnabled_Enabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "true")
	overrideRetries(t, 2, 50*time.Millisecond)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	ran, err := RunMigrationsIfEnabled(db)

	assert.Error(t, err)
	assert.False(t, ran)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunnerWithPaths(db, "/nonexistent/migrations", "")

	_, _, err = runner.GetMigrationStatus()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
