package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/cmlabs-hris/staff-leave-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL not set, skipping postgresql integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testDB, err = database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 10})
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	if err := database.Migrate(ctx, testDB); err != nil {
		panic("Failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func truncateTables(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(), "TRUNCATE TABLE leaves, staff, admins CASCADE")
	require.NoError(t, err)
}

func createTestStaff(t *testing.T, firstName string) staff.Staff {
	t.Helper()
	repo := postgresql.NewStaffRepository(testDB)
	created, err := repo.Create(context.Background(), staff.Staff{
		FirstName:   firstName,
		LastName:    "Tester",
		Email:       fmt.Sprintf("%s-%d@example.com", firstName, time.Now().UnixNano()),
		PhoneNumber: "081234567890",
		Address:     "Jl. Sudirman 10",
		Gender:      "female",
	})
	require.NoError(t, err)
	return created
}
