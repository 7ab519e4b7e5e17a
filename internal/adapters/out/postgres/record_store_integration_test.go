package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/logger"
)

// RecordStoreIntegrationTestSuite runs the record store against a real
// PostgreSQL container.
type RecordStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *postgres_adapter.RecordStore
	handle    ports.SourceHandle
}

func (suite *RecordStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.store = postgres_adapter.NewRecordStore(postgres_adapter.NewGormUnitOfWorkFactory(db), logger.Nop())
	suite.handle = ports.SourceHandle{Table: "datos_pedidos", Headers: records.Columns()}
}

func (suite *RecordStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE datos_pedidos").Error)
	for _, id := range []string{"P0001", "P0002", "P0003"} {
		suite.Require().NoError(suite.store.AppendRow(context.Background(), suite.handle, row(suite.handle.Headers, id)))
	}
}

func (suite *RecordStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RecordStoreIntegrationTestSuite) TestLoadAll_KeepsRowOrder() {
	table, err := suite.store.LoadAll(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(table.Rows, 3)
	for i, id := range []string{"P0001", "P0002", "P0003"} {
		suite.Equal(id, table.Rows[i][records.ColumnOrderID])
	}
}

func (suite *RecordStoreIntegrationTestSuite) TestBatchUpdateFields_Commits() {
	ctx := context.Background()

	err := suite.store.BatchUpdateFields(ctx, suite.handle, []ports.FieldUpdate{
		{RowIndex: 2, Column: records.ColumnStatus, Value: "✅ Completado"},
		{RowIndex: 2, Column: records.ColumnAssignee, Value: "Luis"},
		{RowIndex: 4, Column: records.ColumnNotes, Value: "urgente"},
	})
	suite.Require().NoError(err)

	table, err := suite.store.LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Equal("✅ Completado", table.Rows[0][records.ColumnStatus])
	suite.Equal("Luis", table.Rows[0][records.ColumnAssignee])
	suite.Equal("urgente", table.Rows[2][records.ColumnNotes])
}

func (suite *RecordStoreIntegrationTestSuite) TestBatchUpdateFields_RollsBack() {
	ctx := context.Background()

	err := suite.store.BatchUpdateFields(ctx, suite.handle, []ports.FieldUpdate{
		{RowIndex: 2, Column: records.ColumnStatus, Value: "✅ Completado"},
		{RowIndex: 50, Column: records.ColumnStatus, Value: "✅ Completado"},
	})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	table, err := suite.store.LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Equal("🔴 Pendiente", table.Rows[0][records.ColumnStatus])
}

func (suite *RecordStoreIntegrationTestSuite) TestConcurrentUpdates_DifferentCells() {
	ctx := context.Background()

	var wg sync.WaitGroup
	errCh := make(chan error, 3)
	for i, column := range []string{records.ColumnNotes, records.ColumnAssignee, records.ColumnComment} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.store.UpdateField(ctx, suite.handle, ports.FieldUpdate{RowIndex: 2 + i, Column: column, Value: "v"})
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.NoError(err)
	}

	table, err := suite.store.LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Equal("v", table.Rows[0][records.ColumnNotes])
	suite.Equal("v", table.Rows[1][records.ColumnAssignee])
	suite.Equal("v", table.Rows[2][records.ColumnComment])
}

func TestRecordStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	suite.Run(t, new(RecordStoreIntegrationTestSuite))
}
