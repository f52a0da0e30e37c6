package migrate

import (
	"context"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestMigrator(t *testing.T) (*Migrator, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:?_foreign_keys=1")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	m, err := New(db)
	require.NoError(t, err)
	return m, db
}

func TestInTx_ErrorRollsBack(t *testing.T) {
	m, db := newTestMigrator(t)
	require.NoError(t, db.Exec("CREATE TABLE scratch_rows (id INTEGER)").Error)

	boom := errors.New("boom")
	err := m.inTx(context.Background(), func(tx *gorm.DB) error {
		require.NoError(t, tx.Exec("INSERT INTO scratch_rows (id) VALUES (1)").Error)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.Table("scratch_rows").Count(&n).Error)
	require.Zero(t, n)
}

func TestInTx_PanicRollsBackAndRepanics(t *testing.T) {
	m, db := newTestMigrator(t)
	require.NoError(t, db.Exec("CREATE TABLE scratch_rows (id INTEGER)").Error)

	require.PanicsWithValue(t, "halt", func() {
		_ = m.inTx(context.Background(), func(tx *gorm.DB) error {
			require.NoError(t, tx.Exec("INSERT INTO scratch_rows (id) VALUES (1)").Error)
			panic("halt")
		})
	})

	// the single connection is usable again only if the transaction ended
	var n int
	require.NoError(t, db.Table("scratch_rows").Count(&n).Error)
	require.Zero(t, n)
}

func TestUp_FailingDeltaLeavesNoLedgerRow(t *testing.T) {
	m, db := newTestMigrator(t)
	m.deltas = append(Deltas(), Delta{
		Version: 99,
		Name:    "broken",
		Up:      []string{"CREATE TABLE orders (order_uid TEXT)"},
	})

	n, err := m.Up(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "apply migration 99 broken")
	require.Equal(t, len(Deltas()), n)

	done, err := m.appliedVersions(context.Background())
	require.NoError(t, err)
	require.False(t, done[99])
	require.True(t, db.HasTable("orders"))
}
