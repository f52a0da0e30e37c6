// Package migrate keeps the versioned schema ledger of the order store.
// It is applied independently of the store's runtime operations: each delta
// runs once, in its own transaction, and is recorded in schema_migrations.
package migrate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Status Direction = "status"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Up, Down, Status:
		return d, nil
	default:
		return "", fmt.Errorf("unknown migration direction %q", s)
	}
}

// Applied is a row of the ledger.
type Applied struct {
	Version   int       `gorm:"column:version;primary_key"`
	Name      string    `gorm:"column:name"`
	AppliedAt time.Time `gorm:"column:applied_at"`
}

func (Applied) TableName() string { return "schema_migrations" }

const ledgerDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    name       VARCHAR(255) NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type Migrator struct {
	db     *gorm.DB
	deltas []Delta
	render *strings.Replacer
	now    func() time.Time
}

func New(db *gorm.DB) (*Migrator, error) {
	render, err := dialectReplacer(db.Dialect().GetName())
	if err != nil {
		return nil, err
	}
	return &Migrator{
		db:     db,
		deltas: Deltas(),
		render: render,
		now:    time.Now,
	}, nil
}

func dialectReplacer(dialect string) (*strings.Replacer, error) {
	switch dialect {
	case "postgres":
		return strings.NewReplacer(
			"{{serial}}", "BIGSERIAL PRIMARY KEY",
			"{{uuid}}", "UUID",
			"{{uuid_default}}", " DEFAULT gen_random_uuid()",
			"{{epoch_now}}", "(EXTRACT(EPOCH FROM now())::BIGINT)",
		), nil
	case "sqlite3":
		return strings.NewReplacer(
			"{{serial}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
			"{{uuid}}", "VARCHAR(36)",
			"{{uuid_default}}", "",
			"{{epoch_now}}", "(CAST(strftime('%s', 'now') AS INTEGER))",
		), nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

// Run dispatches on direction and returns the ledger after the run.
func (m *Migrator) Run(ctx context.Context, dir Direction) ([]Applied, error) {
	switch dir {
	case Up:
		if _, err := m.Up(ctx); err != nil {
			return nil, err
		}
	case Down:
		if _, err := m.Down(ctx); err != nil {
			return nil, err
		}
	case Status:
	default:
		return nil, fmt.Errorf("unknown migration direction %q", dir)
	}
	return m.Status(ctx)
}

// Up applies every pending delta and returns how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	done, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, d := range m.deltas {
		if done[d.Version] {
			continue
		}
		err := m.inTx(ctx, func(tx *gorm.DB) error {
			if err := m.exec(tx, d.Up); err != nil {
				return err
			}
			return tx.Create(&Applied{Version: d.Version, Name: d.Name, AppliedAt: m.now().UTC()}).Error
		})
		if err != nil {
			return n, errors.Wrapf(err, "apply migration %d %s", d.Version, d.Name)
		}
		logrus.WithFields(logrus.Fields{"version": d.Version, "name": d.Name}).Info("migration applied")
		n++
	}
	return n, nil
}

// Down reverts every applied delta, newest first.
func (m *Migrator) Down(ctx context.Context) (int, error) {
	done, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	deltas := make([]Delta, len(m.deltas))
	copy(deltas, m.deltas)
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].Version > deltas[j].Version })

	n := 0
	for _, d := range deltas {
		if !done[d.Version] {
			continue
		}
		err := m.inTx(ctx, func(tx *gorm.DB) error {
			if err := m.exec(tx, d.Down); err != nil {
				return err
			}
			return tx.Where("version = ?", d.Version).Delete(&Applied{}).Error
		})
		if err != nil {
			return n, errors.Wrapf(err, "revert migration %d %s", d.Version, d.Name)
		}
		logrus.WithFields(logrus.Fields{"version": d.Version, "name": d.Name}).Info("migration reverted")
		n++
	}
	return n, nil
}

func (m *Migrator) Status(_ context.Context) ([]Applied, error) {
	if err := m.ensureLedger(); err != nil {
		return nil, err
	}
	var rows []Applied
	if err := m.db.Order("version").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "read migration ledger")
	}
	return rows, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.Status(ctx)
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(rows))
	for _, r := range rows {
		done[r.Version] = true
	}
	return done, nil
}

func (m *Migrator) ensureLedger() error {
	return errors.Wrap(m.db.Exec(ledgerDDL).Error, "create migration ledger")
}

func (m *Migrator) exec(tx *gorm.DB, stmts []string) error {
	for _, stmt := range stmts {
		if err := tx.Exec(m.render.Replace(stmt)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := m.db.BeginTx(ctx, nil)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			logrus.WithError(rbErr).Error("migration rollback failed")
		}
		return err
	}
	return errors.Wrap(tx.Commit().Error, "commit transaction")
}
