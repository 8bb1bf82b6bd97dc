// Package migration aplica o schema embutido no binário via golang-migrate
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed *.sql
var files embed.FS

// Run aplica as migrações pendentes. Com autoMigrate desligado apenas registra a versão atual
func Run(db *sql.DB, autoMigrate bool) error {
	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("erro ao carregar migrações embutidas: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("erro ao obter versão do schema: %w", err)
	}

	if dirty {
		return fmt.Errorf("schema em estado inconsistente na versão %d, corrija manualmente", version)
	}

	if !autoMigrate {
		logrus.WithField("version", version).Info("Migração automática desabilitada")
		return nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.WithField("version", version).Info("Schema do banco já está atualizado")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("erro ao obter versão do schema: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"from_version": version,
		"to_version":   newVersion,
	}).Info("Migrações aplicadas com sucesso")

	return nil
}
