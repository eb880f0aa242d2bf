package main

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/feasibility-api/infrastructure/database/postgres"
	"github.com/vfg2006/feasibility-api/infrastructure/migration"
	"github.com/vfg2006/feasibility-api/infrastructure/repository"
	"github.com/vfg2006/feasibility-api/internal/config"
	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

// Script de carga inicial: aplica o schema e cria o primeiro administrador.
// Uso: ADMIN_NAME=... ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./infrastructure/migration/script
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga inicial...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	admin := &domain.User{
		Name:         strings.TrimSpace(viper.GetString("ADMIN_NAME")),
		Email:        strings.ToLower(strings.TrimSpace(viper.GetString("ADMIN_EMAIL"))),
		PasswordHash: viper.GetString("ADMIN_PASSWORD"),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	}

	if admin.Name == "" || admin.Email == "" || admin.PasswordHash == "" {
		logrus.Fatal("ADMIN_NAME, ADMIN_EMAIL e ADMIN_PASSWORD são obrigatórios")
	}

	if err := authenticating.ValidatePasswordStrength(admin.PasswordHash); err != nil {
		logrus.WithError(err).Fatal("Senha do administrador não atende aos requisitos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := migration.Apply(ctx, tx); err != nil {
			return err
		}
		return seedAdmin(ctx, repository.NewUserRepository(tx), admin)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro durante a carga inicial, transação revertida")
	}

	logrus.WithField("elapsed", time.Since(startTime)).Info("Carga inicial concluída com sucesso")
}

func seedAdmin(ctx context.Context, userRepo repository.UserRepository, admin *domain.User) error {
	existing, err := userRepo.GetUserByEmail(ctx, admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.WithField("email", admin.Email).Info("Administrador já cadastrado, nada a fazer")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.PasswordHash = string(hashedPassword)

	created, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": created.ID,
		"email":   created.Email,
	}).Info("Administrador criado")
	return nil
}
