package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feasibility-api/infrastructure/database/postgres"
	"github.com/vfg2006/feasibility-api/infrastructure/migration"
	"github.com/vfg2006/feasibility-api/infrastructure/repository"
	"github.com/vfg2006/feasibility-api/internal/api"
	"github.com/vfg2006/feasibility-api/internal/config"
	"github.com/vfg2006/feasibility-api/internal/scheduler"
	"github.com/vfg2006/feasibility-api/internal/usecases/analyzing"
	"github.com/vfg2006/feasibility-api/internal/usecases/authenticating"
	"github.com/vfg2006/feasibility-api/pkg/log"
	"github.com/vfg2006/feasibility-api/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.SetEnvironment(cfg.App.Env)
	logrus.WithField("env", cfg.App.Env).Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migração do banco")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	analysisRepo := repository.NewAnalysisRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzer := analyzing.NewService(analysisRepo, cfg)

	assumptions := analyzer.Assumptions()
	logrus.WithFields(logrus.Fields{
		"wacc":                 assumptions.WACC,
		"tax_rate":             assumptions.TaxRate,
		"depreciation_periods": assumptions.DepreciationPeriods,
		"otc_multiplier":       assumptions.OTCMultiplier,
	}).Info("Premissas financeiras carregadas")
	logrus.Debugf("Premissas completas: %s", utils.PrettyJson(assumptions))

	retentionService := scheduler.NewAnalysisRetentionService(analyzer, cfg)

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de análises")
	} else {
		logrus.Info("Agendador de retenção de análises iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		authenticator,
		retentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
