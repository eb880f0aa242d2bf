package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feasibility-api/internal/config"
)

// AnalysisPurger remove análises antigas do armazenamento
type AnalysisPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AnalysisRetentionConfig representa a configuração da limpeza de análises
type AnalysisRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// AnalysisRetentionService agenda a remoção das análises mais antigas que o prazo de retenção
type AnalysisRetentionService struct {
	scheduler         *gocron.Scheduler
	config            AnalysisRetentionConfig
	purger            AnalysisPurger
	now               func() time.Time
	purgeRunning      bool
	purgeMutex        sync.Mutex
	lastPurgeStarted  time.Time
	lastPurgeFinished time.Time
	lastPurgeRemoved  int64
	lastPurgeError    string
}

func NewAnalysisRetentionService(purger AnalysisPurger, appConfig *config.Config) *AnalysisRetentionService {
	retentionConfig := AnalysisRetentionConfig{
		CronSchedule:  appConfig.Retention.CronSchedule,
		RetentionDays: appConfig.Retention.RetentionDays,
		Enabled:       appConfig.Retention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração da retenção de análises carregada")

	return &AnalysisRetentionService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    retentionConfig,
		purger:    purger,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *AnalysisRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de análises desabilitada por configuração")
		return nil
	}

	if s.config.RetentionDays <= 0 {
		return fmt.Errorf("prazo de retenção inválido: %d dias", s.config.RetentionDays)
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de análises")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purge(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de análises: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de análises")
		s.scheduler.Stop()
	}()

	return nil
}

// cutoff retorna o instante antes do qual as análises são removidas
func (s *AnalysisRetentionService) cutoff() time.Time {
	return s.now().AddDate(0, 0, -s.config.RetentionDays)
}

func (s *AnalysisRetentionService) purge(ctx context.Context) {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Limpeza de análises já em andamento, ignorando")
		return
	}
	s.purgeRunning = true
	s.lastPurgeStarted = s.now()
	s.purgeMutex.Unlock()

	cutoff := s.cutoff()
	logrus.WithField("cutoff", cutoff.Format(time.DateOnly)).Info("Removendo análises antigas")

	removed, err := s.purger.PurgeOlderThan(ctx, cutoff)

	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	s.purgeRunning = false
	s.lastPurgeFinished = s.now()
	s.lastPurgeRemoved = removed
	s.lastPurgeError = ""

	if err != nil {
		s.lastPurgeError = err.Error()
		logrus.WithError(err).Error("Erro ao remover análises antigas")
		return
	}

	logrus.WithField("removed", removed).Info("Limpeza de análises concluída")
}

// TriggerManualPurge inicia manualmente uma limpeza. Retorna false quando a
// retenção está desativada ou já existe uma limpeza em andamento.
func (s *AnalysisRetentionService) TriggerManualPurge() bool {
	if !s.config.Enabled {
		logrus.Warn("Retenção de análises desativada, limpeza manual ignorada")
		return false
	}

	s.purgeMutex.Lock()
	running := s.purgeRunning
	s.purgeMutex.Unlock()

	if running {
		logrus.Info("Limpeza de análises já em andamento, ignorando solicitação manual")
		return false
	}

	if s.config.RetentionDays <= 0 {
		logrus.Warn("Prazo de retenção não configurado, limpeza manual ignorada")
		return false
	}

	logrus.Info("Iniciando limpeza manual de análises")
	go s.purge(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisRetentionService) GetStatus() map[string]any {
	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	return map[string]any{
		"retention_enabled":      s.config.Enabled,
		"retention_cron":         s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"purge_running":          s.purgeRunning,
		"last_purge_started_at":  s.lastPurgeStarted,
		"last_purge_finished_at": s.lastPurgeFinished,
		"last_purge_removed":     s.lastPurgeRemoved,
		"last_purge_error":       s.lastPurgeError,
	}
}
