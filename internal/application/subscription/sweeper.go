package subscription

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/logger"
)

// Sweeper marca como Expired los contratos Active/OnTrial cuya suscripción ya
// venció. El guard de navegación no depende de este barrido (calcula el
// vencimiento por fecha en cada evaluación); el barrido mantiene honesto el
// estado almacenado para reportes y administración.
type Sweeper struct {
	orgRepo repository.OrganizationRepository
	cron    *cron.Cron
	log     *logger.Logger
}

// NewSweeper construye el barrido con su cron propio.
func NewSweeper(orgRepo repository.OrganizationRepository, log *logger.Logger) *Sweeper {
	return &Sweeper{
		orgRepo: orgRepo,
		cron:    cron.New(),
		log:     log,
	}
}

// Start programa el barrido con la expresión cron dada y lo deja corriendo.
func (s *Sweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("cron", spec).Msg("barrido de suscripciones programado")
	return nil
}

// Stop detiene el cron.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("barrido de suscripciones detenido")
}

// ExpiryCutoff devuelve el corte del barrido: la fecha local de hoy a
// medianoche UTC. La fecha de fin se almacena como solo-fecha a medianoche
// UTC y el guard admite el día local completo de esa fecha, así que un
// contrato se marca Expired solo cuando ese día ya pasó.
func ExpiryCutoff(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RunOnce ejecuta una pasada del barrido.
func (s *Sweeper) RunOnce() {
	ids, err := s.orgRepo.ExpireLapsed(ExpiryCutoff(time.Now()))
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de suscripciones falló")
		return
	}
	if len(ids) == 0 {
		s.log.Debug().Msg("barrido de suscripciones: nada que expirar")
		return
	}
	for _, id := range ids {
		s.log.Info().Str("organization_id", id).Msg("contrato marcado como Expired")
	}
}
