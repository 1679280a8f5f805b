package domain

import (
	"time"

	"github.com/google/uuid"
)

type TipoEvento string

const (
	EventoCreada      TipoEvento = "situacion_creada"
	EventoActualizada TipoEvento = "situacion_actualizada"
)

// SituacionResumen is the event payload variant of a situation. Rosters are
// reduced to counts so event size stays bounded; consumers re-fetch detail
// on demand.
type SituacionResumen struct {
	ID                     int64           `json:"id"`
	UUID                   uuid.UUID       `json:"uuid"`
	Numero                 string          `json:"numero"`
	Titulo                 string          `json:"titulo"`
	Estado                 EstadoSituacion `json:"estado"`
	Importancia            Importancia     `json:"importancia"`
	Sentido                Sentido         `json:"sentido,omitempty"`
	DescripcionObstruccion string          `json:"descripcion_obstruccion,omitempty"`
	CantidadAutoridades    int             `json:"cantidad_autoridades"`
	CantidadSocorro        int             `json:"cantidad_socorro"`
	UnidadesActivas        int             `json:"unidades_activas"`
}

type EventoSituacion struct {
	Tipo      TipoEvento       `json:"tipo"`
	Situacion SituacionResumen `json:"situacion"`
	EmitidoEn time.Time        `json:"emitido_en"`
}

// Resumen projects a full situation into its bounded event form.
func (s *SituacionPersistente) Resumen(unidadesActivas int) SituacionResumen {
	r := SituacionResumen{
		ID:                  s.ID,
		UUID:                s.UUID,
		Numero:              s.Numero,
		Titulo:              s.Titulo,
		Estado:              s.Estado,
		Importancia:         s.Importancia,
		Sentido:             s.Sentido,
		CantidadAutoridades: len(s.Autoridades),
		CantidadSocorro:     len(s.Socorro),
		UnidadesActivas:     unidadesActivas,
	}
	if s.Obstruccion != nil {
		r.DescripcionObstruccion = s.Obstruccion.Descripcion
	}
	return r
}
