package domain

import "time"

// Asignacion is one ledger entry tying a unit to a situation. Entries are
// append-only: releasing a unit stamps FechaDesasignacion, it never deletes.
// For a given (situation, unit) pair at most one entry may have a nil
// FechaDesasignacion at any time.
type Asignacion struct {
	ID                         int64      `json:"id"`
	SituacionID                int64      `json:"situacion_persistente_id"`
	UnidadID                   int64      `json:"unidad_id"`
	FechaAsignacion            time.Time  `json:"fecha_hora_asignacion"`
	FechaDesasignacion         *time.Time `json:"fecha_hora_desasignacion,omitempty"`
	ObservacionesAsignacion    string     `json:"observaciones_asignacion,omitempty"`
	ObservacionesDesasignacion string     `json:"observaciones_desasignacion,omitempty"`
	AsignadoPor                int64      `json:"asignado_por"`
	DesasignadoPor             *int64     `json:"desasignado_por,omitempty"`
}

// Activa reports whether the entry is the unit's current assignment.
func (a *Asignacion) Activa() bool {
	return a.FechaDesasignacion == nil
}
