package domain

import (
	"time"

	"github.com/google/uuid"
)

type EstadoSituacion string

const (
	EstadoActiva     EstadoSituacion = "ACTIVA"
	EstadoEnPausa    EstadoSituacion = "EN_PAUSA"
	EstadoFinalizada EstadoSituacion = "FINALIZADA"
)

type Importancia string

const (
	ImportanciaBaja    Importancia = "BAJA"
	ImportanciaNormal  Importancia = "NORMAL"
	ImportanciaAlta    Importancia = "ALTA"
	ImportanciaCritica Importancia = "CRITICA"
)

// Sentido is the direction of travel a situation (or lane group) applies to.
type Sentido string

const (
	SentidoNorte     Sentido = "NORTE"
	SentidoSur       Sentido = "SUR"
	SentidoOriente   Sentido = "ORIENTE"
	SentidoOccidente Sentido = "OCCIDENTE"
	SentidoAmbos     Sentido = "AMBOS"
)

// Rol is the already-resolved caller role. The core never reads it from
// ambient state; every mutating operation receives it explicitly.
type Rol string

const (
	RolBrigada Rol = "BRIGADA"
	RolCOP     Rol = "COP"
	RolAdmin   Rol = "ADMIN"
)

// PuedeGestionarSituaciones reports whether the role may create, update,
// transition or (des)assign persistent situations.
func (r Rol) PuedeGestionarSituaciones() bool {
	return r == RolCOP || r == RolAdmin
}

// SituacionPersistente is a road incident expected to outlive a single
// patrol shift, tracked with an explicit lifecycle state.
type SituacionPersistente struct {
	ID     int64     `json:"id"`
	UUID   uuid.UUID `json:"uuid"`
	Numero string    `json:"numero"` // SP-YYYY-NNNN, assigned once, never reused

	Titulo           string      `json:"titulo"`
	Descripcion      string      `json:"descripcion,omitempty"`
	TipoEmergenciaID int64       `json:"tipo_emergencia_id"`
	Importancia      Importancia `json:"importancia"`

	RutaID   *int64   `json:"ruta_id,omitempty"`
	KmInicio *float64 `json:"km_inicio,omitempty"`
	KmFin    *float64 `json:"km_fin,omitempty"`
	Sentido  Sentido  `json:"sentido,omitempty"`

	Estado EstadoSituacion `json:"estado"`

	Obstruccion *Obstruccion `json:"obstruccion,omitempty"`

	Autoridades []ResponderEntry `json:"autoridades,omitempty"`
	Socorro     []ResponderEntry `json:"socorro,omitempty"`

	FechaInicio  time.Time  `json:"fecha_inicio"`
	FechaFinReal *time.Time `json:"fecha_fin_real,omitempty"`

	CreadoPor  int64  `json:"creado_por"`
	CerradoPor *int64 `json:"cerrado_por,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResponderEntry is one authority or rescue agency present at the scene.
type ResponderEntry struct {
	ID                int64   `json:"id,omitempty"`
	TipoAgencia       string  `json:"tipo_agencia"`
	HoraLlegada       *string `json:"hora_llegada,omitempty"`
	NumeroUnidad      *string `json:"numero_unidad,omitempty"`
	NombreComandante  *string `json:"nombre_comandante,omitempty"`
	CantidadElementos *int    `json:"cantidad_elementos,omitempty"`
	CantidadUnidades  *int    `json:"cantidad_unidades,omitempty"`
	Subestacion       *string `json:"subestacion,omitempty"`
	Observaciones     *string `json:"observaciones,omitempty"`
}

// Actualizacion is a free-text progress report posted by an assigned unit.
type Actualizacion struct {
	ID          int64     `json:"id"`
	SituacionID int64     `json:"situacion_persistente_id"`
	UnidadID    int64     `json:"unidad_id"`
	UsuarioID   int64     `json:"usuario_id"`
	Tipo        string    `json:"tipo_actualizacion"`
	Contenido   string    `json:"contenido,omitempty"`
	FechaHora   time.Time `json:"fecha_hora"`
}
