package domain

// ObstruccionInput is the client-supplied obstruction block. Clients submit
// lane data but never the derived description.
type ObstruccionInput struct {
	HayVehiculoFueraVia bool            `json:"hay_vehiculo_fuera_via"`
	TipoObstruccion     TipoObstruccion `json:"tipo_obstruccion" validate:"omitempty,tipo_obstruccion"`
	SentidoPrincipal    *GrupoCarriles  `json:"sentido_principal"`
	SentidoContrario    *GrupoCarriles  `json:"sentido_contrario"`
	DescripcionManual   string          `json:"descripcion_manual"`
}

func (in *ObstruccionInput) ToObstruccion() *Obstruccion {
	tipo := in.TipoObstruccion
	if tipo == "" {
		tipo = ObstruccionNinguna
	}
	return &Obstruccion{
		HayVehiculoFueraVia: in.HayVehiculoFueraVia,
		Tipo:                tipo,
		SentidoPrincipal:    in.SentidoPrincipal,
		SentidoContrario:    in.SentidoContrario,
		DescripcionManual:   in.DescripcionManual,
	}
}

// CrearCompletaRequest creates a situation together with its optional
// obstruction block and responder rosters in one atomic call.
type CrearCompletaRequest struct {
	Titulo           string      `json:"titulo" validate:"required"`
	TipoEmergenciaID int64       `json:"tipo_emergencia_id" validate:"required"`
	Importancia      Importancia `json:"importancia" validate:"omitempty,importancia"`
	RutaID           *int64      `json:"ruta_id"`
	KmInicio         *float64    `json:"km_inicio"`
	KmFin            *float64    `json:"km_fin"`
	Sentido          Sentido     `json:"sentido" validate:"omitempty,sentido"`
	Descripcion      string      `json:"descripcion"`

	Obstruccion *ObstruccionInput `json:"obstruccion"`
	Autoridades []ResponderEntry  `json:"autoridades"`
	Socorro     []ResponderEntry  `json:"socorro"`
}

// ActualizarCompletaRequest merges partial fields; nil leaves a field
// untouched. The obstruction block, when present, replaces the stored one
// wholesale.
type ActualizarCompletaRequest struct {
	Titulo      *string      `json:"titulo"`
	Importancia *Importancia `json:"importancia" validate:"omitempty,importancia"`
	KmInicio    *float64     `json:"km_inicio"`
	KmFin       *float64     `json:"km_fin"`
	Sentido     *Sentido     `json:"sentido" validate:"omitempty,sentido"`
	Descripcion *string      `json:"descripcion"`

	Obstruccion *ObstruccionInput `json:"obstruccion"`
	Autoridades []ResponderEntry  `json:"autoridades"`
	Socorro     []ResponderEntry  `json:"socorro"`
}

type AsignarUnidadRequest struct {
	UnidadID      int64  `json:"unidad_id" validate:"required"`
	Observaciones string `json:"observaciones_asignacion"`
}

type DesasignarUnidadRequest struct {
	Observaciones string `json:"observaciones_desasignacion"`
}

type AgregarActualizacionRequest struct {
	UnidadID  int64  `json:"unidad_id" validate:"required"`
	Tipo      string `json:"tipo_actualizacion" validate:"required"`
	Contenido string `json:"contenido"`
}

// FiltroSituaciones narrows the unpaged list.
type FiltroSituaciones struct {
	Estado      EstadoSituacion
	Importancia Importancia
	RutaID      *int64
	Limit       int
	Offset      int
}
