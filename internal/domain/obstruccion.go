package domain

import (
	"fmt"
	"strings"

	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

type TipoObstruccion string

const (
	ObstruccionNinguna      TipoObstruccion = "ninguna"
	ObstruccionParcial      TipoObstruccion = "parcial"
	ObstruccionTotalSentido TipoObstruccion = "total_sentido"
	ObstruccionTotalAmbos   TipoObstruccion = "total_ambos"
)

// CarrilObstruccion is one travel lane with its blocked percentage.
type CarrilObstruccion struct {
	Nombre     string `json:"nombre"`
	Porcentaje int    `json:"porcentaje"` // 0..100
}

// GrupoCarriles is the lane detail for one direction of travel.
type GrupoCarriles struct {
	CantidadCarriles int                 `json:"cantidad_carriles"`
	Carriles         []CarrilObstruccion `json:"carriles"`
}

// Obstruccion captures how much of the roadway a situation blocks.
// Descripcion is derived: it is recomputed from the source fields on every
// read and write and is never accepted from clients.
type Obstruccion struct {
	HayVehiculoFueraVia bool            `json:"hay_vehiculo_fuera_via"`
	Tipo                TipoObstruccion `json:"tipo_obstruccion"`
	SentidoPrincipal    *GrupoCarriles  `json:"sentido_principal,omitempty"`
	SentidoContrario    *GrupoCarriles  `json:"sentido_contrario,omitempty"`
	DescripcionManual   string          `json:"descripcion_manual,omitempty"`
	Descripcion         string          `json:"descripcion"`
}

type ClaseCarril int

const (
	CarrilLibre ClaseCarril = iota
	CarrilParcial
	CarrilBloqueado
)

func ClasificarCarril(porcentaje int) ClaseCarril {
	switch {
	case porcentaje <= 0:
		return CarrilLibre
	case porcentaje >= 100:
		return CarrilBloqueado
	default:
		return CarrilParcial
	}
}

// Validar enforces the structural invariant: parcial requires lane detail in
// at least one direction; total and ninguna variants carry none. Lane arrays
// supplied with a total variant are accepted and ignored.
func (o *Obstruccion) Validar() error {
	switch o.Tipo {
	case "", ObstruccionNinguna, ObstruccionTotalSentido, ObstruccionTotalAmbos:
		return nil
	case ObstruccionParcial:
		if grupoTieneCarriles(o.SentidoPrincipal) || grupoTieneCarriles(o.SentidoContrario) {
			for _, g := range []*GrupoCarriles{o.SentidoPrincipal, o.SentidoContrario} {
				if g == nil {
					continue
				}
				for _, c := range g.Carriles {
					if c.Porcentaje < 0 || c.Porcentaje > 100 {
						return fmt.Errorf("porcentaje de carril %q fuera de rango: %w", c.Nombre, e.ErrValidation)
					}
				}
			}
			return nil
		}
		return fmt.Errorf("obstruccion parcial sin carriles: %w", e.ErrValidation)
	}
	return fmt.Errorf("tipo_obstruccion %q desconocido: %w", o.Tipo, e.ErrValidation)
}

func grupoTieneCarriles(g *GrupoCarriles) bool {
	return g != nil && len(g.Carriles) > 0
}

// Describir derives the human-readable blockage description. It is pure and
// deterministic: the same input always yields a byte-identical string.
// sentidoSituacion is the situation's direction, used for total_sentido
// which carries no lane detail of its own.
func (o *Obstruccion) Describir(sentidoSituacion Sentido) string {
	switch o.Tipo {
	case ObstruccionTotalAmbos:
		desc := "Obstruccion total de ambos sentidos (via cerrada)"
		if o.DescripcionManual != "" {
			desc += ". " + o.DescripcionManual
		}
		return desc

	case ObstruccionTotalSentido:
		sentido := "principal"
		if sentidoSituacion != "" {
			sentido = string(sentidoSituacion)
		}
		desc := "Obstruccion total del sentido " + sentido
		if o.DescripcionManual != "" {
			desc += ". " + o.DescripcionManual
		}
		return desc

	case ObstruccionParcial:
		var grupos []string
		if grupoTieneCarriles(o.SentidoPrincipal) {
			grupos = append(grupos, "Sentido principal: "+describirGrupo(o.SentidoPrincipal))
		}
		if grupoTieneCarriles(o.SentidoContrario) {
			grupos = append(grupos, "Sentido contrario: "+describirGrupo(o.SentidoContrario))
		}
		desc := strings.Join(grupos, "; ")
		if desc == "" {
			desc = "Obstruccion parcial sin carriles especificados"
		}
		if o.HayVehiculoFueraVia {
			desc += ". Ademas, vehiculo fuera de la via"
		}
		return desc

	default: // ninguna or unknown
		if o.HayVehiculoFueraVia {
			return "Vehiculo fuera de la via"
		}
		return "Sin obstruccion de via"
	}
}

func describirGrupo(g *GrupoCarriles) string {
	partes := make([]string, 0, len(g.Carriles))
	for _, c := range g.Carriles {
		switch ClasificarCarril(c.Porcentaje) {
		case CarrilLibre:
			partes = append(partes, c.Nombre+" libre")
		case CarrilBloqueado:
			partes = append(partes, c.Nombre+" totalmente bloqueado")
		default:
			partes = append(partes, fmt.Sprintf("%s bloqueado al %d%%", c.Nombre, c.Porcentaje))
		}
	}
	return strings.Join(partes, ", ")
}

// NombresCarriles returns the conventional lane names for a direction with
// n lanes, as patrol operators report them.
func NombresCarriles(n int, sentido string) []string {
	switch n {
	case 1:
		if sentido == "" {
			sentido = "el sentido"
		}
		return []string{"Carril hacia " + sentido}
	case 2:
		return []string{"Carril izquierdo", "Carril derecho"}
	case 3:
		return []string{"Carril izquierdo", "Carril central", "Carril derecho"}
	case 4:
		return []string{"Carril izquierdo", "Carril central izquierdo", "Carril central derecho", "Carril derecho"}
	case 5:
		return []string{"Carril izquierdo", "Carril central izquierdo", "Carril central", "Carril central derecho", "Carril derecho"}
	default:
		return nil
	}
}
