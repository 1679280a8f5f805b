package domain

import (
	"fmt"

	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

// EventoEstado is a requested lifecycle transition.
type EventoEstado string

const (
	EventoPausar    EventoEstado = "pausar"
	EventoReactivar EventoEstado = "reactivar"
	EventoFinalizar EventoEstado = "finalizar"
)

// Transicion applies an event to the current state and returns the new
// state. Illegal moves fail with ErrTransicionInvalida naming the current
// state and the requested event. FINALIZADA is terminal.
func Transicion(desde EstadoSituacion, evento EventoEstado) (EstadoSituacion, error) {
	switch {
	case desde == EstadoActiva && evento == EventoPausar:
		return EstadoEnPausa, nil
	case desde == EstadoEnPausa && evento == EventoReactivar:
		return EstadoActiva, nil
	case desde == EstadoActiva && evento == EventoFinalizar:
		return EstadoFinalizada, nil
	case desde == EstadoEnPausa && evento == EventoFinalizar:
		return EstadoFinalizada, nil
	}
	return "", fmt.Errorf("estado %s no admite evento %s: %w", desde, evento, e.ErrTransicionInvalida)
}
