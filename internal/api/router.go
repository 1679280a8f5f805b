package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Yorfad/PROVIAL-sub003/internal/api/handlers/http/situaciones"
	"github.com/Yorfad/PROVIAL-sub003/internal/api/handlers/http/system"
	"github.com/Yorfad/PROVIAL-sub003/internal/config"
	"github.com/Yorfad/PROVIAL-sub003/internal/middleware"
	"github.com/Yorfad/PROVIAL-sub003/internal/notify"
	"github.com/Yorfad/PROVIAL-sub003/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *notify.Hub) *Server {
	situacionesHandler := situaciones.NewHandler(logger, svc.SituacionService, svc.AsignacionService, svc.CatalogoService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, situacionesHandler, systemHandler, hub, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, situacionesHandler *situaciones.Handler, systemHandler *system.Handler, hub *notify.Hub, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/situaciones-persistentes", func(sr chi.Router) {
			sr.Use(middleware.CallerActor)
			sr.Use(middleware.Limit(cfg.Http, logger))

			sr.Post("/completa", situacionesHandler.Crear)
			sr.Get("/", situacionesHandler.List)
			sr.Get("/activas", situacionesHandler.ListActivas)

			sr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", situacionesHandler.Get)
				ir.Put("/completa", situacionesHandler.Actualizar)

				ir.Post("/pausar", situacionesHandler.Pausar)
				ir.Post("/reactivar", situacionesHandler.Reactivar)
				ir.Post("/finalizar", situacionesHandler.Finalizar)

				ir.Post("/asignar-unidad", situacionesHandler.Asignar)
				ir.Delete("/desasignar-unidad/{unidadId}", situacionesHandler.Desasignar)
				ir.Get("/asignaciones", situacionesHandler.AsignacionesActivas)
				ir.Get("/asignaciones/historial", situacionesHandler.AsignacionesHistorial)

				ir.Post("/actualizaciones", situacionesHandler.AgregarActualizacion)
				ir.Get("/actualizaciones", situacionesHandler.Actualizaciones)
			})
		})

		api.Route("/catalogos", func(cr chi.Router) {
			cr.Get("/tipos-emergencia", situacionesHandler.TiposEmergencia)
		})

		api.Get("/eventos/ws", hub.HandleWS)

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
