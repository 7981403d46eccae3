package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	core_port "lvr-storage-service/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	transactionHandler *TransactionHandler,
	presaleHandler *PresaleHandler,
	rentalHandler *RentalHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/transactions", transactionHandler.Search)
		r.Get("/transactions/{recordID}", transactionHandler.GetByID)

		r.Get("/presales", presaleHandler.Search)
		r.Get("/presales/{recordID}", presaleHandler.GetByID)

		r.Get("/rentals", rentalHandler.Search)
		r.Get("/rentals/{recordID}", rentalHandler.GetByID)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
