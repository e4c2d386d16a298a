package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vincentbai/domtrace-agent/internal/database"
	"github.com/vincentbai/domtrace-agent/internal/dom"
	"github.com/vincentbai/domtrace-agent/internal/models"
	"github.com/vincentbai/domtrace-agent/internal/serialize"
)

type Server struct {
	db        *database.Database
	address   string
	sessionID string
	logger    *slog.Logger
	server    *http.Server
}

func NewServer(db *database.Database, address, sessionID string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:        db,
		address:   address,
		sessionID: sessionID,
		logger:    logger,
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok"))
}

func (s *Server) handleEvents(w http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var batch models.Batch
	if err := json.NewDecoder(request.Body).Decode(&batch); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if len(batch.Events) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	records := serializeBatch(batch)
	if err := s.db.InsertRecords(s.sessionID, records); err != nil {
		s.logger.Error("failed to store records", "error", err, "count", len(records))
		http.Error(w, "Failed to store events", http.StatusInternalServerError)
		return
	}
	s.logger.Debug("stored records", "count", len(records))
	w.WriteHeader(http.StatusNoContent) // success, no body
}

// serializeBatch runs each captured event through the serializer, wiring
// the envelope's selection snapshot in as the ambient selection.
func serializeBatch(batch models.Batch) []models.StoredRecord {
	records := make([]models.StoredRecord, 0, len(batch.Events))
	for i := range batch.Events {
		captured := &batch.Events[i]
		serializer := serialize.New(dom.StaticSelection(captured.Selection))
		records = append(records, models.StoredRecord{
			TSUTC:  captured.TSUTC,
			TSISO:  captured.TSISO,
			URL:    captured.URL,
			Title:  captured.Title,
			Type:   captured.Event.Type,
			Record: serializer.SerializeEvent(&captured.Event),
		})
	}
	return records
}

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/events", s.handleEvents)
	return mux
}

func (s *Server) Start() error {
	mux := s.setupRoutes()
	s.server = &http.Server{
		Addr:         s.address,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("DOMTrace agent listening", "address", s.address, "session_id", s.sessionID)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdownChannel
	s.logger.Info("shutting down server")

	shutdownContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownContext); err != nil {
		return err
	}

	s.logger.Info("server exited")
	return nil
}
