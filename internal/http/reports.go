package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/topservice/pesquisas-api/internal/domain"
	"github.com/topservice/pesquisas-api/internal/observability"
	"github.com/topservice/pesquisas-api/internal/repository"
	"github.com/topservice/pesquisas-api/internal/survey"
)

func (s *Server) handleEvaluation(w http.ResponseWriter, r *http.Request) {
	searchID := chi.URLParam(r, "searchID")
	tipo := strings.TrimSpace(r.URL.Query().Get("type"))
	if searchID == "" || tipo == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "searchId e type são obrigatórios")
		return
	}

	items, err := s.matchingItems(r, tipo, searchID)
	if err != nil {
		s.logger.Printf("evaluation query for %s failed: %v", searchID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar avaliação")
		return
	}
	if len(items) == 0 {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Avaliação não encontrada")
		return
	}

	observability.EvaluationsTotal.WithLabelValues(tipo).Inc()
	s.respondJSON(w, http.StatusOK, survey.Evaluate(items, tipo))
}

func (s *Server) handleRatingDistribution(w http.ResponseWriter, r *http.Request) {
	searchID := chi.URLParam(r, "searchID")
	tipo := strings.TrimSpace(r.URL.Query().Get("type"))
	if searchID == "" || tipo == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "searchId e type são obrigatórios")
		return
	}

	items, err := s.matchingItems(r, tipo, searchID)
	if err != nil {
		s.logger.Printf("distribution query for %s failed: %v", searchID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar distribuição")
		return
	}
	if len(items) == 0 {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Nenhum item encontrado para este número de negócio")
		return
	}

	s.respondJSON(w, http.StatusOK, domain.RatingDistribution{
		SearchID:   searchID,
		Tipo:       tipo,
		Categories: survey.DistributionCategories(items),
	})
}

func (s *Server) handleGuestEvaluation(w http.ResponseWriter, r *http.Request) {
	items := s.guestItems(w, r)
	if items == nil {
		return
	}

	observability.EvaluationsTotal.WithLabelValues(domain.TipoConvidados).Inc()
	s.respondJSON(w, http.StatusOK, survey.Evaluate(items, domain.TipoConvidados))
}

func (s *Server) handleGuestDistribution(w http.ResponseWriter, r *http.Request) {
	items := s.guestItems(w, r)
	if items == nil {
		return
	}

	// Guests know their access key, not the business number behind it, so
	// the key is echoed back as the search id.
	s.respondJSON(w, http.StatusOK, domain.RatingDistribution{
		SearchID:   chi.URLParam(r, "key"),
		Tipo:       domain.TipoConvidados,
		Categories: survey.DistributionCategories(items),
	})
}

// guestItems resolves an access key to its matching guest survey items. It
// writes the error response itself and returns nil when the request is done.
func (s *Server) guestItems(w http.ResponseWriter, r *http.Request) []domain.SurveyItem {
	key := chi.URLParam(r, "key")
	if key == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Chave é obrigatória")
		return nil
	}

	record, err := s.repo.Keys.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Chave não encontrada")
			return nil
		}
		s.logger.Printf("resolve access key failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar avaliação")
		return nil
	}

	items, err := s.matchingItems(r, domain.TipoConvidados, record.BusinessNumber)
	if err != nil {
		s.logger.Printf("guest query for key failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar avaliação")
		return nil
	}
	if len(items) == 0 {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Nenhuma avaliação encontrada para esta chave")
		return nil
	}
	return items
}

func (s *Server) handleSupplierSearch(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	supplierType := strings.TrimSpace(r.URL.Query().Get("type"))
	if location == "" || supplierType == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "location e type são obrigatórios")
		return
	}

	kind, ok := survey.SupplierKind(supplierType)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Tipo de fornecedor inválido")
		return
	}

	items, err := s.repo.Items.ListAll(r.Context())
	if err != nil {
		s.logger.Printf("supplier search query failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar fornecedores")
		return
	}

	observability.SupplierSearchesTotal.WithLabelValues(supplierType).Inc()
	s.respondJSON(w, http.StatusOK, domain.SupplierSearchResult{
		Type:     supplierType,
		Location: location,
		Results:  survey.SearchSuppliers(items, location, kind),
	})
}

// matchingItems loads every item of the given tipo whose business number
// equals searchID.
func (s *Server) matchingItems(r *http.Request, tipo, searchID string) ([]domain.SurveyItem, error) {
	all, err := s.repo.Items.ListByTipo(r.Context(), tipo)
	if err != nil {
		return nil, err
	}
	matching := make([]domain.SurveyItem, 0, len(all))
	for _, item := range all {
		if survey.TextValue(item.ColumnValues, survey.FieldNumeroNegocio) == searchID {
			matching = append(matching, item)
		}
	}
	return matching, nil
}
