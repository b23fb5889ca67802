package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
	"github.com/dhimarketer/newDirReact-sub000/pkg/kinship"
	"github.com/dhimarketer/newDirReact-sub000/pkg/logging"
	"github.com/dhimarketer/newDirReact-sub000/pkg/registry"
	"github.com/dhimarketer/newDirReact-sub000/pkg/validation"
)

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validateInput(req.Persons, req.Relationships); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	start := time.Now()
	c := kinship.ClassifyWithOptions(req.Persons, req.Relationships, kinship.Options{SecondPass: req.SecondPass})
	s.metrics.RecordClassification(classifyMode(req.Relationships), "ok", time.Since(start))

	s.logger.Debug("classification computed",
		logging.Operation("classify"),
		logging.Persons(len(req.Persons)),
		logging.Relationships(len(req.Relationships)),
		logging.Latency(time.Since(start)))

	s.respondJSON(w, http.StatusOK, ClassifyResponse{Classification: c})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validateInput(req.Persons, req.Relationships); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	mode := classifyMode(req.Relationships)
	key := registry.Fingerprint(req.Persons, req.Relationships, req.Width)
	if req.SecondPass && mode == "age-gap" {
		// Second pass only changes the age-heuristic result; requests
		// routed to the explicit graph share one cache entry.
		key += ";sp"
	}
	if s.cache != nil {
		if ctx, ok := s.cache.Get(key); ok && ctx.Layout != nil {
			s.metrics.RecordCacheLookup(true, s.cache.Size())
			s.respondJSON(w, http.StatusOK, LayoutResponse{
				Classification: ctx.Classification,
				Layout:         ctx.Layout,
				Cached:         true,
			})
			return
		}
		s.metrics.RecordCacheLookup(false, s.cache.Size())
	}

	start := time.Now()
	c := kinship.ClassifyWithOptions(req.Persons, req.Relationships, kinship.Options{SecondPass: req.SecondPass})
	s.metrics.RecordClassification(mode, "ok", time.Since(start))

	layoutStart := time.Now()
	result := s.engine.Compute(c, req.Width)
	s.metrics.RecordLayout("ok", time.Since(layoutStart), len(result.Nodes))

	if s.cache != nil {
		if err := s.cache.Put(key, &registry.Context{Classification: c, Layout: result}); err != nil {
			s.logger.Warn("failed to cache family context",
				logging.FamilyKey(key), logging.Error(err))
		}
	}

	s.logger.Debug("layout computed",
		logging.Operation("layout"),
		logging.FamilyKey(key),
		logging.Persons(len(req.Persons)),
		logging.Count(len(result.Nodes)),
		logging.Latency(time.Since(start)))

	s.respondJSON(w, http.StatusOK, LayoutResponse{
		Classification: c,
		Layout:         result,
		Cached:         false,
	})
}

func (s *Server) validateInput(persons []family.Person, rels []family.Relationship) error {
	if err := validation.ValidatePersons(persons); err != nil {
		return err
	}
	return validation.ValidateRelationships(rels)
}

// classifyMode labels which inference path a request will take.
func classifyMode(rels []family.Relationship) string {
	for _, r := range rels {
		if _, ok := r.Type.SeniorityDelta(); ok && r.Active {
			return "explicit"
		}
	}
	return "age-gap"
}
