package api

import (
	"time"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
	"github.com/dhimarketer/newDirReact-sub000/pkg/kinship"
	"github.com/dhimarketer/newDirReact-sub000/pkg/layout"
)

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Persons       []family.Person       `json:"persons"`
	Relationships []family.Relationship `json:"relationships"`
	// SecondPass requests grandparent/grandchild detection from the
	// age heuristic.
	SecondPass bool `json:"second_pass,omitempty"`
}

// ClassifyResponse is the body of a successful classification.
type ClassifyResponse struct {
	Classification *kinship.Classification `json:"classification"`
}

// LayoutRequest is the body of POST /layout.
type LayoutRequest struct {
	Persons       []family.Person       `json:"persons"`
	Relationships []family.Relationship `json:"relationships"`
	Width         float64               `json:"width,omitempty"`
	SecondPass    bool                  `json:"second_pass,omitempty"`
}

// LayoutResponse is the body of a successful layout computation.
type LayoutResponse struct {
	Classification *kinship.Classification `json:"classification"`
	Layout         *layout.Result          `json:"layout"`
	Cached         bool                    `json:"cached"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
	CacheSize int       `json:"cache_size"`
}

// ErrorResponse is the body of any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
