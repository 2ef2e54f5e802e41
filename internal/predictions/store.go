package predictions

import (
	"fmt"
	"math"
	"strings"

	"projection-engine/internal/model"
)

// Catalog resolves named predictions. Implementations are read-only once
// loaded and safe for concurrent use.
type Catalog interface {
	Lookup(name string) (model.Prediction, bool)
	Names() []string
}

// Store is an in-memory Catalog that keeps the load order.
type Store struct {
	byName map[string]model.Prediction
	order  []string
}

var _ Catalog = (*Store)(nil)

func NewStore(preds []model.Prediction) (*Store, error) {
	s := &Store{
		byName: make(map[string]model.Prediction, len(preds)),
		order:  make([]string, 0, len(preds)),
	}
	for i, p := range preds {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("prediction %d: name is empty", i)
		}
		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("prediction %q: duplicate name", p.Name)
		}
		if !(p.TargetPrice > 0) || math.IsInf(p.TargetPrice, 0) {
			return nil, fmt.Errorf("prediction %q: target price must be positive, got %v", p.Name, p.TargetPrice)
		}
		s.byName[p.Name] = p
		s.order = append(s.order, p.Name)
	}
	return s, nil
}

func (s *Store) Lookup(name string) (model.Prediction, bool) {
	p, ok := s.byName[strings.TrimSpace(name)]
	return p, ok
}

// Names returns prediction names in load order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// All returns the predictions in load order.
func (s *Store) All() []model.Prediction {
	out := make([]model.Prediction, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

func (s *Store) Len() int { return len(s.order) }
