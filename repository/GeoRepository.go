package repository

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"

	"valuation/models"
)

//go:embed data/geo_hierarchy.yaml
var defaultHierarchy []byte

// GeoRepository serves child lookups of the static state hierarchy. Lookups are cached by
// parent path; the hierarchy itself never changes after load.
type GeoRepository struct {
	hierarchy models.GeoHierarchy
	cache     *cache.Cache
}

// LoadGeoHierarchy decodes a YAML hierarchy and rejects empty or duplicated names.
func LoadGeoHierarchy(r io.Reader) (models.GeoHierarchy, error) {
	var h models.GeoHierarchy
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&h); err != nil {
		return h, fmt.Errorf("decode geo hierarchy: %w", err)
	}
	if len(h.States) == 0 {
		return h, fmt.Errorf("geo hierarchy has no states")
	}
	seen := map[string]bool{}
	for _, s := range h.States {
		if err := checkName(seen, s.Name); err != nil {
			return h, err
		}
		for _, d := range s.Districts {
			if err := checkName(seen, s.Name, d.Name); err != nil {
				return h, err
			}
			for _, m := range d.Mandals {
				if err := checkName(seen, s.Name, d.Name, m.Name); err != nil {
					return h, err
				}
			}
		}
	}
	return h, nil
}

func checkName(seen map[string]bool, path ...string) error {
	last := path[len(path)-1]
	if strings.TrimSpace(last) == "" {
		return fmt.Errorf("empty name under %q", strings.Join(path[:len(path)-1], "/"))
	}
	key := cacheKey(path...)
	if seen[key] {
		return fmt.Errorf("duplicate entry %q", strings.Join(path, "/"))
	}
	seen[key] = true
	return nil
}

// NewGeoRepository builds a repository over h with cached lookups living for ttl.
func NewGeoRepository(h models.GeoHierarchy, ttl time.Duration) *GeoRepository {
	return &GeoRepository{hierarchy: h, cache: cache.New(ttl, 2*ttl)}
}

// NewDefaultGeoRepository loads the hierarchy shipped with the binary.
func NewDefaultGeoRepository(ttl time.Duration) (*GeoRepository, error) {
	h, err := LoadGeoHierarchy(strings.NewReader(string(defaultHierarchy)))
	if err != nil {
		return nil, err
	}
	return NewGeoRepository(h, ttl), nil
}

func cacheKey(path ...string) string {
	return strings.Join(path, "\x1f")
}

func (g *GeoRepository) cached(key string, build func() []string) []string {
	if v, ok := g.cache.Get(key); ok {
		return append([]string{}, v.([]string)...)
	}
	out := build()
	g.cache.Set(key, out, cache.DefaultExpiration)
	return append([]string{}, out...)
}

func (g *GeoRepository) States() []string {
	return g.cached("states", func() []string {
		out := make([]string, 0, len(g.hierarchy.States))
		for _, s := range g.hierarchy.States {
			out = append(out, s.Name)
		}
		return out
	})
}

func (g *GeoRepository) Districts(state string) []string {
	return g.cached(cacheKey("d", state), func() []string {
		out := []string{}
		if s := g.state(state); s != nil {
			for _, d := range s.Districts {
				out = append(out, d.Name)
			}
		}
		return out
	})
}

func (g *GeoRepository) Mandals(state, district string) []string {
	return g.cached(cacheKey("m", state, district), func() []string {
		out := []string{}
		if d := g.district(state, district); d != nil {
			for _, m := range d.Mandals {
				out = append(out, m.Name)
			}
		}
		return out
	})
}

func (g *GeoRepository) Villages(state, district, mandal string) []string {
	return g.cached(cacheKey("v", state, district, mandal), func() []string {
		if d := g.district(state, district); d != nil {
			for _, m := range d.Mandals {
				if m.Name == mandal {
					return append([]string{}, m.Villages...)
				}
			}
		}
		return []string{}
	})
}

// Flush drops every cached lookup.
func (g *GeoRepository) Flush() {
	g.cache.Flush()
}

func (g *GeoRepository) state(name string) *models.GeoState {
	for i := range g.hierarchy.States {
		if g.hierarchy.States[i].Name == name {
			return &g.hierarchy.States[i]
		}
	}
	return nil
}

func (g *GeoRepository) district(state, name string) *models.GeoDistrict {
	s := g.state(state)
	if s == nil {
		return nil
	}
	for i := range s.Districts {
		if s.Districts[i].Name == name {
			return &s.Districts[i]
		}
	}
	return nil
}
