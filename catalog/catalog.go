package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrNotFound  = errors.New("definition not found")
	ErrIntegrity = errors.New("catalog integrity violated")
)

type Kind string

const (
	Effect   Kind = "effect"
	Obstacle Kind = "obstacle"
)

type Category string

const (
	Scoring   Category = "scoring"
	Placement Category = "placement"
	Memory    Category = "memory"
	AIBias    Category = "ai-bias"
	Economy   Category = "economy"
	Wild      Category = "wild"
)

// ParamKind tells how a definition's Parameter is read.
type ParamKind string

const (
	None        ParamKind = "none"
	Points      ParamKind = "points"
	Multiplier  ParamKind = "multiplier"
	Probability ParamKind = "probability"
	Duration    ParamKind = "duration" // milliseconds
	Fraction    ParamKind = "fraction"
)

var idPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Definition is one immutable catalog entry.
type Definition struct {
	ID             string    `json:"id" jsonschema:"title=Definition ID,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Kind           Kind      `json:"kind" jsonschema:"enum=effect,enum=obstacle,required"`
	Name           string    `json:"name" jsonschema:"title=Display name,required"`
	Category       Category  `json:"category,omitempty" jsonschema:"enum=scoring,enum=placement,enum=memory,enum=ai-bias,enum=economy,enum=wild"`
	Text           string    `json:"text" jsonschema:"title=Description shown to the player"`
	Parameter      float64   `json:"parameter"`
	ParamKind      ParamKind `json:"paramKind" jsonschema:"enum=none,enum=points,enum=multiplier,enum=probability,enum=duration,enum=fraction,required"`
	Count          int       `json:"count,omitempty" jsonschema:"title=Sample size or threshold,minimum=0"`
	MinSide        int       `json:"minSide,omitempty" jsonschema:"title=Smallest board side the definition is drawn on,minimum=0"`
	RequiresCenter bool      `json:"requiresCenter,omitempty"`
}

// Points returns the parameter as a whole point amount.
func (d Definition) Points() int {
	return int(d.Parameter)
}

func (d Definition) Duration() time.Duration {
	if d.ParamKind != Duration {
		return 0
	}
	return time.Duration(d.Parameter) * time.Millisecond
}

// EligibleOn reports whether the definition may be drawn on a board.
func (d Definition) EligibleOn(side int, hasCenter bool) bool {
	if d.MinSide > 0 && side < d.MinSide {
		return false
	}
	return hasCenter || !d.RequiresCenter
}

func (d Definition) validate() error {
	if !idPattern.MatchString(d.ID) {
		return fmt.Errorf("invalid id %q", d.ID)
	}
	switch d.Kind {
	case Effect:
		if d.Category == "" {
			return fmt.Errorf("effect %q has no category", d.ID)
		}
	case Obstacle:
		if d.Category != "" {
			return fmt.Errorf("obstacle %q must not have a category", d.ID)
		}
	default:
		return fmt.Errorf("definition %q has unknown kind %q", d.ID, d.Kind)
	}
	switch d.ParamKind {
	case None, Points, Duration:
	case Multiplier:
		if d.Parameter <= 0 {
			return fmt.Errorf("multiplier %q must be positive", d.ID)
		}
	case Probability, Fraction:
		if d.Parameter < 0 || d.Parameter > 1 {
			return fmt.Errorf("%s %q must lie in [0, 1]", d.ParamKind, d.ID)
		}
	default:
		return fmt.Errorf("definition %q has unknown parameter kind %q", d.ID, d.ParamKind)
	}
	return nil
}

// Catalog holds the effect and obstacle tables. It is read-only after New.
type Catalog struct {
	effects   []Definition
	obstacles []Definition
	index     map[string]Definition
}

// New validates both tables and indexes them by id.
func New(effects, obstacles []Definition) (*Catalog, error) {
	c := &Catalog{
		effects:   effects,
		obstacles: obstacles,
		index:     make(map[string]Definition, len(effects)+len(obstacles)),
	}
	for _, table := range []struct {
		kind Kind
		defs []Definition
	}{{Effect, effects}, {Obstacle, obstacles}} {
		for _, def := range table.defs {
			if def.Kind != table.kind {
				return nil, fmt.Errorf("%w: %q listed as %s but declared %s", ErrIntegrity, def.ID, table.kind, def.Kind)
			}
			if err := def.validate(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIntegrity, err)
			}
			if _, exists := c.index[def.ID]; exists {
				return nil, fmt.Errorf("%w: duplicate id %q", ErrIntegrity, def.ID)
			}
			c.index[def.ID] = def
		}
	}
	return c, nil
}

// Default returns the built-in catalog. The tables are static, so a failure
// here is a programming error.
func Default() *Catalog {
	c, err := New(effects, obstacles)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

func (c *Catalog) Lookup(id string) (Definition, error) {
	def, ok := c.index[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return def, nil
}

func (c *Catalog) Effects() []Definition {
	return c.effects
}

func (c *Catalog) Obstacles() []Definition {
	return c.obstacles
}

// IDs lists every id of both tables, effects first.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.index))
	for _, def := range c.effects {
		ids = append(ids, def.ID)
	}
	for _, def := range c.obstacles {
		ids = append(ids, def.ID)
	}
	return ids
}

// Eligible filters a table down to the definitions that can be drawn on a board.
func Eligible(defs []Definition, side int, hasCenter bool) []Definition {
	eligible := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if def.EligibleOn(side, hasCenter) {
			eligible = append(eligible, def)
		}
	}
	return eligible
}
