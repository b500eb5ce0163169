package catalog

// Document is the exported shape of the catalog. Tooling reflects over it to
// produce the JSON schema shipped to presentation clients.
type Document struct {
	Effects   []Definition `json:"effects" jsonschema:"title=Effects,description=Positive round modifiers,required"`
	Obstacles []Definition `json:"obstacles" jsonschema:"title=Obstacles,description=Negative round modifiers drawn on even levels,required"`
}

func (c *Catalog) Document() Document {
	doc := Document{
		Effects:   make([]Definition, len(c.effects)),
		Obstacles: make([]Definition, len(c.obstacles)),
	}
	copy(doc.Effects, c.effects)
	copy(doc.Obstacles, c.obstacles)
	return doc
}
