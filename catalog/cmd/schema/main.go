// Command schema exports the modifier catalog for presentation clients: the
// JSON schema of catalog.Document and the validated default catalog, which
// can be narrowed to the definitions drawable on one board side.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"tictacpro/catalog"
	"tictacpro/geometry"

	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog/log"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to write the JSON schema")
	catalogPath := flag.String("catalog", "", "Path to write the catalog document")
	side := flag.Int("side", 0, "Only export definitions drawn on this board side")
	flag.Parse()

	if *schemaPath == "" && *catalogPath == "" {
		log.Fatal().Msg("-schema or -catalog is required")
	}

	doc, err := export(catalog.Default(), *side)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog export failed")
	}
	if *schemaPath != "" {
		if err := writeJSON(*schemaPath, buildSchema(doc)); err != nil {
			log.Fatal().Err(err).Msg("failed to write schema")
		}
	}
	if *catalogPath != "" {
		if err := writeJSON(*catalogPath, doc); err != nil {
			log.Fatal().Err(err).Msg("failed to write catalog")
		}
	}
	log.Info().Msgf("exported %d effects and %d obstacles", len(doc.Effects), len(doc.Obstacles))
}

func buildSchema(doc catalog.Document) *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(catalog.Document))
	schema.Title = "TicTacPro Modifier Catalog"
	schema.Description = fmt.Sprintf("Effects and obstacles that shape each round (%d effects, %d obstacles)",
		len(doc.Effects), len(doc.Obstacles))
	return schema
}

// export copies the catalog into a document. A positive side keeps only the
// definitions eligible on that board, and the subset is validated again.
func export(c *catalog.Catalog, side int) (catalog.Document, error) {
	doc := c.Document()
	if side > 0 {
		b, err := geometry.New(side, geometry.DefaultRunLength(side))
		if err != nil {
			return catalog.Document{}, err
		}
		hasCenter := b.Center() >= 0
		doc.Effects = catalog.Eligible(doc.Effects, side, hasCenter)
		doc.Obstacles = catalog.Eligible(doc.Obstacles, side, hasCenter)
	}
	if _, err := catalog.New(doc.Effects, doc.Obstacles); err != nil {
		return catalog.Document{}, err
	}
	return doc, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
