package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// meshFileSchema renders the JSON Schema of the mesh file layout accepted by
// loadMeshFile and /loadMesh
func meshFileSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&meshFile{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
