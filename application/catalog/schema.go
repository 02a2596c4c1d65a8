package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/chronolens/pluginhost/domain/entities"
	"github.com/invopop/jsonschema"
)

// EntrySchema returns the JSON Schema (Draft 2020-12) describing catalog
// entries, for the introspection endpoint. Generated by reflecting on the
// HostCapability entity.
func EntrySchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(entities.HostCapability{})

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog entry schema: %w", err)
	}
	return jsonBytes, nil
}
