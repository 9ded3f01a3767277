package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasnorm/naming"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type propertyNamesInput struct {
	Names []string `json:"names" jsonschema:"Raw schema property names to convert"`
}

type propertyName struct {
	Name         string `json:"name"`
	PropertyName string `json:"property_name"`
	Changed      bool   `json:"changed"`
}

type propertyNamesOutput struct {
	Count   int            `json:"count"`
	Changed int            `json:"changed"`
	Names   []propertyName `json:"names,omitempty"`
}

func handlePropertyNames(_ context.Context, _ *mcp.CallToolRequest, input propertyNamesInput) (*mcp.CallToolResult, propertyNamesOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names must contain at least one entry")), propertyNamesOutput{}, nil
	}
	if len(input.Names) > cfg.MaxNames {
		return errResult(fmt.Errorf("%d names exceeds maximum %d; set OASNORM_MAX_NAMES to increase",
			len(input.Names), cfg.MaxNames)), propertyNamesOutput{}, nil
	}

	var gen naming.PropertyNameGenerator = naming.OriginalPropertyNameGenerator{}
	output := propertyNamesOutput{
		Count: len(input.Names),
		Names: makeSlice[propertyName](len(input.Names)),
	}
	for _, raw := range input.Names {
		generated := gen.Generate(raw)
		changed := generated != raw
		if changed {
			output.Changed++
		}
		output.Names = append(output.Names, propertyName{Name: raw, PropertyName: generated, Changed: changed})
	}
	return nil, output, nil
}
