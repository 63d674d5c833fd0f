package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["slides"],
  "properties": {
    "slides": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["slide", "reading_order"],
        "properties": {
          "slide": {"type": "integer", "minimum": 1},
          "reading_order": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["index", "type", "bbox"],
              "properties": {
                "index": {"type": "integer", "minimum": 1},
                "type": {"type": "string"},
                "bbox": {
                  "type": "array",
                  "items": {"type": "number"},
                  "minItems": 4,
                  "maxItems": 4
                }
              }
            }
          }
        }
      }
    },
    "tables": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["num_rows", "num_cols"],
        "properties": {
          "num_rows": {"type": "integer", "minimum": 0},
          "num_cols": {"type": "integer", "minimum": 0},
          "cells": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["row", "col"],
              "properties": {
                "row": {"type": "integer", "minimum": 0},
                "col": {"type": "integer", "minimum": 0},
                "row_span": {"type": "integer", "minimum": 1},
                "col_span": {"type": "integer", "minimum": 1},
                "is_header": {"type": "boolean"}
              }
            }
          }
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("analysis.schema.json", schemaJSON)

// Decode validates raw service output against the analysis schema and
// unmarshals it into a Document.
func Decode(data []byte) (*Document, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing analysis JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("validating analysis JSON: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding analysis JSON: %w", err)
	}
	return &doc, nil
}
