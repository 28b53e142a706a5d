package config

// schemaJSON is the embedded JSON Schema validating an engine configuration
// document, adapted from the teacher's schema-validation pattern
// (schema/validator.go's compiler.AddResource + Compile flow) but self
// contained — no catalog, no meta-directory, just one resource.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "cache": {
      "type": "object",
      "properties": {
        "ttl_seconds": {"type": "integer", "minimum": 0},
        "capacity": {"type": "integer", "minimum": 0}
      },
      "additionalProperties": false
    },
    "search": {
      "type": "object",
      "properties": {
        "default_limit": {"type": "integer", "minimum": 1},
        "default_max_distance": {"type": "integer", "minimum": 0}
      },
      "additionalProperties": false
    },
    "logging": {
      "type": "object",
      "properties": {
        "level": {"type": "string", "enum": ["debug", "info", "warn", "error"]},
        "console": {"type": "boolean"},
        "file_path": {"type": "string"}
      },
      "additionalProperties": false
    },
    "synonym_packs_dir": {"type": "string"}
  },
  "additionalProperties": false
}`
