package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	switch t.Kind() {
	case reflect.Ptr:
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "copy_feedback_ms":
				return 2000
			case "error_clear_delay":
				return 10
			case "max_log_files":
				return 1000
			case "request_timeout_seconds":
				return 120
			}
			return 10
		}
	case reflect.Map:
		if t.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"copy_tags": "T",
				"help":      []string{"h", "?"},
			}
		}
	case reflect.String:
		switch fieldName {
		case "base_url":
			return "http://localhost:1234/v1"
		case "clipboard":
			return ClipboardSystem
		case "model":
			return "gemma-3-4b-it-qat"
		case "provider":
			return "openai"
		case "stale_results":
			return "last-write-wins"
		case "theme":
			return "dark"
		default:
			return "example"
		}
	}

	return nil
}
