package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable
// of its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaller interface. If the
// TypedConfig already holds a Config of the decoded type, fields missing
// from data keep their current values. A missing type keeps the current
// type.
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config", t)
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = config

	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type. Both the Config and its Type are returned. Decoding
// starts from a copy of current.Config when it has the decoded type and
// from the zero Config otherwise.
func unmarshalConfig(data []byte, typeJSONField, valueJSONField string,
	current *TypedConfig) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: %w", err)
	}

	var typeName Type
	if raw, ok := m[typeJSONField]; ok {
		if err := json.Unmarshal(raw, &typeName); err != nil {
			return nil, "", fmt.Errorf("unmarshalConfig: could not read "+
				"type: %w", err)
		}
	} else if current != nil && current.Config != nil {
		typeName = current.Type
	} else {
		return nil, "", fmt.Errorf("unmarshalConfig: missing field %q",
			typeJSONField)
	}

	ty, found := registeredTypes[typeName]
	if !found {
		return nil, "", fmt.Errorf("unmarshalConfig: no config registered "+
			"for type %q", typeName)
	}

	value := reflect.New(ty)
	if current != nil && current.Config != nil &&
		reflect.TypeOf(current.Config) == ty {
		value.Elem().Set(reflect.ValueOf(current.Config))
	}
	if raw, ok := m[valueJSONField]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return nil, "", fmt.Errorf("unmarshalConfig: %w", err)
		}
	}
	concreteValue := value.Elem().Interface().(Config)

	return concreteValue, typeName, nil
}

// CreateAgent validates the typed Config and creates its agent
func (t TypedConfig) CreateAgent(seed uint64) (Agent, error) {
	if t.Config == nil {
		return nil, fmt.Errorf("createAgent: no config for type %v", t.Type)
	}
	if err := t.Config.Validate(); err != nil {
		return nil, fmt.Errorf("createAgent: %w", err)
	}
	return t.Config.CreateAgent(seed)
}
