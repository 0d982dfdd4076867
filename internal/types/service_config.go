package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Per-type service configuration documents. The service's Type selects
// which struct its Config must decode into; unknown keys are rejected so
// malformed configuration is caught at write time instead of render time.

type ComputeConfig struct {
	Cpu     int    `json:"cpu"`
	Memory  string `json:"memory"`  // e.g. "4GB"
	Scaling string `json:"scaling"` // "auto", "manual"
}

type DatabaseConfig struct {
	Engine   string `json:"engine"` // "postgres", "mysql", etc.
	Size     string `json:"size"`
	Replicas int    `json:"replicas"`
}

type StorageConfig struct {
	Type       string `json:"type"` // "object", "block", "file"
	Redundancy string `json:"redundancy"`
}

type FunctionConfig struct {
	Runtime string `json:"runtime"`
	Memory  string `json:"memory"`
	Timeout int    `json:"timeout"` // seconds
}

type NetworkConfig struct {
	Tier      string `json:"tier"`
	Bandwidth int    `json:"bandwidth"` // MB/s
}

type Web3Config struct {
	Provider string   `json:"provider"`
	Features []string `json:"features"`
}

type SpatialConfig struct {
	Provider string   `json:"provider"`
	Features []string `json:"features"`
}

type Amp3DConfig struct {
	Renderer string `json:"renderer"`
	Quality  string `json:"quality"`
}

var serviceConfigPrototypes = map[string]func() interface{}{
	"compute":  func() interface{} { return &ComputeConfig{} },
	"database": func() interface{} { return &DatabaseConfig{} },
	"storage":  func() interface{} { return &StorageConfig{} },
	"function": func() interface{} { return &FunctionConfig{} },
	"network":  func() interface{} { return &NetworkConfig{} },
	"web3":     func() interface{} { return &Web3Config{} },
	"spatial":  func() interface{} { return &SpatialConfig{} },
	"3d_amp":   func() interface{} { return &Amp3DConfig{} },
}

// KnownServiceType reports whether serviceType has a config schema.
func KnownServiceType(serviceType string) bool {
	_, ok := serviceConfigPrototypes[serviceType]
	return ok
}

// ValidateServiceConfig checks a raw config document against the schema for
// the given service type. An empty document is always valid (the stored
// default is "{}"). The raw bytes are stored untouched, so valid documents
// round-trip exactly.
func ValidateServiceConfig(serviceType string, raw []byte) error {
	proto, ok := serviceConfigPrototypes[serviceType]
	if !ok {
		return fmt.Errorf("unknown service type %q", serviceType)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(proto()); err != nil {
		return fmt.Errorf("invalid %s config: %v", serviceType, err)
	}

	return nil
}
