package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations ("120s", "2s").
type StructuredJSONConfig struct {
	Server struct {
		BaseURL string `json:"base_url"`
	} `json:"server,omitempty"`

	Timeouts struct {
		Refresh Duration `json:"refresh"`
		Cookies Duration `json:"cookies"`
		Probe   Duration `json:"probe"`
	} `json:"timeouts,omitempty"`

	Batch struct {
		Delay Duration `json:"delay"`
	} `json:"batch,omitempty"`

	Output struct {
		Dir string `json:"dir"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			BaseURL: jsonCfg.Server.BaseURL,
		},
		Timeouts: Timeouts{
			Refresh: time.Duration(jsonCfg.Timeouts.Refresh),
			Cookies: time.Duration(jsonCfg.Timeouts.Cookies),
			Probe:   time.Duration(jsonCfg.Timeouts.Probe),
		},
		Batch: Batch{
			Delay: time.Duration(jsonCfg.Batch.Delay),
		},
		Output: Output{
			Dir: jsonCfg.Output.Dir,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
