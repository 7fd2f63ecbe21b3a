package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type JSONSettings struct {
	Discovery struct {
		EndpointEnvVar string   `json:"endpoint_env_var"`
		EndpointFile   string   `json:"endpoint_file"`
		PollInterval   Duration `json:"poll_interval"`
		Timeout        Duration `json:"timeout"`
	} `json:"discovery,omitempty"`

	Request struct {
		Timeout   Duration `json:"timeout"`
		Transport string   `json:"transport"`
	} `json:"request,omitempty"`

	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonSettings JSONSettings
	if err := json.NewDecoder(jsonFile).Decode(&jsonSettings); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	settings := &Settings{
		Discovery: Discovery{
			EndpointEnvVar: jsonSettings.Discovery.EndpointEnvVar,
			EndpointFile:   jsonSettings.Discovery.EndpointFile,
			PollInterval:   time.Duration(jsonSettings.Discovery.PollInterval),
			Timeout:        time.Duration(jsonSettings.Discovery.Timeout),
		},
		Request: Request{
			Timeout:   time.Duration(jsonSettings.Request.Timeout),
			Transport: jsonSettings.Request.Transport,
		},
		App: App{
			LogLevel: jsonSettings.App.LogLevel,
		},
		JSONFilePath: "",
	}

	return settings, nil
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
