package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type SettingsJSON struct {
	Client struct {
		Endpoints   []string `json:"endpoints"`
		User        string   `json:"user"`
		Password    string   `json:"password"`
		DialTimeout Duration `json:"dial_timeout"`
		LazyInit    bool     `json:"lazy_init"`
	} `json:"client,omitempty"`

	Probe struct {
		Service string   `json:"service"`
		Timeout Duration `json:"timeout"`
	} `json:"probe,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonSettings SettingsJSON
	if err := json.NewDecoder(jsonFile).Decode(&jsonSettings); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	settings := &Settings{
		Client: Client{
			Endpoints:   jsonSettings.Client.Endpoints,
			User:        jsonSettings.Client.User,
			Password:    jsonSettings.Client.Password,
			DialTimeout: time.Duration(jsonSettings.Client.DialTimeout),
			LazyInit:    jsonSettings.Client.LazyInit,
		},
		Probe: Probe{
			Service: jsonSettings.Probe.Service,
			Timeout: time.Duration(jsonSettings.Probe.Timeout),
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
