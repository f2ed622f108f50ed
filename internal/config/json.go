package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations accept either Go duration strings ("30s")
// or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		HashKey        string   `json:"hash_key"`
		FlyRegion      string   `json:"fly_region"`
		PrimaryRegion  string   `json:"primary_region"`
		IdempotencyTTL Duration `json:"idempotency_ttl"`
		LogLevel       string   `json:"log_level"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		MaxBodyBytes     int64    `json:"max_body_bytes"`
		SubmitRateLimit  int      `json:"submit_rate_limit"`
		SubmitRateWindow Duration `json:"submit_rate_window"`
	} `json:"server,omitempty"`
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
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			HashKey:        jsonCfg.App.HashKey,
			FlyRegion:      jsonCfg.App.FlyRegion,
			PrimaryRegion:  jsonCfg.App.PrimaryRegion,
			IdempotencyTTL: time.Duration(jsonCfg.App.IdempotencyTTL),
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:     jsonCfg.Server.MaxBodyBytes,
			SubmitRateLimit:  jsonCfg.Server.SubmitRateLimit,
			SubmitRateWindow: time.Duration(jsonCfg.Server.SubmitRateWindow),
		},
	}

	return cfg, nil
}

// Duration is a [time.Duration] that unmarshals from JSON strings or numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
