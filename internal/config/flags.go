package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a partial
// [StructuredConfig]. Flags that are not given leave their fields zero so
// they do not shadow the other sources during the merge.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("call-recorder", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var redisAddress, redisPassword string
	var redisDB int
	var tokenSignKey, tokenIssuer, hashKey string
	var flyRegion, primaryRegion, logLevel string
	var idempotencyTTL, requestTimeout, submitRateWindow time.Duration
	var maxBodyBytes int64
	var submitRateLimit int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (postgres://... or sqlite://...)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address for idempotency replay")
	fs.StringVar(&redisPassword, "redis-password", "", "Redis password")
	fs.IntVar(&redisDB, "redis-db", 0, "Redis database number")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.StringVar(&hashKey, "hash-key", "", "Idempotency key hash key")
	fs.StringVar(&flyRegion, "fly-region", "", "Region of this instance")
	fs.StringVar(&primaryRegion, "primary-region", "", "Region owning the writable database")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&idempotencyTTL, "idempotency-ttl", 0, "How long remembered responses are replayed (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum submitted body size in bytes")
	fs.IntVar(&submitRateLimit, "submit-rate-limit", 0, "Submissions allowed per IP per window")
	fs.DurationVar(&submitRateWindow, "submit-rate-window", 0, "Submission rate limit window (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			HashKey:        hashKey,
			FlyRegion:      flyRegion,
			PrimaryRegion:  primaryRegion,
			IdempotencyTTL: idempotencyTTL,
			LogLevel:       logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address:  redisAddress,
				Password: redisPassword,
				DB:       redisDB,
			},
		},
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			RequestTimeout:   requestTimeout,
			MaxBodyBytes:     maxBodyBytes,
			SubmitRateLimit:  submitRateLimit,
			SubmitRateWindow: submitRateWindow,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
