package config

import (
	"errors"
	"flag"
	"strings"
	"time"
)

// EndpointList holds a list of server endpoints parsed from the command
// line. It implements the flag.Value interface: the flag may be repeated
// and each occurrence may carry several comma-separated endpoints.
type EndpointList []string

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-e/-endpoints server endpoints, comma separated, repeatable
//	-u user name for authentication
//	-p password for authentication
//	-dial-timeout connectivity probe bound (e.g., "5s", "1m")
//	-lazy delay connecting until first use
//	-probe-service health-check service name
//	-probe-timeout health-check probe timeout (e.g., "5s")
//	-c/-config json file path with settings
func ParseFlags() *Settings {
	var endpoints EndpointList
	var user string
	var password string
	var dialTimeout time.Duration
	var lazyInit bool
	var probeService string
	var probeTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&endpoints, "e", "Server endpoints host:port, comma separated")
	flag.Var(&endpoints, "endpoints", "Server endpoints host:port, comma separated (alias)")
	flag.StringVar(&user, "u", "", "Authentication user")
	flag.StringVar(&password, "p", "", "Authentication password")
	flag.DurationVar(&dialTimeout, "dial-timeout", 0, "Connectivity probe bound (e.g., 5s, 1m)")
	flag.BoolVar(&lazyInit, "lazy", false, "Delay connecting until first use")
	flag.StringVar(&probeService, "probe-service", "", "Health-check service name")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Health-check probe timeout (e.g., 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Settings{
		Client: Client{
			Endpoints:   endpoints,
			User:        user,
			Password:    password,
			DialTimeout: dialTimeout,
			LazyInit:    lazyInit,
		},
		Probe: Probe{
			Service: probeService,
			Timeout: probeTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the canonical comma-separated form of the list.
// If the list is empty, it returns the empty string.
func (e *EndpointList) String() string {
	if e == nil || len(*e) == 0 {
		return ""
	}

	return strings.Join(*e, ",")
}

// Set parses a comma-separated endpoint list, trims each element, and
// appends the result. It rejects elements that are blank after trimming,
// leaving the list unmodified.
func (e *EndpointList) Set(s string) error {
	parts := strings.Split(s, ",")

	trimmed := make([]string, 0, len(parts))
	for _, part := range parts {
		endpoint := strings.TrimSpace(part)
		if endpoint == "" {
			return errors.New("endpoint must not be blank")
		}
		trimmed = append(trimmed, endpoint)
	}

	*e = append(*e, trimmed...)
	return nil
}
