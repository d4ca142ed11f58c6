// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-base-url external base URL used for self links
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-version application version reported by /api/version
//	-metrics-path prometheus scrape path
//	-metrics-disabled turn off the metrics middleware and endpoint
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var version string
	var metricsPath string
	var metricsDisabled bool

	fs := flag.NewFlagSet("customers-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&baseURL, "base-url", "", "External base URL for self links")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&metricsPath, "metrics-path", "", "Prometheus scrape path")
	fs.BoolVar(&metricsDisabled, "metrics-disabled", false, "Disable prometheus metrics")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFlags, err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			BaseURL:         baseURL,
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Metrics: Metrics{
			Disabled: metricsDisabled,
			Path:     metricsPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
