package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a                 HTTP server address in format [host]:[port]
//	-grpc-address      gRPC health server address in format [host]:[port]
//	-storage           storage driver: mongo, postgres or sqlite
//	-mongo-uri         MongoDB connection string
//	-mongo-db          MongoDB database name
//	-d                 SQL database DSN (postgres URL or sqlite file)
//	-c/-config         JSON file path with configs
//	-version           application version reported by /v1/version
//	-log-level         log level (debug, info, warn, error)
//	-token-sign-key    token signing key
//	-token-issuer      token issuer name
//	-token-duration    token duration (e.g., "1h", "30m")
//	-request-timeout   request timeout (e.g., "30s", "1m")
//	-shutdown-timeout  graceful shutdown timeout
//	-seed              SWIFT codes CSV imported on startup
//	-seed-drop         drop existing data before seeding
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("swift-codes-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver: mongo, postgres or sqlite")
	fs.StringVar(&cfg.Storage.Mongo.URI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&cfg.Storage.Mongo.Database, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&cfg.Workers.SeedCSVPath, "seed", "", "SWIFT codes CSV imported on startup")
	fs.BoolVar(&cfg.Workers.SeedDropExisting, "seed-drop", false, "Drop existing data before seeding")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be in range 0-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
