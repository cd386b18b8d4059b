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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a authority listen address in format [host]:[port]
//	-u authority base URL used by the sync agent
//	-d database DSN
//	-driver database driver (sqlite3 or postgres)
//	-c/-config json file path with configs
//	-machine-id registration device id
//	-center-id registration center id
//	-language fallback language code
//	-log-file sync agent log file
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "5m")
//	-request-timeout outbound request timeout (e.g., "30s")
//	-server-timeout inbound request timeout (e.g., "30s")
//	-sync-path sync endpoint path
//	-batch-count full-mode batch cap
//	-retry-attempts total tries per sync attempt
//	-retry-backoff delay between tries (e.g., "1s")
//	-sync-interval scheduled sync period (e.g., "5m")
//	-keyring recipient keyring JSON path
//	-recipient-key default recipient public key (base64)
//	-private-key authority private key (base64)
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		requestTimeout time.Duration
	)

	fs := flag.NewFlagSet("packet-sync", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Authority listen address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "u", "", "Authority base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (sqlite3, postgres)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.MachineID, "machine-id", "", "Registration device id")
	fs.StringVar(&cfg.App.CenterID, "center-id", "", "Registration center id")
	fs.StringVar(&cfg.App.Language, "language", "", "Fallback language code")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "server-timeout", 0, "Inbound request timeout (e.g., 30s)")
	fs.StringVar(&cfg.Adapter.SyncPath, "sync-path", "", "Sync endpoint path")
	fs.IntVar(&cfg.Sync.BatchCount, "batch-count", 0, "Packets per full sync batch")
	fs.IntVar(&cfg.Sync.RetryMaxAttempts, "retry-attempts", 0, "Total tries per sync attempt")
	fs.DurationVar(&cfg.Sync.RetryBackoff, "retry-backoff", 0, "Delay between tries (e.g., 1s)")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Scheduled sync period (e.g., 5m)")
	fs.StringVar(&cfg.Crypto.KeyringPath, "keyring", "", "Recipient keyring JSON path")
	fs.StringVar(&cfg.Crypto.RecipientPublicKey, "recipient-key", "", "Default recipient public key")
	fs.StringVar(&cfg.Crypto.PrivateKey, "private-key", "", "Authority private key")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Adapter.RequestTimeout = requestTimeout

	return &cfg, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
