// Package section decodes a YAML configuration whose sections may list their
// keys in any order, each at most once.
//
//	server:
//	  host: example.com
//	  port: 8443
//	  tls: true
//	  cert: /etc/cert.pem
//	log:
//	  level: debug
package section

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//go:generate go run github.com/sublee/sectiongen/cmd/sectiongen

// Config is a decoded configuration.
type Config struct {
	Server Server
	Log    Log
}

// Server is the decoded server section.
type Server struct {
	Host    string
	Port    int
	Timeout time.Duration
	Cert    string // empty without TLS
}

// Log is the decoded log section.
type Log struct {
	Level string
}

// Decode decodes a configuration document.
func Decode(data []byte) (Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Config{}, err
	}
	if len(root.Content) == 0 {
		return Config{}, errors.New("empty document")
	}

	var doc documentSection
	err := eachKey(root.Content[0], func(key string, val *yaml.Node) error {
		switch key {
		case "server":
			return doc.SetServer(val)
		case "log":
			return doc.SetLog(val)
		}
		return fmt.Errorf("unknown section %q", key)
	})
	if err != nil {
		return Config{}, err
	}

	var cfg Config

	node, err := doc.Server()
	if err != nil {
		return Config{}, err
	}
	if cfg.Server, err = decodeServer(node); err != nil {
		return Config{}, fmt.Errorf("server: %w", err)
	}

	switch node, err := doc.Log(); {
	case errors.Is(err, sectiongenerrors.ErrMissingField):
		cfg.Log = Log{Level: "info"}
	case err != nil:
		return Config{}, err
	default:
		if cfg.Log, err = decodeLog(node); err != nil {
			return Config{}, fmt.Errorf("log: %w", err)
		}
	}

	return cfg, doc.EnsureEmpty()
}

//sectiongen:parser
type documentSection struct {
	server sectiongen.Option[*yaml.Node]
	log    sectiongen.Option[*yaml.Node]
}

type documentSectionError = *sectiongenerrors.FieldError

func (d *documentSection) missingFieldError(field string) documentSectionError {
	return sectiongenerrors.Missing("", field)
}

func (d *documentSection) duplicateFieldError(field string, prior any) documentSectionError {
	return sectiongenerrors.Duplicate("", field, prior)
}

func (d *documentSection) unexpectedFieldError(field string, leftover any) documentSectionError {
	return sectiongenerrors.Unexpected("", field, leftover)
}

//sectiongen:parser
type serverSection struct {
	host    sectiongen.Option[string]
	port    sectiongen.Option[int]
	timeout sectiongen.Option[time.Duration]
	tls     sectiongen.Option[bool]
	cert    sectiongen.Option[string]
}

type serverSectionError = *sectiongenerrors.FieldError

func (s *serverSection) missingFieldError(field string) serverSectionError {
	return sectiongenerrors.Missing("server", field)
}

func (s *serverSection) duplicateFieldError(field string, prior any) serverSectionError {
	return sectiongenerrors.Duplicate("server", field, prior)
}

func (s *serverSection) unexpectedFieldError(field string, leftover any) serverSectionError {
	return sectiongenerrors.Unexpected("server", field, leftover)
}

func decodeServer(node *yaml.Node) (Server, error) {
	var sec serverSection
	err := eachKey(node, func(key string, val *yaml.Node) error {
		switch key {
		case "host":
			return decodeInto(val, sec.SetHost)
		case "port":
			return decodeInto(val, sec.SetPort)
		case "timeout":
			return decodeInto(val, sec.SetTimeout)
		case "tls":
			return decodeInto(val, sec.SetTls)
		case "cert":
			return decodeInto(val, sec.SetCert)
		}
		return fmt.Errorf("unknown key %q", key)
	})
	if err != nil {
		return Server{}, err
	}

	var srv Server
	if srv.Host, err = sec.Host(); err != nil {
		return Server{}, err
	}

	tls, _ := sec.Tls() // unset means no TLS

	srv.Port, err = sec.Port()
	if errors.Is(err, sectiongenerrors.ErrMissingField) {
		srv.Port = 80
		if tls {
			srv.Port = 443
		}
	}

	srv.Timeout, err = sec.Timeout()
	if errors.Is(err, sectiongenerrors.ErrMissingField) {
		srv.Timeout = 30 * time.Second
	}

	// cert is read only with TLS. EnsureEmpty reports a cert without TLS.
	if tls {
		if srv.Cert, err = sec.Cert(); err != nil {
			return Server{}, err
		}
	}

	return srv, sec.EnsureEmpty()
}

//sectiongen:parser
type logSection struct {
	level sectiongen.Option[string]
}

type logSectionError = *sectiongenerrors.FieldError

func (l *logSection) missingFieldError(field string) logSectionError {
	return sectiongenerrors.Missing("log", field)
}

func (l *logSection) duplicateFieldError(field string, prior any) logSectionError {
	return sectiongenerrors.Duplicate("log", field, prior)
}

func (l *logSection) unexpectedFieldError(field string, leftover any) logSectionError {
	return sectiongenerrors.Unexpected("log", field, leftover)
}

func decodeLog(node *yaml.Node) (Log, error) {
	var sec logSection
	err := eachKey(node, func(key string, val *yaml.Node) error {
		if key != "level" {
			return fmt.Errorf("unknown key %q", key)
		}
		return decodeInto(val, sec.SetLevel)
	})
	if err != nil {
		return Log{}, err
	}

	level, err := sec.Level()
	if err != nil {
		return Log{}, err
	}
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Log{}, fmt.Errorf("invalid level %q", level)
	}
	return Log{Level: level}, sec.EnsureEmpty()
}

// eachKey calls fn for each key of a mapping node in order. Errors are
// prefixed with the line of the key.
func eachKey(node *yaml.Node, fn func(key string, val *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if err := fn(key.Value, val); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	return nil
}

// decodeInto decodes a scalar node and passes the value to a setter.
func decodeInto[T any](node *yaml.Node, set func(T) error) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	return set(v)
}
