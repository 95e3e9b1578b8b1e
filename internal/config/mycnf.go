package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-sql-driver/mysql"
	"gopkg.in/ini.v1"
)

var (
	// ErrClientConfigNotFound is returned when the option file does not exist.
	ErrClientConfigNotFound = errors.New("client config file not found")
	// ErrClientConfigInvalid is returned when the option file cannot be parsed,
	// has no [client] section, or carries unusable values.
	ErrClientConfigInvalid = errors.New("client config file invalid")
)

const (
	DefaultDBHost = "localhost"
	DefaultDBPort = 3306
)

// ClientConfig is the [client] section of a MySQL option file (.my.cnf).
type ClientConfig struct {
	Host     string
	Database string
	Port     int
	User     string
	Password string
}

// LoadClientConfig reads the [client] section of the option file at path.
// Missing keys fall back to localhost:3306 and empty database/user/password.
func LoadClientConfig(path string) (*ClientConfig, error) {
	// 1. The file must exist before we try to parse it
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrClientConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrClientConfigInvalid, err)
	}

	// 2. Parse it the way mysql(1) reads option files: bare keys such as
	// "skip-ssl" are allowed, '#' and ';' inside values are not comments,
	// and "!include" directives are skipped.
	file, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:        true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientConfigInvalid, err)
	}

	section, err := file.GetSection("client")
	if err != nil {
		return nil, fmt.Errorf("%w: no [client] section in %s", ErrClientConfigInvalid, path)
	}
	if len(section.Keys()) == 0 {
		return nil, fmt.Errorf("%w: empty [client] section in %s", ErrClientConfigInvalid, path)
	}

	// 3. Pull the raw values, keeping explicit empty strings as they are.
	// Key.String() would expand %(name)s references inside passwords.
	cc := &ClientConfig{
		Host: DefaultDBHost,
		Port: DefaultDBPort,
	}
	if section.HasKey("host") {
		cc.Host = section.Key("host").Value()
	}
	if section.HasKey("database") {
		cc.Database = section.Key("database").Value()
	}
	if section.HasKey("user") {
		cc.User = section.Key("user").Value()
	}
	if section.HasKey("password") {
		cc.Password = section.Key("password").Value()
	}
	if section.HasKey("port") {
		port, err := strconv.Atoi(section.Key("port").Value())
		if err != nil {
			return nil, fmt.Errorf("%w: port %q is not a number", ErrClientConfigInvalid, section.Key("port").Value())
		}
		cc.Port = port
	}

	if err := cc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientConfigInvalid, err)
	}

	return cc, nil
}

func (c *ClientConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// DSN builds a go-sql-driver/mysql data source name for this client config.
func (c *ClientConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN()
}
