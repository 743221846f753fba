package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"io/fs"
	"os"
	"strings"

	"github.com/gorilla/schema"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const envPrefix = "MINES_"

type Config struct {
	Width    int    `yaml:"width" schema:"width"`
	Height   int    `yaml:"height" schema:"height"`
	Mines    int    `yaml:"mines" schema:"mines"`
	Seed     uint64 `yaml:"seed" schema:"seed"`
	Script   string `yaml:"script" schema:"script"`
	LogFile  string `yaml:"log_file" schema:"log_file"`
	LogLevel string `yaml:"log_level" schema:"log_level"`
}

func Default() Config {
	return Config{
		Width:  21,
		Height: 11,
		Mines:  20,
	}
}

// Load builds the configuration from, in increasing precedence, the
// defaults, the YAML file named by --config, MINES_* variables in environ
// and the remaining flags. A zero seed is replaced with a random one so
// the game can be replayed from the logged value.
func Load(args []string, environ []string) (*Config, error) {
	cfg := Default()

	flags := pflag.NewFlagSet("mines", pflag.ContinueOnError)
	var (
		path   = flags.StringP("config", "c", "", "YAML config file")
		params = flags.String("params", "", "board as WIDTH:HEIGHT:MINES")
		f      Config
	)
	flags.IntVarP(&f.Width, "width", "W", cfg.Width, "board width")
	flags.IntVarP(&f.Height, "height", "H", cfg.Height, "board height")
	flags.IntVarP(&f.Mines, "mines", "m", cfg.Mines, "number of mines")
	flags.Uint64Var(&f.Seed, "seed", 0, "mine layout seed, 0 for a random one")
	flags.StringVar(&f.Script, "script", "", "play a comma separated list of events without a terminal")
	flags.StringVar(&f.LogFile, "log-file", "", "write logs to this file, rotated")
	flags.StringVar(&f.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if *path != "" {
		if err := cfg.readFile(*path); err != nil {
			return nil, err
		}
	}

	if err := cfg.decodeEnv(environ); err != nil {
		return nil, err
	}

	if *params != "" {
		p, err := mines.ParseParams(*params)
		if err != nil {
			return nil, err
		}
		cfg.Width, cfg.Height, cfg.Mines = p.Unpack()
	}

	for name, apply := range map[string]func(){
		"width":     func() { cfg.Width = f.Width },
		"height":    func() { cfg.Height = f.Height },
		"mines":     func() { cfg.Mines = f.Mines },
		"seed":      func() { cfg.Seed = f.Seed },
		"script":    func() { cfg.Script = f.Script },
		"log-file":  func() { cfg.LogFile = f.LogFile },
		"log-level": func() { cfg.LogLevel = f.LogLevel },
	} {
		if flags.Changed(name) {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = new(maphash.Hash).Sum64()
	}

	return &cfg, nil
}

// LoadDotEnv loads .env style files into the process environment.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}
	return nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) decodeEnv(environ []string) error {
	src := make(map[string][]string)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, envPrefix) {
			continue
		}
		src[strings.ToLower(strings.TrimPrefix(k, envPrefix))] = []string{v}
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(c, src); err != nil {
		return fmt.Errorf("unable to decode %s* env variables: %w", envPrefix, err)
	}
	return nil
}

func (c Config) Params() mines.GameParams {
	return mines.GameParams{Width: c.Width, Height: c.Height, MineCount: c.Mines}
}

// Validate applies the command line constraints, which are stricter than
// the engine's: a game needs at least one mine.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Mines < 1 {
		return fmt.Errorf("%w: at least one mine is required", mines.ErrInvalidParams)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":     c.Width,
		"height":    c.Height,
		"mines":     c.Mines,
		"seed":      c.Seed,
		"script":    c.Script != "",
		"log_file":  c.LogFile,
		"log_level": c.LogLevel,
	}
}
