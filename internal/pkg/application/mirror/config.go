package mirror

import (
	"io"
	"slices"

	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	yaml "gopkg.in/yaml.v2"
)

type Account struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Endpoint    string   `yaml:"endpoint"`
	APIKey      string   `yaml:"apiKey"`
	AccessToken string   `yaml:"accessToken"`
	PageSize    int      `yaml:"pageSize"`
	Statuses    []string `yaml:"statuses"`
}

// Mirrors reports whether events in status s should be kept for the account.
// An empty status list mirrors everything, including events without a status.
func (a Account) Mirrors(s events.Status) bool {
	if len(a.Statuses) == 0 {
		return true
	}
	return slices.Contains(a.Statuses, string(s))
}

type Config struct {
	Accounts []Account `yaml:"accounts"`
}

func (c *Config) Account(id string) (Account, bool) {
	for _, a := range c.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
