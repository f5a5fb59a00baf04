package mirror

import (
	"bytes"
	"testing"

	"github.com/diwise/eventspot/pkg/eventspot/types/events"
	"github.com/matryer/is"
)

func TestLoadConfig(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(len(config.Accounts), 2) // should have two accounts
}

func TestLoadAccount(t *testing.T) {
	is, config := setupConfigTest(t)
	account := config.Accounts[0]

	is.Equal(account.ID, "default")
	is.Equal(account.Name, "Kommunen")
	is.Equal(account.Endpoint, "http://lolcathost:1234")
	is.Equal(account.PageSize, 25)
	is.Equal(account.Statuses, []string{"ACTIVE", "COMPLETE"})
}

func TestAccountStatusFilter(t *testing.T) {
	is, config := setupConfigTest(t)

	is.True(config.Accounts[0].Mirrors(events.StatusActive))
	is.True(!config.Accounts[0].Mirrors(events.StatusDraft))
	is.True(config.Accounts[1].Mirrors(events.StatusDraft)) // no filter mirrors everything
}

func TestLookupAccount(t *testing.T) {
	is, config := setupConfigTest(t)

	a, ok := config.Account("culture")
	is.True(ok)
	is.Equal(a.Name, "Kulturförvaltningen")

	_, ok = config.Account("missing")
	is.True(!ok)
}

func setupConfigTest(t *testing.T) (*is.I, *Config) {
	is := is.New(t)
	cfgData := bytes.NewBuffer([]byte(configFile))
	config, err := LoadConfiguration(cfgData)
	is.NoErr(err)

	return is, config
}

var configFile string = `
accounts:
  - id: default
    name: Kommunen
    endpoint: http://lolcathost:1234
    pageSize: 25
    statuses:
    - ACTIVE
    - COMPLETE
  - id: culture
    name: Kulturförvaltningen
    endpoint: http://lolcathost:5678
`
