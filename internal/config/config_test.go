package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "20")
	defer clear2()
	clear3 := util.SetEnv("HOLDEM_ENV_FILE", "testdata/test.env")
	defer clear3()
	defer func() {
		config = Config{}
		_ = os.Unsetenv("HOLDEM_TABLE_MAX_SEATS")
	}()

	a := assert.New(t)
	config = Config{}
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal([]string{"https://holdem.example.com"}, cfg.CORS.AllowedOrigins)
	a.Equal(500, cfg.Table.StartingChips)
	a.Equal(5, cfg.Table.SmallBlind)
	a.Equal(20, cfg.Table.BigBlind, "the environment wins over the file")
	a.Equal(6, cfg.Table.MaxSeats, "loaded from the env file")
	a.Equal(2, cfg.Table.MinPlayers, "defaults survive")
	a.Equal(time.Second*3, cfg.Table.NextHandDelay)

	// ensure that it's only loaded once
	clear4 := util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "40")
	defer clear4()
	// ensure we aren't using a pointer
	cfg.Table.BigBlind = 1
	cfg = Instance()
	a.Equal(20, cfg.Table.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_ENV_FILE", "testdata/missing.env")
	defer clear1()
	defer func() { config = Config{} }()

	require.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Table, cfg.Table)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_missingFile(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.Error(t, Load())
}

func TestTable_ToOptions(t *testing.T) {
	opts := DefaultConfig().Table.ToOptions()
	assert.Equal(t, 1000, opts.StartingChips)
	assert.Equal(t, 10, opts.SmallBlind)
	assert.Equal(t, 20, opts.BigBlind)
	assert.Equal(t, 10, opts.MaxSeats)
	assert.Equal(t, 2, opts.MinPlayers)
	assert.Equal(t, time.Second*5, opts.NextHandDelay)
}
