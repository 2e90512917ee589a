// Package config loads advisor configuration from an HCL file with a
// defaults overlay, plus environment variable overrides for the settings
// that vary per invocation.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variables recognised by the advisor.
const (
	// EnvConfig points at an alternative config file.
	EnvConfig = "HOLDEM_ADVISOR_CONFIG"

	// EnvSeed provides a random seed for deterministic runs.
	EnvSeed = "HOLDEM_ADVISOR_SEED"

	// EnvWorkers overrides the simulation worker count.
	EnvWorkers = "HOLDEM_ADVISOR_WORKERS"
)

// Config is the complete advisor configuration.
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Policy     PolicySettings     `hcl:"policy,block"`
}

// SimulationSettings controls the Monte Carlo batch.
type SimulationSettings struct {
	Iterations int   `hcl:"iterations,optional"`
	Workers    int   `hcl:"workers,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

// PolicySettings exposes the decision thresholds. The defaults are the
// contractual policy constants.
type PolicySettings struct {
	PreflopBonus    float64 `hcl:"preflop_bonus,optional"`
	BankrollBlinds  float64 `hcl:"bankroll_blinds,optional"`
	ThinValueCutoff float64 `hcl:"thin_value_cutoff,optional"`
	BreakevenCutoff float64 `hcl:"breakeven_cutoff,optional"`
	StrongCutoff    float64 `hcl:"strong_cutoff,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Iterations: 100000,
			Workers:    0, // GOMAXPROCS
			Seed:       0, // non-deterministic
		},
		Policy: PolicySettings{
			PreflopBonus:    0.2,
			BankrollBlinds:  4,
			ThinValueCutoff: 0.8,
			BreakevenCutoff: 1.0,
			StrongCutoff:    1.3,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file is decoded and missing values are backfilled
// field by field.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return loadEnv(Default())
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()

	if config.Simulation.Iterations == 0 {
		config.Simulation.Iterations = defaults.Simulation.Iterations
	}
	if config.Simulation.Iterations < 0 {
		return nil, fmt.Errorf("simulation iterations must be positive, got %d", config.Simulation.Iterations)
	}

	if config.Policy.PreflopBonus == 0 {
		config.Policy.PreflopBonus = defaults.Policy.PreflopBonus
	}
	if config.Policy.BankrollBlinds == 0 {
		config.Policy.BankrollBlinds = defaults.Policy.BankrollBlinds
	}
	if config.Policy.ThinValueCutoff == 0 {
		config.Policy.ThinValueCutoff = defaults.Policy.ThinValueCutoff
	}
	if config.Policy.BreakevenCutoff == 0 {
		config.Policy.BreakevenCutoff = defaults.Policy.BreakevenCutoff
	}
	if config.Policy.StrongCutoff == 0 {
		config.Policy.StrongCutoff = defaults.Policy.StrongCutoff
	}

	return loadEnv(&config)
}

// loadEnv applies environment overrides on top of a loaded config.
func loadEnv(config *Config) (*Config, error) {
	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		config.Simulation.Seed = seed
	}

	if workersStr := os.Getenv(EnvWorkers); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		config.Simulation.Workers = workers
	}

	return config, nil
}

// Path resolves the config file location: the env override if set,
// otherwise the provided flag value.
func Path(flagValue string) string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return flagValue
}
