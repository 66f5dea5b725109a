package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type plannerConfig struct {
	Server serverConfig `yaml:"server"`
	Mesh   meshConfig   `yaml:"mesh"`
	Search searchConfig `yaml:"search"`
}

type serverConfig struct {
	ListenAddress  string  `yaml:"listenAddress"`
	EnableCORS     bool    `yaml:"enableCORS"`
	RouteRateLimit float64 `yaml:"routeRateLimit"` // requests per second, 0 disables throttling
	RouteRateBurst int     `yaml:"routeRateBurst"`
}

type meshConfig struct {
	File     string `yaml:"file"`     // loaded at start-up and made the default mesh
	SaveFile string `yaml:"saveFile"` // target of /loadMesh with saveToFile
}

type searchConfig struct {
	MaxExpansions int `yaml:"maxExpansions"`
}

func defaultConfig() plannerConfig {
	return plannerConfig{
		Server: serverConfig{
			ListenAddress: ":8080",
			EnableCORS:    true,
		},
		Mesh: meshConfig{
			SaveFile: "mesh.json",
		},
	}
}

func (pc plannerConfig) SerializeToFile(filename string) error {
	fBytes, err := yaml.Marshal(pc)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(): %w", err)
	}
	err = os.WriteFile(filename, fBytes, 0644)
	if err != nil {
		return fmt.Errorf("os.WriteFile(%q, ...): %w", filename, err)
	}
	return nil
}

func (pc *plannerConfig) DeserializeFromFile(filename string) error {
	fBytes, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%q): %w", filename, err)
	}
	err = yaml.Unmarshal(fBytes, pc)
	if err != nil {
		return fmt.Errorf("yaml.Unmarshal(): %w", err)
	}
	return nil
}
