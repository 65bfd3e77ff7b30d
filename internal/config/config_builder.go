package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	sources []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		sources: make([]*Settings, 0, 4),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, src := range b.sources {
		if err := mergo.Merge(settings, src); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return settings, settings.validate()
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envSettings)
	return b
}

func (b *settingsBuilder) withFlags() *settingsBuilder {
	flags := ParseFlags()

	b.sources = append(b.sources, flags)
	return b
}

func (b *settingsBuilder) withJSON() *settingsBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = src.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonSettings, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.sources = append(b.sources, jsonSettings)
	}

	return b
}
