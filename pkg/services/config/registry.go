package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile carries the credentials of one upstream API, read from a
// section of the credentials file ([harvest], [forecast], ...).
type Profile struct {
	Name      string
	AccountID string
	Token     string
}

// Registry exposes the configured upstream profiles. The engine never
// touches credentials itself; composition reads them to build the raw
// API clients.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	if !cr.cfg.HasSection(name) {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	section := cr.cfg.Section(name)

	accountID := section.Key("account_id").String()
	token := section.Key("token").String()
	if accountID == "" || token == "" {
		return nil, fmt.Errorf("profile %s is missing account_id or token", name)
	}

	return &Profile{
		Name:      name,
		AccountID: accountID,
		Token:     token,
	}, nil
}
