// Package catalog holds the static client / sender domain / SMTP prefix
// reference data used to validate registered emails.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is read-only once built.
type Catalog struct {
	clients  map[string]map[string]struct{}
	prefixes map[string]string
}

type fileFormat struct {
	Clients      map[string][]string `yaml:"clients"`
	SMTPPrefixes map[string]string   `yaml:"smtp_prefixes"`
}

// New builds a catalog from client -> domains and domain -> prefix maps.
// Domains are lower-cased; client IDs are kept as given.
func New(clients map[string][]string, prefixes map[string]string) *Catalog {
	c := &Catalog{
		clients:  make(map[string]map[string]struct{}, len(clients)),
		prefixes: make(map[string]string, len(prefixes)),
	}
	for clientID, domains := range clients {
		set := make(map[string]struct{}, len(domains))
		for _, d := range domains {
			set[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
		}
		c.clients[clientID] = set
	}
	for d, prefix := range prefixes {
		c.prefixes[strings.ToLower(strings.TrimSpace(d))] = prefix
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(
		map[string][]string{
			"CLIENTE_1": {"empresa1.com", "empresa2.com", "empresa3.com"},
			"CLIENTE_2": {"compania1.com", "compania2.com", "compania3.com"},
			"CLIENTE_3": {"negocio1.com", "negocio2.com", "negocio3.com"},
			"CLIENTE_4": {"firma1.com", "firma2.com", "firma3.com"},
			"CLIENTE_5": {"corporacion1.com", "corporacion2.com", "corporacion3.com"},
		},
		map[string]string{
			"empresa1.com":     "SMTP-E1",
			"empresa2.com":     "SMTP-E2",
			"empresa3.com":     "SMTP-E3",
			"compania1.com":    "SMTP-C1",
			"compania2.com":    "SMTP-C2",
			"compania3.com":    "SMTP-C3",
			"negocio1.com":     "SMTP-N1",
			"negocio2.com":     "SMTP-N2",
			"negocio3.com":     "SMTP-N3",
			"firma1.com":       "SMTP-F1",
			"firma2.com":       "SMTP-F2",
			"firma3.com":       "SMTP-F3",
			"corporacion1.com": "SMTP-CP1",
			"corporacion2.com": "SMTP-CP2",
			"corporacion3.com": "SMTP-CP3",
		},
	)
}

// LoadFile reads a YAML catalog:
//
//	clients:
//	  CLIENTE_1: [empresa1.com, empresa2.com]
//	smtp_prefixes:
//	  empresa1.com: SMTP-E1
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Clients) == 0 {
		return nil, fmt.Errorf("catalog has no clients")
	}
	return New(f.Clients, f.SMTPPrefixes), nil
}

// AllowedDomains returns the sender domains allowed for clientID. ok is false
// for an unknown client.
func (c *Catalog) AllowedDomains(clientID string) (domains map[string]struct{}, ok bool) {
	domains, ok = c.clients[clientID]
	return domains, ok
}

// ExpectedPrefix returns the SMTP code prefix configured for a domain.
func (c *Catalog) ExpectedPrefix(domain string) (string, bool) {
	prefix, ok := c.prefixes[domain]
	return prefix, ok
}

// Clients returns the number of known clients.
func (c *Catalog) Clients() int {
	return len(c.clients)
}
