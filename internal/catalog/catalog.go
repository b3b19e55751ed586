// Package catalog holds the immutable bank catalog, indexed by internal id,
// rate.am id and every localized name.
package catalog

import (
	"errors"
	"fmt"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// Catalog read-only bank table. Safe for concurrent use.
type Catalog struct {
	banks      []entity.Bank
	byID       map[entity.BankID]int
	byExternal map[string]int
	byName     map[string]int
}

// New builds a catalog from banks, keeping their order
func New(banks []entity.Bank) (*Catalog, error) {
	if len(banks) == 0 {
		return nil, errors.New("catalog: no banks")
	}

	c := &Catalog{
		banks:      make([]entity.Bank, 0, len(banks)),
		byID:       make(map[entity.BankID]int, len(banks)),
		byExternal: make(map[string]int, len(banks)),
		byName:     make(map[string]int, len(banks)*len(entity.Languages)),
	}

	for _, b := range banks {
		if b.ID == "" || b.ExternalID == "" {
			return nil, fmt.Errorf("catalog: bank %q has an empty id", b.ID)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate bank id %q", b.ID)
		}
		if _, dup := c.byExternal[b.ExternalID]; dup {
			return nil, fmt.Errorf("catalog: duplicate external id %q", b.ExternalID)
		}

		names := make(map[entity.Language]string, len(entity.Languages))
		for _, lang := range entity.Languages {
			name := b.Names[lang]
			if name == "" {
				return nil, fmt.Errorf("catalog: bank %q has no %s name", b.ID, lang)
			}
			names[lang] = name
		}
		b.Names = names

		idx := len(c.banks)
		c.banks = append(c.banks, b)
		c.byID[b.ID] = idx
		c.byExternal[b.ExternalID] = idx
		for _, name := range names {
			if _, taken := c.byName[name]; !taken {
				c.byName[name] = idx
			}
		}
	}

	return c, nil
}

// Default catalog of the built-in banks
func Default() *Catalog {
	c, err := New(DefaultBanks())
	if err != nil {
		panic(err)
	}
	return c
}

// All banks in catalog order
func (c *Catalog) All() []entity.Bank {
	out := make([]entity.Bank, len(c.banks))
	copy(out, c.banks)
	return out
}

// Len number of banks
func (c *Catalog) Len() int { return len(c.banks) }

// ByID looks a bank up by internal id
func (c *Catalog) ByID(id entity.BankID) (entity.Bank, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return entity.Bank{}, false
	}
	return c.banks[idx], true
}

// ByExternalID looks a bank up by rate.am id
func (c *Catalog) ByExternalID(id string) (entity.Bank, bool) {
	idx, ok := c.byExternal[id]
	if !ok {
		return entity.Bank{}, false
	}
	return c.banks[idx], true
}

// ByName looks a bank up by its exact name in any language
func (c *Catalog) ByName(name string) (entity.Bank, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return entity.Bank{}, false
	}
	return c.banks[idx], true
}

// Names bank names in lang, in catalog order
func (c *Catalog) Names(lang entity.Language) []string {
	out := make([]string, 0, len(c.banks))
	for _, b := range c.banks {
		out = append(out, b.Names[lang])
	}
	return out
}
