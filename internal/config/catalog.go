package config

import (
	"fmt"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/registry"
)

// Upgrade builds the validated economy upgrade for this entry.
func (u UpgradeConfig) Upgrade() (*economy.Upgrade, error) {
	def, err := u.Definition()
	if err != nil {
		return nil, err
	}
	return economy.NewUpgrade(def)
}

// BuildCatalog turns the upgrade table into a catalog, keeping file order.
func BuildCatalog(cfg ClickerConfig) (*registry.Catalog, error) {
	upgrades := make([]*economy.Upgrade, 0, len(cfg.Upgrades))
	for i, uc := range cfg.Upgrades {
		u, err := uc.Upgrade()
		if err != nil {
			return nil, fmt.Errorf("config: upgrades[%d]: %w", i, err)
		}
		upgrades = append(upgrades, u)
	}

	catalog, err := registry.NewCatalog(upgrades...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return catalog, nil
}
