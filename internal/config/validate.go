package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/vovakirdan/tui-clicker/internal/economy"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns a shared validator that reports fields by their
// YAML names.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks struct tags and the cross-field rules tags cannot express,
// such as unique upgrade ids and upgrade economics.
func Validate(cfg *ClickerConfig) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	seen := make(map[string]bool, len(cfg.Upgrades))
	var problems []string
	for i, u := range cfg.Upgrades {
		if seen[u.ID] {
			problems = append(problems, fmt.Sprintf("upgrades[%d]: duplicate id %q", i, u.ID))
			continue
		}
		seen[u.ID] = true

		if _, err := u.Upgrade(); err != nil {
			problems = append(problems, fmt.Sprintf("upgrades[%d]: %v", i, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("config: %w", err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.TrimPrefix(e.Namespace(), "ClickerConfig.")
		if e.Param() != "" {
			messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s=%s (value: '%v')", field, e.Tag(), e.Param(), e.Value()))
			continue
		}
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: '%v')", field, e.Tag(), e.Value()))
	}
	return fmt.Errorf("config: validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// Definition converts the entry into an economy definition. The kind is
// inferred from the id of the stock upgrades when omitted.
func (u UpgradeConfig) Definition() (economy.Definition, error) {
	var (
		kind economy.Kind
		err  error
	)
	if u.Kind != "" {
		kind, err = economy.ParseKind(u.Kind)
		if err != nil {
			return economy.Definition{}, err
		}
	} else {
		var ok bool
		kind, ok = economy.KindForID(u.ID)
		if !ok {
			return economy.Definition{}, fmt.Errorf("upgrade %q: kind is required", u.ID)
		}
	}

	multiplier := u.CostMultiplier
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}

	return economy.Definition{
		ID:             u.ID,
		Name:           u.Name,
		Description:    u.Description,
		Category:       u.Category,
		Kind:           kind,
		BaseCost:       u.BaseCost,
		CostMultiplier: multiplier,
		EffectValue:    u.EffectValue,
		MaxLevel:       u.MaxLevel,
	}, nil
}
