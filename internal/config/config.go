package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"InterestCalc/internal/model"
)

// DefaultPath is used when neither --config nor INTERESTCALC_CONFIG is set.
const DefaultPath = "configs/config.yaml"

// Range describes one slider: its bounds, step and starting value.
type Range struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// Clamp snaps v to the step grid and keeps it within [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Fraction is v's position within the range, 0..1.
func (r Range) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return math.Min(math.Max((v-r.Min)/(r.Max-r.Min), 0), 1)
}

func (r *Range) fill(def Range) {
	if r.Min == 0 && r.Max == 0 {
		r.Min, r.Max = def.Min, def.Max
	}
	if r.Step == 0 {
		r.Step = def.Step
	}
	if r.Default == 0 {
		r.Default = def.Default
	}
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min must be <= max", name)
	}
	if r.Step < 0 {
		return fmt.Errorf("%s: step must not be negative", name)
	}
	if r.Default < r.Min || r.Default > r.Max {
		return fmt.Errorf("%s: default %v outside [%v, %v]", name, r.Default, r.Min, r.Max)
	}
	return nil
}

// Calculator holds the slider ranges of one calculator view.
type Calculator struct {
	Amount    Range `yaml:"amount"`
	Rate      Range `yaml:"rate"`
	Years     Range `yaml:"years"`
	Frequency int   `yaml:"frequency"`
}

// Range returns the slider range for field.
func (c Calculator) Range(field model.Field) (Range, bool) {
	switch field {
	case model.FieldAmount:
		return c.Amount, true
	case model.FieldRate:
		return c.Rate, true
	case model.FieldYears:
		return c.Years, true
	default:
		return Range{}, false
	}
}

// Config holds all application configuration.
type Config struct {
	DebounceMS     int    `yaml:"debounce_ms"`
	CurrencySymbol string `yaml:"currency_symbol"`
	Calculators    struct {
		Compound Calculator `yaml:"compound"`
		Loan     Calculator `yaml:"loan"`
		Savings  Calculator `yaml:"savings"`
	} `yaml:"calculators"`
	Export struct {
		Dir         string `yaml:"dir"`
		ChartWidth  int    `yaml:"chart_width"`
		ChartHeight int    `yaml:"chart_height"`
	} `yaml:"export"`
}

// Path resolves the config file location from a flag value and the environment.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv("INTERESTCALC_CONFIG"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("INTERESTCALC_DEBOUNCE_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("INTERESTCALC_DEBOUNCE_MS: %w", err)
		}
		cfg.DebounceMS = ms
	}
	if v := os.Getenv("INTERESTCALC_CURRENCY"); v != "" {
		cfg.CurrencySymbol = v
	}
	if v := os.Getenv("INTERESTCALC_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}

	// Defaults
	if cfg.DebounceMS == 0 {
		cfg.DebounceMS = 250
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}
	rate := Range{Min: 1, Max: 20, Step: 0.5}
	years := Range{Min: 1, Max: 50, Step: 1}

	c := &cfg.Calculators.Compound
	c.Amount.fill(Range{Min: 500, Max: 500000, Step: 500, Default: 10000})
	c.Rate.fill(withDefault(rate, 8))
	c.Years.fill(withDefault(years, 30))
	if c.Frequency == 0 {
		c.Frequency = 1
	}

	l := &cfg.Calculators.Loan
	l.Amount.fill(Range{Min: 100, Max: 1000000, Step: 100, Default: 20000})
	l.Rate.fill(withDefault(rate, 5))
	l.Years.fill(withDefault(years, 10))

	s := &cfg.Calculators.Savings
	s.Amount.fill(Range{Min: 100, Max: 20000, Step: 100, Default: 500})
	s.Rate.fill(withDefault(rate, 8))
	s.Years.fill(withDefault(years, 30))

	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "exports"
	}
	if cfg.Export.ChartWidth == 0 {
		cfg.Export.ChartWidth = 800
	}
	if cfg.Export.ChartHeight == 0 {
		cfg.Export.ChartHeight = 400
	}

	return cfg, nil
}

func withDefault(r Range, def float64) Range {
	r.Default = def
	return r
}

// Validate checks that every range is usable.
func (c *Config) Validate() error {
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative")
	}
	for _, k := range model.Kinds {
		calc := c.Calculator(k)
		for _, f := range []model.Field{model.FieldAmount, model.FieldRate, model.FieldYears} {
			r, _ := calc.Range(f)
			if err := r.validate(fmt.Sprintf("calculators.%s.%s", k, f)); err != nil {
				return err
			}
		}
		if calc.Amount.Min < 0 {
			return fmt.Errorf("calculators.%s.amount: min must not be negative", k)
		}
		if calc.Years.Min < 1 {
			return fmt.Errorf("calculators.%s.years: min must be at least 1", k)
		}
	}
	if c.Calculators.Compound.Frequency < 1 {
		return fmt.Errorf("calculators.compound.frequency must be at least 1")
	}
	if c.Export.ChartWidth <= 0 || c.Export.ChartHeight <= 0 {
		return fmt.Errorf("export chart size must be positive")
	}
	return nil
}

// DebounceInterval is the quiet period before live values are applied.
func (c *Config) DebounceInterval() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Calculator returns the slider configuration of kind.
func (c *Config) Calculator(kind model.Kind) Calculator {
	switch kind {
	case model.KindLoan:
		return c.Calculators.Loan
	case model.KindSavings:
		return c.Calculators.Savings
	default:
		return c.Calculators.Compound
	}
}

// Params builds the initial parameters of kind from the configured defaults.
func (c *Config) Params(kind model.Kind) model.Parameters {
	calc := c.Calculator(kind)
	p := model.Parameters{
		Kind:              kind,
		Amount:            calc.Amount.Default,
		AnnualRatePercent: calc.Rate.Default,
		Years:             int(math.Round(calc.Years.Default)),
	}
	if kind == model.KindCompound {
		p.Frequency = calc.Frequency
	}
	return p
}
