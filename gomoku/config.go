package gomoku

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the bot tuning knobs. The depth limit and the candidate
// proximity radius are the two approximations that keep Hard search
// tractable on large boards; both are required and validated, never
// silently clamped.
type Config struct {
	AiDepth             int  `mapstructure:"ai_depth"`
	AiTimeBudgetMs      int  `mapstructure:"ai_time_budget_ms"`
	AiProximityRadius   int  `mapstructure:"ai_proximity_radius"`
	AiMaxCandidatesRoot int  `mapstructure:"ai_max_candidates_root"`
	AiMaxCandidatesMid  int  `mapstructure:"ai_max_candidates_mid"`
	AiMaxCandidatesDeep int  `mapstructure:"ai_max_candidates_deep"`
	AiTtSize            int  `mapstructure:"ai_tt_size"`
	AiTtBuckets         int  `mapstructure:"ai_tt_buckets"`
	AiEnableKillerMoves bool `mapstructure:"ai_enable_killer_moves"`
	AiLogSearchStats    bool `mapstructure:"ai_log_search_stats"`

	Heuristics HeuristicConfig `mapstructure:"heuristics"`
}

// HeuristicConfig weights the pattern classes of the static evaluator.
// Weights grow super-linearly with run length so a live four dwarfs any
// number of twos.
type HeuristicConfig struct {
	Open4        float64 `mapstructure:"open_4"`
	Closed4      float64 `mapstructure:"closed_4"`
	Broken4      float64 `mapstructure:"broken_4"`
	Open3        float64 `mapstructure:"open_3"`
	Broken3      float64 `mapstructure:"broken_3"`
	Closed3      float64 `mapstructure:"closed_3"`
	Open2        float64 `mapstructure:"open_2"`
	Broken2      float64 `mapstructure:"broken_2"`
	ForkOpen3    float64 `mapstructure:"fork_open_3"`
	ForkFourPlus float64 `mapstructure:"fork_four_plus"`
}

func DefaultConfig() Config {
	return Config{
		AiDepth:           4,
		AiTimeBudgetMs:    2000,
		AiProximityRadius: 2,

		// Branching control, the primary speed lever.
		AiMaxCandidatesRoot: 20,
		AiMaxCandidatesMid:  12,
		AiMaxCandidatesDeep: 8,

		AiTtSize:    1 << 16,
		AiTtBuckets: 4,

		AiEnableKillerMoves: true,
		AiLogSearchStats:    false,

		Heuristics: HeuristicConfig{
			Open4:        100000.0,
			Closed4:      15000.0,
			Broken4:      12000.0,
			Open3:        2500.0,
			Broken3:      1200.0,
			Closed3:      400.0,
			Open2:        200.0,
			Broken2:      120.0,
			ForkOpen3:    6000.0,
			ForkFourPlus: 20000.0,
		},
	}
}

func (c Config) Validate() error {
	if c.AiDepth <= 0 {
		return invalidConfig("ai_depth", c.AiDepth)
	}
	if c.AiProximityRadius <= 0 {
		return invalidConfig("ai_proximity_radius", c.AiProximityRadius)
	}
	if c.AiTimeBudgetMs < 0 {
		return invalidConfig("ai_time_budget_ms", c.AiTimeBudgetMs)
	}
	if c.AiTtSize < 0 {
		return invalidConfig("ai_tt_size", c.AiTtSize)
	}
	if c.AiTtBuckets < 0 {
		return invalidConfig("ai_tt_buckets", c.AiTtBuckets)
	}
	return nil
}

// LoadConfig reads an optional gomoku.yaml from configDir (or the working
// directory when empty) plus GOMOKU_-prefixed environment overrides, on
// top of DefaultConfig. A missing file is fine; a malformed one is not.
func LoadConfig(configDir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("gomoku")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("gomoku")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setConfigDefaults(v, DefaultConfig())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func setConfigDefaults(v *viper.Viper, defaults Config) {
	v.SetDefault("ai_depth", defaults.AiDepth)
	v.SetDefault("ai_time_budget_ms", defaults.AiTimeBudgetMs)
	v.SetDefault("ai_proximity_radius", defaults.AiProximityRadius)
	v.SetDefault("ai_max_candidates_root", defaults.AiMaxCandidatesRoot)
	v.SetDefault("ai_max_candidates_mid", defaults.AiMaxCandidatesMid)
	v.SetDefault("ai_max_candidates_deep", defaults.AiMaxCandidatesDeep)
	v.SetDefault("ai_tt_size", defaults.AiTtSize)
	v.SetDefault("ai_tt_buckets", defaults.AiTtBuckets)
	v.SetDefault("ai_enable_killer_moves", defaults.AiEnableKillerMoves)
	v.SetDefault("ai_log_search_stats", defaults.AiLogSearchStats)
	v.SetDefault("heuristics.open_4", defaults.Heuristics.Open4)
	v.SetDefault("heuristics.closed_4", defaults.Heuristics.Closed4)
	v.SetDefault("heuristics.broken_4", defaults.Heuristics.Broken4)
	v.SetDefault("heuristics.open_3", defaults.Heuristics.Open3)
	v.SetDefault("heuristics.broken_3", defaults.Heuristics.Broken3)
	v.SetDefault("heuristics.closed_3", defaults.Heuristics.Closed3)
	v.SetDefault("heuristics.open_2", defaults.Heuristics.Open2)
	v.SetDefault("heuristics.broken_2", defaults.Heuristics.Broken2)
	v.SetDefault("heuristics.fork_open_3", defaults.Heuristics.ForkOpen3)
	v.SetDefault("heuristics.fork_four_plus", defaults.Heuristics.ForkFourPlus)
}
