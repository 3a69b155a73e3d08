package arraylist

import (
	"github.com/teenjuna/arraylist/growth"
)

// DefaultCapacity is the capacity of a list created without [Config.Capacity].
const DefaultCapacity = 10

// Config is a configuration of the list.
//
// An instance is passed to [ConfigFunc]s by [New] and [NewFunc]. The zero value is not used
// directly.
type Config struct {
	capacity   int
	growth     GrowthPolicy
	prometheus *PrometheusConfig
}

type ConfigFunc = func(c *Config)

// Capacity sets the starting capacity of the list.
//
// Zero is allowed: the first insertion then triggers a growth.
func (c *Config) Capacity(capacity int) {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	c.capacity = capacity
}

// Growth sets the policy that computes the next capacity once the current one is exhausted.
//
// Default policy is [growth.Doubling].
func (c *Config) Growth(policy GrowthPolicy) {
	if policy == nil {
		panic("policy can't be nil")
	}
	c.growth = policy
}

// Prometheus sets the Prometheus configuration of the list. If nil, metrics are disabled.
//
// By default, metrics are disabled.
func (c *Config) Prometheus(prometheus *PrometheusConfig) {
	c.prometheus = prometheus
}

func newConfig(configFuncs ...ConfigFunc) *Config {
	cfg := &Config{}
	cfg.Capacity(DefaultCapacity)
	cfg.Growth(growth.Doubling())
	cfg.Prometheus(nil)
	for _, cf := range configFuncs {
		if cf != nil {
			cf(cfg)
		}
	}
	return cfg
}
