package random

import (
	"golang.org/x/exp/rand"
	"log"
	"math"
	"spikesim/interfaces"
	"spikesim/util/file"
)

var cfg *file.SynapticConfig

var synapticRNGMap map[string]*SynapticRNG
var connect interfaces.IRNG
var poissonSources map[string]interfaces.IRNG
var initPotential interfaces.IRNG

var connectCount int
var delayCount int
var weightCount int
var poissonCount int

type SynapticRNG struct {
	Delay  interfaces.IRNG
	Weight interfaces.IRNG
}

// Connected draws one Bernoulli trial for a potential synapse.
func Connected(probability float64) bool {
	connectCount++
	return connect.Rand() < probability
}

// DelaySteps samples one synaptic delay for the pathway, rounded to whole
// steps; negative samples clamp to 0, capping to the pathway's maximum is the
// connectivity builder's job.
func DelaySteps(pathwayId string) int32 {
	delayCount++
	steps := int32(math.Round(rngFor(pathwayId).Delay.Rand()))
	if steps < 0 {
		steps = 0
	}
	return steps
}

func Weight(pathwayId string) float64 {
	weightCount++
	return rngFor(pathwayId).Weight.Rand()
}

// PoissonRNG returns the per-group uniform generator driving a poisson group.
// Draws are counted for the determinism check.
func PoissonRNG(groupId string) interfaces.IRNG {
	if rng, ok := poissonSources[groupId]; ok {
		return rng
	}
	log.Panic("poisson rng of group " + groupId + " not in map")
	return nil
}

// InitPotentialRNG jitters starting membrane potentials.
func InitPotentialRNG() interfaces.IRNG {
	return initPotential
}

func rngFor(pathwayId string) *SynapticRNG {
	if rng, ok := synapticRNGMap[pathwayId]; ok {
		return rng
	}
	log.Panic("synaptic rng of pathway " + pathwayId + " not in map")
	return nil
}

func PrintSynapticCount() {
	log.Printf("random number generators synaptic call count (indicates determinism) -> connect: %v, delay: %v, weight: %v, poisson: %v", connectCount, delayCount, weightCount, poissonCount)
}

// must be called before usage
func InitializeSynaptic(seed uint64, config *file.SynapticConfig, pathwayIds []string, poissonGroupIds []string) {
	connectCount = 0
	delayCount = 0
	weightCount = 0
	poissonCount = 0
	cfg = config

	connect = &justUniform{rand.New(rand.NewSource(seed))}
	initPotential = &justUniform{rand.New(rand.NewSource(seed))}

	synapticRNGMap = make(map[string]*SynapticRNG)
	for _, pathwayId := range pathwayIds {
		distConfig := cfg.Default
		if override, ok := cfg.Pathways[pathwayId]; ok {
			distConfig = override
		}
		delayRng := getRNGFromDistributionConfig(seed, &distConfig.Delay)
		weightRng := getRNGFromDistributionConfig(seed, &distConfig.Weight)
		synapticRNGMap[pathwayId] = &SynapticRNG{delayRng, weightRng}
	}

	poissonSources = make(map[string]interfaces.IRNG)
	for _, groupId := range poissonGroupIds {
		poissonSources[groupId] = &countingRNG{&justUniform{rand.New(rand.NewSource(seed))}, &poissonCount}
	}
}

func getRNGFromDistributionConfig(seed uint64, config *file.DistributionConfig) interfaces.IRNG {
	return GetDist(config.Distribution, config.Params, rand.NewSource(seed))
}

// uniform [0,1) without the distuv wrapper, for bernoulli draws
type justUniform struct {
	src *rand.Rand
}

func (u *justUniform) Rand() float64 {
	return u.src.Float64()
}

type countingRNG struct {
	inner   interfaces.IRNG
	counter *int
}

func (c *countingRNG) Rand() float64 {
	*c.counter++
	return c.inner.Rand()
}
