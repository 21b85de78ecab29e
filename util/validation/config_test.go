package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"spikesim/util/file"
	"spikesim/util/validation"
)

func validConfig() *file.Config {
	return &file.Config{
		COutPath: "out",
		CSteps:   100,
		CDt:      0.001,
		CGroups: []*file.GroupConfig{
			{GName: "in", GModel: "poisson", GCount: 10, GRate: 10},
			{GName: "exc", GModel: "lif", GCount: 10, GTauM: 0.02, GVRest: -65, GVReset: -70, GVThreshold: -50},
		},
		CPathways: []*file.PathwayConfig{
			{PFrom: "in", PTo: "exc", PProbability: 0.5, PMaxDelaySteps: 10},
		},
		CStimuli: []*file.StimulusConfig{
			{SType: "rateChange", SStep: 50, SGroup: "in", SValue: 20},
			{SType: "stepCurrent", SStep: 60, SGroup: "exc", SValue: 0.5},
		},
	}
}

func TestValidateConfigAcceptsValid(t *testing.T) {
	assert.NotPanics(t, func() { validation.ValidateConfig(validConfig()) })
}

func TestValidateConfigRejectsBroken(t *testing.T) {
	cases := map[string]func(config *file.Config){
		"empty out path":          func(config *file.Config) { config.COutPath = "" },
		"out path trailing slash": func(config *file.Config) { config.COutPath = "out/" },
		"zero steps":              func(config *file.Config) { config.CSteps = 0 },
		"zero dt":                 func(config *file.Config) { config.CDt = 0 },
		"no groups":               func(config *file.Config) { config.CGroups = nil },
		"unknown model":           func(config *file.Config) { config.CGroups[0].GModel = "izhikevich" },
		"duplicate group name":    func(config *file.Config) { config.CGroups[1].GName = "in" },
		"zero count":              func(config *file.Config) { config.CGroups[0].GCount = 0 },
		"lif without tauM":        func(config *file.Config) { config.CGroups[1].GTauM = 0 },
		"threshold below reset":   func(config *file.Config) { config.CGroups[1].GVThreshold = -80 },
		"negative refractory":     func(config *file.Config) { config.CGroups[1].GRefractorySteps = -1 },
		"negative rate":           func(config *file.Config) { config.CGroups[0].GRate = -1 },
		"unknown pathway source":  func(config *file.Config) { config.CPathways[0].PFrom = "ghost" },
		"unknown pathway target":  func(config *file.Config) { config.CPathways[0].PTo = "ghost" },
		"pathway into poisson":    func(config *file.Config) { config.CPathways[0].PTo = "in" },
		"probability above one":   func(config *file.Config) { config.CPathways[0].PProbability = 1.5 },
		"negative max delay":      func(config *file.Config) { config.CPathways[0].PMaxDelaySteps = -1 },
		"unknown stimulus type":   func(config *file.Config) { config.CStimuli[0].SType = "teleport" },
		"stimulus after end":      func(config *file.Config) { config.CStimuli[0].SStep = 100 },
		"stimulus unknown group":  func(config *file.Config) { config.CStimuli[0].SGroup = "ghost" },
		"rate change on lif":      func(config *file.Config) { config.CStimuli[0].SGroup = "exc" },
		"step current on poisson": func(config *file.Config) { config.CStimuli[1].SGroup = "in" },
		"negative stimulus rate":  func(config *file.Config) { config.CStimuli[0].SValue = -5 },
	}
	for name, breakIt := range cases {
		config := validConfig()
		breakIt(config)
		assert.Panics(t, func() { validation.ValidateConfig(config) }, name)
	}
}

func TestValidateSynapticConfig(t *testing.T) {
	config := validConfig()
	valid := &file.SynapticConfig{
		Default: file.PathwayDistConfig{
			Delay:  file.DistributionConfig{Distribution: "uniform", Params: []float64{0, 10}},
			Weight: file.DistributionConfig{Distribution: "norm", Params: []float64{0.5, 0.1}},
		},
		Pathways: map[string]file.PathwayDistConfig{
			"in->exc": {
				Delay:  file.DistributionConfig{Distribution: "uniform", Params: []float64{0, 5}},
				Weight: file.DistributionConfig{Distribution: "norm", Params: []float64{1, 0.1}},
			},
		},
	}
	assert.NotPanics(t, func() { validation.ValidateSynapticConfig(valid, config) })

	assert.Panics(t, func() {
		validation.ValidateSynapticConfig(&file.SynapticConfig{}, config)
	}, "missing default distributions")

	broken := &file.SynapticConfig{Default: valid.Default, Pathways: map[string]file.PathwayDistConfig{"ghost->exc": {}}}
	assert.Panics(t, func() {
		validation.ValidateSynapticConfig(broken, config)
	}, "override for unknown pathway")
}
