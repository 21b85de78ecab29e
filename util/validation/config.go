package validation

import (
	"fmt"
	"log"
	"spikesim/interfaces"
	"spikesim/util/file"
	"strings"
)

func ValidateConfig(config *file.Config) {
	// add config validation here
	var err []string = make([]string, 0, 2)
	if config.OutPath() == "" {
		err = append(err, "OutPath should be set")
	}
	if strings.HasSuffix(config.OutPath(), "/") {
		err = append(err, "OutPath should not end with '/'")
	}
	if config.Steps() <= 0 {
		err = append(err, "Steps should be a positive integer")
	}
	if config.Dt() <= 0 {
		err = append(err, "Dt should be a positive number of seconds")
	}
	if len(config.Groups()) == 0 {
		err = append(err, "At least one neuron group should be configured")
	}

	groupNames := make(map[string]interfaces.IGroupConfig)
	for _, group := range config.Groups() {
		if group.Name() == "" {
			err = append(err, "Every group needs a name")
			continue
		}
		if _, exists := groupNames[group.Name()]; exists {
			err = append(err, fmt.Sprintf("Group name %v is used twice", group.Name()))
		}
		groupNames[group.Name()] = group
		if _, ok := interfaces.GROUP_MODEL_MAP[group.Model()]; !ok {
			err = append(err, fmt.Sprintf("Group %v has unknown model %v", group.Name(), group.Model()))
		}
		if group.Count() <= 0 {
			err = append(err, fmt.Sprintf("Group %v needs a positive neuron count", group.Name()))
		}
		if group.Model() == "lif" && group.TauM() <= 0 {
			err = append(err, fmt.Sprintf("Group %v needs a positive membrane time constant", group.Name()))
		}
		if group.Model() == "lif" && group.VThreshold() <= group.VReset() {
			err = append(err, fmt.Sprintf("Group %v needs vThreshold above vReset", group.Name()))
		}
		if group.RefractorySteps() < 0 {
			err = append(err, fmt.Sprintf("Group %v must not have negative refractory steps", group.Name()))
		}
		if group.Model() == "poisson" && group.Rate() < 0 {
			err = append(err, fmt.Sprintf("Group %v must not have a negative rate", group.Name()))
		}
	}

	for _, pathway := range config.Pathways() {
		if _, ok := groupNames[pathway.From()]; !ok {
			err = append(err, fmt.Sprintf("Pathway references unknown source group %v", pathway.From()))
		}
		if _, ok := groupNames[pathway.To()]; !ok {
			err = append(err, fmt.Sprintf("Pathway references unknown target group %v", pathway.To()))
		}
		if target, ok := groupNames[pathway.To()]; ok && target.Model() == "poisson" {
			err = append(err, fmt.Sprintf("Pathway target group %v is rate-driven and ignores synaptic input", pathway.To()))
		}
		if pathway.Probability() < 0 || pathway.Probability() > 1 {
			err = append(err, fmt.Sprintf("Pathway %v->%v needs a connection probability in [0, 1]", pathway.From(), pathway.To()))
		}
		if pathway.MaxDelaySteps() < 0 {
			err = append(err, fmt.Sprintf("Pathway %v->%v must not have negative maxDelaySteps", pathway.From(), pathway.To()))
		}
	}

	for _, stimulus := range config.Stimuli() {
		if stimulus.Type() != "rateChange" && stimulus.Type() != "stepCurrent" {
			err = append(err, fmt.Sprintf("Stimulus has unknown type %v", stimulus.Type()))
		}
		if stimulus.Step() < 0 || stimulus.Step() >= config.Steps() {
			err = append(err, fmt.Sprintf("Stimulus step %v is outside the simulated range [0, %v)", stimulus.Step(), config.Steps()))
		}
		group, ok := groupNames[stimulus.Group()]
		if !ok {
			err = append(err, fmt.Sprintf("Stimulus references unknown group %v", stimulus.Group()))
		} else {
			if stimulus.Type() == "rateChange" && group.Model() != "poisson" {
				err = append(err, fmt.Sprintf("Stimulus rateChange targets group %v which is not rate-driven", stimulus.Group()))
			}
			if stimulus.Type() == "stepCurrent" && group.Model() != "lif" {
				err = append(err, fmt.Sprintf("Stimulus stepCurrent targets group %v which has no bias current", stimulus.Group()))
			}
		}
		if stimulus.Type() == "rateChange" && stimulus.Value() < 0 {
			err = append(err, fmt.Sprintf("Stimulus rateChange for group %v must not have a negative rate", stimulus.Group()))
		}
	}

	if len(err) > 0 {
		var errMessage string = "There are configuration errors:\n"
		for _, err := range err {
			errMessage += err + "\n"
		}
		log.Panic(errMessage)
	}
}

func ValidateSynapticConfig(synapticConfig *file.SynapticConfig, config *file.Config) {
	var err []string = make([]string, 0, 2)
	if synapticConfig.Default.Delay.Distribution == "" || synapticConfig.Default.Weight.Distribution == "" {
		err = append(err, "Synaptic default delay and weight distributions should be set")
	}

	pathwayIds := make(map[string]bool)
	for _, pathway := range config.Pathways() {
		pathwayIds[pathway.From()+"->"+pathway.To()] = true
	}
	for pathwayId := range synapticConfig.Pathways {
		if !pathwayIds[pathwayId] {
			err = append(err, fmt.Sprintf("Synaptic override references unknown pathway %v", pathwayId))
		}
	}

	if len(err) > 0 {
		var errMessage string = "There are synaptic configuration errors:\n"
		for _, err := range err {
			errMessage += err + "\n"
		}
		log.Panic(errMessage)
	}
}
