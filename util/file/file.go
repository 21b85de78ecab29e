package file

import (
	"fmt"
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"spikesim/interfaces"
)

type Config struct {
	CSeed                   uint64            `yaml:"seed"`
	CUseMetrics             bool              `yaml:"useMetrics"`
	CUsePprof               bool              `yaml:"usePprof"`
	COutPath                string            `yaml:"outPath"`
	CPrintLogToConsole      bool              `yaml:"printLogToConsole"`
	CPrintAuditLogToConsole bool              `yaml:"printAuditLogToConsole"`
	CPrintMemStats          bool              `yaml:"printMemStats"`
	CAuditLogSpikes         bool              `yaml:"auditLogSpikes"`
	CSteps                  int64             `yaml:"steps"`
	CDt                     float64           `yaml:"dt"`
	CGroups                 []*GroupConfig    `yaml:"groups"`
	CPathways               []*PathwayConfig  `yaml:"pathways"`
	CStimuli                []*StimulusConfig `yaml:"stimuli"`
}

type GroupConfig struct {
	GName            string  `yaml:"name"`
	GModel           string  `yaml:"model"`
	GCount           int     `yaml:"count"`
	GTauM            float64 `yaml:"tauM"`
	GVRest           float64 `yaml:"vRest"`
	GVReset          float64 `yaml:"vReset"`
	GVThreshold      float64 `yaml:"vThreshold"`
	GRefractorySteps int32   `yaml:"refractorySteps"`
	GRate            float64 `yaml:"rate"`
	GBias            float64 `yaml:"bias"`
}

type PathwayConfig struct {
	PFrom          string  `yaml:"from"`
	PTo            string  `yaml:"to"`
	PProbability   float64 `yaml:"probability"`
	PMaxDelaySteps int32   `yaml:"maxDelaySteps"`
}

type StimulusConfig struct {
	SType  string  `yaml:"type"`
	SStep  int64   `yaml:"step"`
	SGroup string  `yaml:"group"`
	SValue float64 `yaml:"value"`
}

func (config *GroupConfig) Name() string {
	return config.GName
}

func (config *GroupConfig) Model() string {
	return config.GModel
}

func (config *GroupConfig) Count() int {
	return config.GCount
}

func (config *GroupConfig) TauM() float64 {
	return config.GTauM
}

func (config *GroupConfig) VRest() float64 {
	return config.GVRest
}

func (config *GroupConfig) VReset() float64 {
	return config.GVReset
}

func (config *GroupConfig) VThreshold() float64 {
	return config.GVThreshold
}

func (config *GroupConfig) RefractorySteps() int32 {
	return config.GRefractorySteps
}

func (config *GroupConfig) Rate() float64 {
	return config.GRate
}

func (config *GroupConfig) Bias() float64 {
	return config.GBias
}

func (config *PathwayConfig) From() string {
	return config.PFrom
}

func (config *PathwayConfig) To() string {
	return config.PTo
}

func (config *PathwayConfig) Probability() float64 {
	return config.PProbability
}

func (config *PathwayConfig) MaxDelaySteps() int32 {
	return config.PMaxDelaySteps
}

func (config *StimulusConfig) Type() string {
	return config.SType
}

func (config *StimulusConfig) Step() int64 {
	return config.SStep
}

func (config *StimulusConfig) Group() string {
	return config.SGroup
}

func (config *StimulusConfig) Value() float64 {
	return config.SValue
}

func (config *Config) Seed() uint64 {
	return config.CSeed
}

func (config *Config) UseMetrics() bool {
	return config.CUseMetrics
}

func (config *Config) UsePprof() bool {
	return config.CUsePprof
}

func (config *Config) OutPath() string {
	return config.COutPath
}

func (config *Config) PrintLogToConsole() bool {
	return config.CPrintLogToConsole
}

func (config *Config) PrintAuditLogToConsole() bool {
	return config.CPrintAuditLogToConsole
}

func (config *Config) PrintMemStats() bool {
	return config.CPrintMemStats
}

func (config *Config) AuditLogSpikes() bool {
	return config.CAuditLogSpikes
}

func (config *Config) Steps() int64 {
	return config.CSteps
}

func (config *Config) Dt() float64 {
	return config.CDt
}

func (config *Config) Groups() []interfaces.IGroupConfig {
	groups := make([]interfaces.IGroupConfig, 0, len(config.CGroups))
	for _, group := range config.CGroups {
		groups = append(groups, group)
	}
	return groups
}

func (config *Config) Pathways() []interfaces.IPathwayConfig {
	pathways := make([]interfaces.IPathwayConfig, 0, len(config.CPathways))
	for _, pathway := range config.CPathways {
		pathways = append(pathways, pathway)
	}
	return pathways
}

func (config *Config) Stimuli() []interfaces.IStimulusConfig {
	stimuli := make([]interfaces.IStimulusConfig, 0, len(config.CStimuli))
	for _, stimulus := range config.CStimuli {
		stimuli = append(stimuli, stimulus)
	}
	return stimuli
}

type SynapticConfig struct {
	Default  PathwayDistConfig            `yaml:"default"`
	Pathways map[string]PathwayDistConfig `yaml:"pathways"`
}

type PathwayDistConfig struct {
	Delay  DistributionConfig `yaml:"delay"`  // in steps
	Weight DistributionConfig `yaml:"weight"` // synaptic current per event
}

type DistributionConfig struct {
	Distribution string    `yaml:"distribution"`
	Params       []float64 `yaml:"params"`
}

func LoadConfig() *Config {
	var config Config
	yamlFile, err := os.ReadFile("config.yml")
	if err != nil {
		log.Panic(err)
	}
	err = yaml.Unmarshal(yamlFile, &config)
	if err != nil {
		log.Panic(err)
	}

	return &config
}

func LoadSynapticConfig() *SynapticConfig {
	var config SynapticConfig
	yamlFile, err := os.ReadFile("synaptic.yml")
	if err != nil {
		log.Panic(err)
	}
	err = yaml.Unmarshal(yamlFile, &config)
	if err != nil {
		log.Panic(err)
	}

	return &config
}

func WorldFile(config *Config) *os.File {
	return createOutFile(config, "world.json")
}

func StatsOverviewFile(config *Config) *os.File {
	return createOutFile(config, "statsOverview.json")
}

func MetricsFile(config *Config) *os.File {
	return createOutFile(config, "metrics.json")
}

func LoggerFile(config *Config) *os.File {
	return createOutFile(config, "log.txt")
}

func AuditLoggerFile(config *Config) *os.File {
	return createOutFile(config, "auditLog.csv")
}

func PprofFile(config interfaces.IConfig, number int) *os.File {
	outFile := fmt.Sprintf("%v/%v/pprof_%v.prof", config.OutPath(), config.Seed(), number)
	EnsureOutPath(fmt.Sprintf("%v/%v", config.OutPath(), config.Seed()))
	outputFile, err := os.Create(outFile)
	if err != nil {
		log.Panic(err)
	}

	return outputFile
}

func createOutFile(config *Config, name string) *os.File {
	outFile := fmt.Sprintf("%v/%v/%v", config.OutPath(), config.Seed(), name)
	if FileExists(outFile) {
		err := os.Remove(outFile)
		if err != nil {
			log.Panic(err)
		}
	} else {
		EnsureOutPath(fmt.Sprintf("%v/%v", config.OutPath(), config.Seed()))
	}
	outputFile, err := os.Create(outFile)
	if err != nil {
		log.Panic(err)
	}

	return outputFile
}

func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

func EnsureOutPath(outPath string) {
	_, err := os.Stat(outPath)
	if os.IsNotExist(err) {
		os.MkdirAll(outPath, os.ModePerm)
	}
}
