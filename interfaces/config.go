package interfaces

type IConfig interface {
	Seed() uint64
	UseMetrics() bool
	UsePprof() bool
	OutPath() string
	PrintLogToConsole() bool
	PrintAuditLogToConsole() bool
	PrintMemStats() bool
	AuditLogSpikes() bool
	Steps() int64
	Dt() float64
	Groups() []IGroupConfig
	Pathways() []IPathwayConfig
	Stimuli() []IStimulusConfig
}

type IGroupConfig interface {
	Name() string
	Model() string
	Count() int
	TauM() float64
	VRest() float64
	VReset() float64
	VThreshold() float64
	RefractorySteps() int32
	Rate() float64
	Bias() float64
}

type IPathwayConfig interface {
	From() string
	To() string
	Probability() float64
	MaxDelaySteps() int32
}

type IStimulusConfig interface {
	Type() string
	Step() int64
	Group() string
	Value() float64
}
