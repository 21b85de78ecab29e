package interfaces

type IWorld interface {
	Step() int64 // steps since sim start
	EndStep() int64
	StartTime() int64 //unix nanos
	Dt() float64      // seconds per step
	StartSim()
	StopSim()
	Groups() map[string]INeuronGroup
	GroupIds() []string
	AddGroupIds(ids ...string)
	AddGroups(groups ...INeuronGroup)
	Pathways() []IPathway
	AddPathways(pathways ...IPathway)
	Schedule() ISchedule
	SimConfig() IConfig
}
