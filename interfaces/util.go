package interfaces

type metricName string

type IMetricName interface {
	getMetricName() metricName
	String() string
}

type IRNG interface {
	Rand() float64
}

// this is just for preventing simple string from being used as IMetricName
func (mName metricName) getMetricName() metricName {
	return mName
}

func (mName metricName) String() string {
	return string(mName)
}

// add metric names here
const (
	METRIC_SPIKES_FIRED     = metricName("SpikesFired")
	METRIC_EVENTS_PUSHED    = metricName("EventsPushed")
	METRIC_EVENTS_DELIVERED = metricName("EventsDelivered")
	METRIC_QUEUE_PENDING    = metricName("QueuePending")
	METRIC_STIMULI_EXECUTED = metricName("StimuliExecuted")
	METRIC_STEP_REAL_TIME   = metricName("StepRealTime")
	METRIC_FIRING_RATE      = metricName("FiringRate")
)
