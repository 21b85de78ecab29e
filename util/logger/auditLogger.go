package logger

import (
	"fmt"
	"os"
	"spikesim/interfaces"
)

var auditLogger *AuditLogger

type AuditLogger struct {
	file           *os.File
	printToConsole bool
}

func InitAuditLogger(file *os.File, printToConsole bool) {
	auditLogger = &AuditLogger{file: file, printToConsole: printToConsole}
	if auditLogger != nil {
		// write csv headers
		_, _ = auditLogger.file.Write([]byte(fmt.Sprintf("%v ; %v ; %v ; %v\n", "step", "groupId", "neuron", "text")))
	}
}

func (logger *AuditLogger) log(text string, step int64) {
	toPrint := []byte(fmt.Sprintf("%v ; %v\n", step, text))
	_, _ = logger.file.Write(toPrint)
	if logger.printToConsole {
		_, _ = os.Stdout.Write(toPrint)
	}
}

// AuditSpike records one fired neuron, one line per spike.
func AuditSpike(groupId string, neuron int32, step int64) {
	if auditLogger != nil {
		auditLogger.log(fmt.Sprintf("%v ; %v ;", groupId, neuron), step)
	}
}

func Audit(groupId string, text string, step int64) {
	if auditLogger != nil {
		auditLogger.log(fmt.Sprintf("%v ; ; %v", groupId, text), step)
	}
}

func AuditStimulus(groupId string, t interfaces.IEventType, text string, step int64) {
	if auditLogger != nil {
		auditLogger.log(fmt.Sprintf("%v ; ; %v %v", groupId, t, text), step)
	}
}
