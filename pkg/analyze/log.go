package analyze

import (
	"os"
)

func (a *Analyzer) openLogFile() error {
	if a.Config.LogOutput == "" {
		return nil
	}

	logFile, err := os.OpenFile(a.Config.LogOutput, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	a.logFile = logFile
	a.logger.SetOutput(logFile)
	return nil
}

// Close releases the log file opened for --outlog, if any.
func (a *Analyzer) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	a.logger.SetOutput(os.Stderr)
	return err
}
