package common

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

func ConfigureCommandLineLogging() {
	commandLineFormatter := new(CommandLineFormatter)
	log.SetFormatter(commandLineFormatter)
	log.SetOutput(os.Stdout)
}

// CommandLineFormatter strips logrus decoration so interactive output reads
// like plain command output.
type CommandLineFormatter struct{}

func (f *CommandLineFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level <= log.WarnLevel {
		return []byte(entry.Level.String() + ": " + entry.Message + "\n"), nil
	}
	return []byte(entry.Message + "\n"), nil
}
