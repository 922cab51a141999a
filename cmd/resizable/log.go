package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogFormatter prints entries like "I: some message", where the first letter
// is the level: (I)NFO, (D)EBUG, (W)ARNING or (E)RROR.
type LogFormatter struct{}

// Format implements logrus.Formatter.
func (s *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	msg := fmt.Sprintf("%s: %s", level[0:1], entry.Message)
	for _, key := range sortedKeys(entry.Data) {
		msg += fmt.Sprintf(" %s=%v", key, entry.Data[key])
	}
	return []byte(msg + "\n"), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
