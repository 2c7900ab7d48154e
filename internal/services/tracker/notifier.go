package tracker

//go:generate mockgen -destination=mock/mock_notifier.go -package=mocktracker -source=notifier.go

import (
	"github.com/sirupsen/logrus"
)

const (
	MessageSaved   = "Progress saved!"
	MessageCleared = "All data cleared!"
)

// Notifier shows short confirmation messages to the user. Delivery is
// best effort and never reports failure.
type Notifier interface {
	Notify(message string)
}

// LogNotifier writes notifications to a logger
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(message string) {
	n.log.WithField("notification", true).Info(message)
}
