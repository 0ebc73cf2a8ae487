// Package logrus adapts a *logrus.Entry to the objcache Logger contract.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/objcache"
)

type Logger struct{ E *logrus.Entry }

var _ objcache.Logger = Logger{}

func New(e *logrus.Entry) Logger { return Logger{E: e} }

func (l Logger) Debug(msg string, f objcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f objcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l Logger) Warn(msg string, f objcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l Logger) Error(msg string, f objcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
