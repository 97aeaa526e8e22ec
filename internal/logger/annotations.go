package logger

import (
	"fmt"
	"io"
	"os"
)

// annotationWriter receives the workflow commands. Overridable in tests.
var annotationWriter io.Writer = os.Stdout

// annotate emits a GitHub Actions workflow command. The runner picks these
// lines up from stdout and surfaces them in the run summary.
func annotate(kind, message string) {
	fmt.Fprintf(annotationWriter, "::%s::%s\n", kind, message)
}

// Notice logs an info-level message and emits a ::notice:: annotation.
func Notice(message string) {
	GetLogger().Info(message)
	annotate("notice", message)
}

// WarnAnnotated logs a warning and emits a ::warning:: annotation.
func WarnAnnotated(message string) {
	GetLogger().Warn(message)
	annotate("warning", message)
}

// ErrorAnnotated logs an error and emits an ::error:: annotation.
func ErrorAnnotated(message string) {
	GetLogger().Error(message)
	annotate("error", message)
}
