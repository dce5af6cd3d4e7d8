package main

import (
	"errors"
	"os"

	"github.com/golang/glog"
	"github.com/janpfeifer/goedit/cmd"
)

func main() {
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		exitCodeError := &cmd.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		}
		os.Exit(cmd.ExitCodeInvalidArguments)
	}
}
