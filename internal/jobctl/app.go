package jobctl

import (
	"io"
	"os"

	"github.com/mlworkbench/jobctl/pkg/client"
)

// App is the central object of the jobctl command-line tool. Commands are
// methods on App, and its parameters are injected so tests can run commands
// against a fake API and capture output.
type App struct {
	Params *Params
	Out    io.Writer
}

// Params struct holds all user-customizable parameters.
// Using instances of this struct instead of using global variables makes tests easier to write.
type Params struct {
	ApiConnectionDetails *client.ApiConnectionDetails
	SubmitDefaults       *client.SubmitDefaults
	// JobAPI overrides the HTTP client when set (used by tests and dry runs).
	JobAPI client.JobAPI
}

func New() *App {
	return &App{
		Params: &Params{
			ApiConnectionDetails: &client.ApiConnectionDetails{},
			SubmitDefaults:       &client.SubmitDefaults{},
		},
		Out: os.Stdout,
	}
}

func (a *App) jobAPI() client.JobAPI {
	if a.Params.JobAPI != nil {
		return a.Params.JobAPI
	}
	return client.NewWorkbenchClient(a.Params.ApiConnectionDetails)
}
