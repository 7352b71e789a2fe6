package command

import "net/http"

func newConfigSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "config",
			Description: "Read or change session settings",
			Usage:       "/config [key] [value]",
			Handler:     KindREST,
			Examples:    []string{"/config", "/config model gpt-4o-mini"},
			RestOptions: &RestOptions{
				GetEndpoint:  "/api/config",
				PostEndpoint: "/api/config",
				Method:       http.MethodGet,
			},
		},
	}
}
