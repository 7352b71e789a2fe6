package command

import "net/http"

func newPromptsSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "prompts",
			Description: "List saved prompt presets",
			Usage:       "/prompts",
			Handler:     KindREST,
			Examples:    []string{"/prompts"},
			RestOptions: &RestOptions{
				GetEndpoint: "/api/prompts",
				Method:      http.MethodGet,
			},
		},
	}
}
