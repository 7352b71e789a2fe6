package command

import "net/http"

func newHistorySource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "history",
			Description: "Show the session's message history",
			Usage:       "/history",
			Handler:     KindREST,
			Examples:    []string{"/history"},
			RestOptions: &RestOptions{
				GetEndpoint: "/api/history",
				Method:      http.MethodGet,
			},
		},
	}
}
