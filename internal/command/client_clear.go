package command

func newClearSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "clear",
			Description: "Clear the conversation view",
			Usage:       "/clear",
			Handler:     KindClient,
			Examples:    []string{"/clear"},
		},
	}
}
