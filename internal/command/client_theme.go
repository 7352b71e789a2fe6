package command

func newThemeSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "theme",
			Description: "Switch the interface theme",
			Usage:       "/theme <light|dark>",
			Handler:     KindClient,
			Examples:    []string{"/theme dark"},
			RequiresGUI: true,
		},
	}
}
